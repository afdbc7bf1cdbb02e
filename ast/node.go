// Package ast defines the closed set of statement and expression node
// variants described in spec §3. Nodes are pure data; evaluation lives in
// package interpreter and source emission in package bundler, both of which
// dispatch on these types via type switches (mirroring the teacher's
// evaluator/generator packages) rather than methods on the node types
// themselves — this also avoids an ast↔interpreter↔parser import cycle,
// since `#{…}` string-literal interpolation must re-invoke the parser.
package ast

// Node is implemented by every statement and expression variant. Pos is the
// zero-based byte position of the node's first token, used for runtime and
// parse-time diagnostics.
type Node interface {
	Pos() int
}

// Stmt is implemented by every statement variant (expressions are also
// statements, per spec §3: "expressions are a subfamily of statements").
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression variant.
type Expr interface {
	Stmt
	exprNode()
}

// Program is the root of a parsed module: a flat sequence of top-level
// statements.
type Program struct {
	Statements []Stmt
}
