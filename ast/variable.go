package ast

// VariableType distinguishes the three shapes a bound variable's left-hand
// side may take: a bare identifier, or one of the two destructuring forms.
type VariableType int

const (
	Identifier VariableType = iota
	DestructureArray
	DestructureObject
)

// DestructuredValue is one element of a destructuring pattern: a bound
// name, an optional default expression, and whether it is the (necessarily
// final) rest element.
type DestructuredValue struct {
	// Name is empty for an array-destructure hole (the `, ,` pattern).
	Name    string
	Default Expr
	IsRest  bool
	// Hole marks an elided array-destructure slot (`[a, , b]`); Name and
	// Default are unused when Hole is true.
	Hole bool
}

// Variable is a left-hand-side binding target: used by VarDecl and function
// parameters (a catch binding is a plain name, TryCatch.CatchName). It is
// not itself a Stmt or Expr.
type Variable struct {
	VariableType VariableType

	// Name is set when VariableType == Identifier.
	Name string
	// Values is set when VariableType is one of the destructure kinds.
	Values []DestructuredValue

	Default Expr
	PosVal  int
}

func (v *Variable) Pos() int { return v.PosVal }
