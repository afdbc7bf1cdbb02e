package bundler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/eco/elog"
	"github.com/alastairzotos/eco-parser/parser"
)

// Bundler walks a module's AST (spec §4.5), resolving and recursively
// bundling its imports, and emits a single wrapped CommonJS-style script.
// One Bundler instance bundles exactly one graph; create a fresh one per
// entry point.
type Bundler struct {
	resolver Resolver
	log      *elog.Logger

	// emitted marks a canonical module name as seen — inserted as a
	// placeholder before recursing into its body, so a cyclic import graph
	// terminates instead of looping (spec §4.5 step 1/2).
	emitted map[string]bool
	order   []string
	bodies  map[string]string
}

// New creates a Bundler using resolver to resolve and read module source.
// A nil log discards bundler tracing.
func New(resolver Resolver, log *elog.Logger) *Bundler {
	if log == nil {
		log = elog.Nop()
	}
	return &Bundler{
		resolver: resolver,
		log:      log,
		emitted:  map[string]bool{},
		bodies:   map[string]string{},
	}
}

// Bundle resolves entryFile against entryDir, bundles its whole
// transitive module graph, and returns the final wrapped script (spec
// §4.5 step 3).
func (b *Bundler) Bundle(entryDir, entryFile string) (string, error) {
	entry, _, err := b.resolver.ResolveFilename(entryDir, entryFile)
	if err != nil {
		return "", err
	}
	if err := b.bundleModule(entry); err != nil {
		return "", err
	}
	return b.assemble(entry), nil
}

// bundleModule bundles the single already-canonicalised module named
// canonical, recursing into its imports. It is idempotent: a module
// already emitted (or in the process of being emitted, breaking a cycle)
// is a no-op.
func (b *Bundler) bundleModule(canonical string) error {
	if b.emitted[canonical] {
		return nil
	}
	b.emitted[canonical] = true
	b.order = append(b.order, canonical)
	b.log.Debug().Str("module", canonical).Msg("bundling")

	src, err := b.resolver.ResolveImport(canonical)
	if err != nil {
		return err
	}
	prog, err := parser.ParseProgram(src)
	if err != nil {
		return fmt.Errorf("%s: %w", canonical, err)
	}

	currentDir := canonical[:strings.LastIndex(canonical, "/")+1]
	ctx := &bundlerContext{currentDir: currentDir}

	var body strings.Builder
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.Import:
			if err := b.emitImport(s, ctx, &body); err != nil {
				return err
			}
		case *ast.Export:
			if err := b.emitExport(s, ctx, &body); err != nil {
				return err
			}
		default:
			body.WriteString(StmtSource(stmt))
			body.WriteString("\n")
		}
	}

	b.emitModuleExports(ctx, &body)
	b.bodies[canonical] = body.String()
	return nil
}

// emitImport rewrites an import statement into a `__eco_require__` call
// (spec §6): `import x from 'f'` -> `const x = __eco_require__("canon");`,
// `import * as ns from 'f'` -> same with ns, `import { a, b as c } from
// 'f'` -> a destructuring const, and a bare `import 'f';` -> a bare
// require call for side effects only.
func (b *Bundler) emitImport(n *ast.Import, ctx *bundlerContext, body *strings.Builder) error {
	ctx.hasImports = true
	canonical, _, err := b.resolver.ResolveFilename(ctx.currentDir, n.FromFile)
	if err != nil {
		return err
	}
	if err := b.bundleModule(canonical); err != nil {
		return err
	}
	requireExpr := requireCall(canonical)

	switch {
	case n.DefaultName != "":
		fmt.Fprintf(body, "const %s = %s;\n", n.DefaultName, requireExpr)
	case n.NamespaceName != "":
		fmt.Fprintf(body, "const %s = %s;\n", n.NamespaceName, requireExpr)
	case len(n.Objects) > 0:
		parts := make([]string, len(n.Objects))
		for i, o := range n.Objects {
			if o.Alias != "" && o.Alias != o.Name {
				parts[i] = o.Name + ": " + o.Alias
			} else {
				parts[i] = o.Name
			}
		}
		fmt.Fprintf(body, "const { %s } = %s;\n", strings.Join(parts, ", "), requireExpr)
	default:
		fmt.Fprintf(body, "%s;\n", requireExpr)
	}
	return nil
}

// emitExport handles the four export forms (spec §4.5 step 2/§6): a
// const/let decl is written into the module body and its bound names are
// registered as named exports; a default expression is written nowhere in
// the body, only recorded as the value of the final `module.exports = …;`;
// the two `from` forms resolve and bundle the named module but emit
// nothing into this module's own body, only updating its aggregated export
// set.
func (b *Bundler) emitExport(n *ast.Export, ctx *bundlerContext, body *strings.Builder) error {
	switch {
	case n.DefaultValue != nil:
		ctx.defaultExport = ToSource(n.DefaultValue)
		return nil

	case n.VarDecl != nil:
		body.WriteString(ToSource(n.VarDecl))
		body.WriteString("\n")
		for _, name := range boundNames(n.VarDecl.Variable) {
			ctx.named = append(ctx.named, namedExport{Alias: name, Expr: name})
		}
		return nil

	case n.From != nil:
		canonical, _, err := b.resolver.ResolveFilename(ctx.currentDir, n.From.File)
		if err != nil {
			return err
		}
		if err := b.bundleModule(canonical); err != nil {
			return err
		}
		requireExpr := requireCall(canonical)
		if n.From.All {
			ctx.spreads = append(ctx.spreads, spreadExport{Expr: requireExpr})
			return nil
		}
		for _, e := range n.From.Named {
			alias := e.Alias
			if alias == "" {
				alias = e.Name
			}
			ctx.named = append(ctx.named, namedExport{Alias: alias, Expr: requireExpr + "." + e.Name})
		}
		return nil
	}
	return fmt.Errorf("malformed export statement")
}

// emitModuleExports writes the module's final `module.exports = …;`
// assignment from its aggregated default/named/spread exports (spec
// §4.5/§6): a default export wins outright; otherwise named exports and
// re-export spreads merge into a single object literal.
func (b *Bundler) emitModuleExports(ctx *bundlerContext, body *strings.Builder) {
	if ctx.defaultExport != "" {
		fmt.Fprintf(body, "module.exports = %s;\n", ctx.defaultExport)
		return
	}
	if !ctx.hasExports() {
		return
	}
	var fields []string
	for _, s := range ctx.spreads {
		fields = append(fields, "..."+s.Expr)
	}
	for _, n := range ctx.named {
		if n.Alias == n.Expr {
			fields = append(fields, n.Alias)
		} else {
			fields = append(fields, n.Alias+": "+n.Expr)
		}
	}
	fmt.Fprintf(body, "module.exports = { %s };\n", strings.Join(fields, ", "))
}

// boundNames lists every name a `export const|let …` declaration binds,
// including each destructured element (so `export const { a, b } = …`
// exports both a and b).
func boundNames(v *ast.Variable) []string {
	switch v.VariableType {
	case ast.Identifier:
		return []string{v.Name}
	case ast.DestructureArray, ast.DestructureObject:
		var names []string
		for _, dv := range v.Values {
			if dv.Hole {
				continue
			}
			names = append(names, dv.Name)
		}
		return names
	}
	return nil
}

func requireCall(canonical string) string {
	return "__eco_require__(" + strconv.Quote(canonical) + ")"
}

// assemble builds the final skeleton (spec §4.5 step 3): a module table
// keyed by canonical name, each wrapped in a `(module, require) => {…}`
// function, plus the cache-on-first-require dispatcher and the entry
// module's invocation.
func (b *Bundler) assemble(entry string) string {
	var modules strings.Builder
	for i, name := range b.order {
		if i > 0 {
			modules.WriteString(", ")
		}
		fmt.Fprintf(&modules, "%s: (module, __eco_require__) => {\n%s}", strconv.Quote(name), indentBlock(b.bodies[name]))
	}
	return fmt.Sprintf(
		"((modules) => { var cached = {}; var require = (id) => cached[id] ?? (cached[id] = { exports: {} }, modules[id](cached[id], require), cached[id]).exports; return require(%s); })({ %s });",
		strconv.Quote(entry), modules.String(),
	)
}

func indentBlock(body string) string {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "    " + l
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
