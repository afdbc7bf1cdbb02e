package bundler

// namedExport is one entry of a module's aggregated named-export set:
// Alias is the property name on module.exports; Expr is the eco source
// expression producing its value (a local identifier, or a re-exported
// `__eco_require__('other').name` field access).
type namedExport struct {
	Alias string
	Expr  string
}

// spreadExport is an `export * from 'file'` re-export: its fields merge
// into module.exports wholesale.
type spreadExport struct {
	Expr string
}

// bundlerContext tracks one module's export state while its body is being
// emitted (spec §4.5's BundlerContext): the module's current directory
// (for resolving its own nested imports) and the accumulated default/
// named/spread exports, aggregated once the whole body has been walked.
type bundlerContext struct {
	currentDir    string
	defaultExport string // eco source text of the default export value, empty if absent
	named         []namedExport
	spreads       []spreadExport
	hasImports    bool
}

func (c *bundlerContext) hasExports() bool {
	return c.defaultExport != "" || len(c.named) > 0 || len(c.spreads) > 0
}
