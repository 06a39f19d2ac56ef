// Package rule implements the import ordering rule: the leading import
// block of a file is grouped as wildcard, default, then named imports, each
// group sorted case-insensitively by the local name of its first specifier.
package rule

import (
	"github.com/jssort/jssort/pkg/ast"
	"github.com/jssort/jssort/pkg/lint"
)

// RuleName identifies the rule in diagnostics.
const RuleName = "sort-imports"

// Messages reported by the rule.
const (
	MsgUnsorted  = "Imports should be sorted alphabetically. Wildcard imports first. Default Imports second. Named Imports last."
	MsgMisplaced = "Import statements must appear before any other statements."
)

// DeclRenderer serializes a value import declaration to source text. The
// rule hand-reconstructs type-only imports and delegates everything else
// here.
type DeclRenderer interface {
	Render(decl *ast.ImportDeclaration) string
}

// SortImports is the lint.Rule enforcing canonical import order.
type SortImports struct {
	renderer DeclRenderer
}

// NewSortImports creates the rule with the given renderer for value
// imports.
func NewSortImports(renderer DeclRenderer) *SortImports {
	return &SortImports{renderer: renderer}
}

// Name implements lint.Rule.
func (r *SortImports) Name() string {
	return RuleName
}

// Check implements lint.Rule. Every call runs an independent analysis over
// one file.
func (r *SortImports) Check(prog *ast.Program) []lint.Diagnostic {
	a := &analysis{renderer: r.renderer, orderer: newOrderer()}
	return a.run(prog)
}

// analysis carries the pipeline state for one file.
type analysis struct {
	renderer DeclRenderer
	orderer  *orderer
	diags    []lint.Diagnostic
}

// run drives collection, classification, ordering and the final diff. A
// misplaced import or an import-free file ends the analysis early.
func (a *analysis) run(prog *ast.Program) []lint.Diagnostic {
	imports, misplaced := a.collectImports(prog)
	if misplaced || len(imports) == 0 {
		return a.diags
	}

	groups := classify(imports)
	a.orderer.sortGroups(&groups)
	a.checkAndFixImports(imports, groups)

	return a.diags
}

func (a *analysis) report(decl *ast.ImportDeclaration, message string, fix *lint.Fix) {
	a.diags = append(a.diags, lint.Diagnostic{
		Rule:    RuleName,
		Message: message,
		Line:    decl.Loc.Line,
		Column:  decl.Loc.Column,
		Fix:     fix,
	})
}
