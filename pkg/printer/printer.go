// Package printer renders import declarations back to source text. It is
// the generic declaration-to-text service; the sort rule delegates every
// value import here and reconstructs type-only imports itself.
package printer

import (
	"fmt"
	"strings"

	"github.com/jssort/jssort/pkg/ast"
)

// Printer serializes import declarations.
type Printer struct{}

// New creates a Printer.
func New() *Printer {
	return &Printer{}
}

// Render returns the source text for a single import declaration, without a
// trailing semicolon.
func (p *Printer) Render(decl *ast.ImportDeclaration) string {
	source := sourceLiteral(decl)
	if len(decl.Specifiers) == 0 {
		return fmt.Sprintf("import %s", source)
	}

	var clause []string
	var named []string
	for _, spec := range decl.Specifiers {
		switch spec.Kind {
		case ast.SpecifierDefault:
			clause = append(clause, spec.Local)
		case ast.SpecifierNamespace:
			clause = append(clause, "* as "+spec.Local)
		case ast.SpecifierNamed:
			named = append(named, renderNamed(spec))
		}
	}
	if len(named) > 0 {
		clause = append(clause, "{ "+strings.Join(named, ", ")+" }")
	}

	return fmt.Sprintf("import %s from %s", strings.Join(clause, ", "), source)
}

func renderNamed(spec ast.Specifier) string {
	imported := spec.Imported
	if imported == "" {
		imported = "default"
	}
	if imported == spec.Local {
		return imported
	}
	return imported + " as " + spec.Local
}

// sourceLiteral returns the module literal as written, or a synthesized
// double-quoted literal when the raw text is unavailable.
func sourceLiteral(decl *ast.ImportDeclaration) string {
	if decl.Source.Raw != "" {
		return decl.Source.Raw
	}
	return fmt.Sprintf("%q", decl.Source.Value)
}
