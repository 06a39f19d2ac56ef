package rule

import (
	"fmt"
	"strings"

	"github.com/jssort/jssort/pkg/ast"
	"github.com/jssort/jssort/pkg/lint"
)

// checkAndFixImports compares the original declaration sequence against the
// canonical one and, when they differ, reports a single diagnostic anchored
// at the first import, with a replacement spanning the whole block. Blank
// lines and comments inside the span are not preserved.
func (a *analysis) checkAndFixImports(original []*ast.ImportDeclaration, groups importGroups) {
	canonical := groups.all()
	if areImportsEqual(original, canonical) {
		return
	}

	first := original[0]
	last := original[len(original)-1]
	a.report(first, MsgUnsorted, &lint.Fix{
		Range: ast.Range{Start: first.Range.Start, End: last.Range.End},
		Text:  a.render(canonical),
	})
}

// render serializes the canonical declaration list, one declaration per
// line, with no blank lines between groups.
func (a *analysis) render(decls []*ast.ImportDeclaration) string {
	lines := make([]string, 0, len(decls))
	for _, decl := range decls {
		if decl.ImportKind == ast.ImportType {
			lines = append(lines, renderTypeImport(decl))
		} else {
			lines = append(lines, a.renderer.Render(decl))
		}
	}
	return strings.Join(lines, "\n")
}

// renderTypeImport reconstructs a type-only import by hand; the delegated
// renderer does not understand the syntax.
func renderTypeImport(decl *ast.ImportDeclaration) string {
	source := sourceLiteral(decl)
	if len(decl.Specifiers) == 0 {
		return fmt.Sprintf("import type %s", source)
	}

	parts := make([]string, 0, len(decl.Specifiers))
	for _, spec := range decl.Specifiers {
		parts = append(parts, renderTypeSpecifier(spec))
	}

	return fmt.Sprintf("import type { %s } from %s", strings.Join(parts, ", "), source)
}

func renderTypeSpecifier(spec ast.Specifier) string {
	switch spec.Kind {
	case ast.SpecifierNamespace:
		return "* as " + spec.Local
	case ast.SpecifierDefault:
		return spec.Local
	default:
		imported := spec.Imported
		if imported == "" {
			// Importing the default export by name.
			imported = "default"
		}
		if imported == spec.Local {
			return imported
		}
		return imported + " as " + spec.Local
	}
}

func sourceLiteral(decl *ast.ImportDeclaration) string {
	if decl.Source.Raw != "" {
		return decl.Source.Raw
	}
	return fmt.Sprintf("%q", decl.Source.Value)
}

// areImportsEqual reports whether the two sequences agree declaration by
// declaration on import kind, module source value, specifier count, and
// every (kind, local, imported) specifier tuple, in order.
func areImportsEqual(original, canonical []*ast.ImportDeclaration) bool {
	if len(original) != len(canonical) {
		return false
	}

	for i := range original {
		a, b := original[i], canonical[i]
		if a.ImportKind != b.ImportKind || a.Source.Value != b.Source.Value || len(a.Specifiers) != len(b.Specifiers) {
			return false
		}
		for j := range a.Specifiers {
			if a.Specifiers[j] != b.Specifiers[j] {
				return false
			}
		}
	}

	return true
}
