package rule

import "github.com/jssort/jssort/pkg/ast"

// importGroups is the transient classification triple. Field order is the
// canonical output order: star, default, named.
type importGroups struct {
	star     []*ast.ImportDeclaration
	defaults []*ast.ImportDeclaration
	named    []*ast.ImportDeclaration
}

// classify partitions declarations by specifier shape: any namespace
// specifier makes a star import, else any default specifier makes a default
// import, else the declaration is a named import. Side-effect-only imports
// carry no specifiers and land in the named group. Insertion order mirrors
// input order; the orderer rewrites it afterwards.
func classify(imports []*ast.ImportDeclaration) importGroups {
	var groups importGroups

	for _, decl := range imports {
		switch {
		case decl.HasSpecifier(ast.SpecifierNamespace):
			groups.star = append(groups.star, decl)
		case decl.HasSpecifier(ast.SpecifierDefault):
			groups.defaults = append(groups.defaults, decl)
		default:
			groups.named = append(groups.named, decl)
		}
	}

	return groups
}

// all returns the groups flattened in canonical order.
func (g *importGroups) all() []*ast.ImportDeclaration {
	out := make([]*ast.ImportDeclaration, 0, len(g.star)+len(g.defaults)+len(g.named))
	out = append(out, g.star...)
	out = append(out, g.defaults...)
	out = append(out, g.named...)
	return out
}
