package rule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jssort/jssort/pkg/ast"
)

func TestClassify(t *testing.T) {
	req := require.New(t)

	star := starImport("ns", "a")
	def := defaultImport("d", "b")
	named := namedImport("c", "x", "y")
	sideEffect := sideEffectImport("polyfill")

	// A default binding combined with named bindings still classifies as a
	// default import.
	mixed := defaultImport("m", "d")
	mixed.Specifiers = append(mixed.Specifiers, ast.Specifier{Kind: ast.SpecifierNamed, Local: "extra", Imported: "extra"})

	groups := classify([]*ast.ImportDeclaration{named, star, sideEffect, mixed, def})

	req.Equal([]*ast.ImportDeclaration{star}, groups.star)
	req.Equal([]*ast.ImportDeclaration{mixed, def}, groups.defaults, "insertion order mirrors input order")
	req.Equal([]*ast.ImportDeclaration{named, sideEffect}, groups.named, "side-effect imports fall into the named group")
}

func TestClassify_partition(t *testing.T) {
	req := require.New(t)

	decls := []*ast.ImportDeclaration{
		starImport("a", "a"),
		defaultImport("b", "b"),
		namedImport("c", "c"),
		sideEffectImport("d"),
		starImport("e", "e"),
	}

	groups := classify(decls)

	// Every declaration lands in exactly one group.
	seen := make(map[*ast.ImportDeclaration]int)
	for _, d := range groups.all() {
		seen[d]++
	}
	req.Len(seen, len(decls))
	for _, d := range decls {
		req.Equal(1, seen[d])
	}

	for _, d := range groups.star {
		req.True(d.HasSpecifier(ast.SpecifierNamespace))
	}
	for _, d := range groups.defaults {
		req.False(d.HasSpecifier(ast.SpecifierNamespace))
		req.True(d.HasSpecifier(ast.SpecifierDefault))
	}
	for _, d := range groups.named {
		req.False(d.HasSpecifier(ast.SpecifierNamespace))
		req.False(d.HasSpecifier(ast.SpecifierDefault))
	}
}

func TestImportGroups_all(t *testing.T) {
	req := require.New(t)

	star := starImport("z", "z")
	def := defaultImport("a", "a")
	named := namedImport("m", "m")

	groups := classify([]*ast.ImportDeclaration{named, def, star})
	flat := groups.all()

	req.Equal([]*ast.ImportDeclaration{star, def, named}, flat, "groups flatten in star, default, named order")
}
