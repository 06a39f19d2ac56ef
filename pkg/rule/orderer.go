package rule

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jssort/jssort/pkg/ast"
)

// orderer holds the collator for one analysis. collate.Collator is not safe
// for concurrent use, so each analysis gets its own.
type orderer struct {
	collator *collate.Collator
}

func newOrderer() *orderer {
	return &orderer{collator: collate.New(language.Und)}
}

// compare is a case-insensitive locale-aware comparison.
func (o *orderer) compare(a, b string) int {
	return o.collator.CompareString(strings.ToLower(a), strings.ToLower(b))
}

// sortSpecifiers returns a sorted copy of the specifier list: the default
// specifier (at most one per declaration) first, then the rest by local
// name. The input slice is left untouched.
func (o *orderer) sortSpecifiers(specs []ast.Specifier) []ast.Specifier {
	sorted := make([]ast.Specifier, len(specs))
	copy(sorted, specs)

	sort.SliceStable(sorted, func(i, j int) bool {
		if (sorted[i].Kind == ast.SpecifierDefault) != (sorted[j].Kind == ast.SpecifierDefault) {
			return sorted[i].Kind == ast.SpecifierDefault
		}
		return o.compare(sorted[i].Local, sorted[j].Local) < 0
	})

	return sorted
}

// sortGroups canonically orders each group in place. Group entries become
// shallow copies carrying specifier-sorted lists; the original declarations
// are only referenced, never mutated.
func (o *orderer) sortGroups(groups *importGroups) {
	o.sortGroup(groups.star)
	o.sortGroup(groups.defaults)
	o.sortGroup(groups.named)
}

func (o *orderer) sortGroup(decls []*ast.ImportDeclaration) {
	for i, decl := range decls {
		sorted := *decl
		sorted.Specifiers = o.sortSpecifiers(decl.Specifiers)
		decls[i] = &sorted
	}

	// Stable sort: equal keys keep their original relative order.
	sort.SliceStable(decls, func(i, j int) bool {
		return o.compare(sortKey(decls[i]), sortKey(decls[j])) < 0
	})
}

// sortKey is the local name of the first specifier, the deliberate
// single-key scheme this rule sorts declarations by. Declarations with no
// specifiers key on the empty string and therefore sort first.
func sortKey(decl *ast.ImportDeclaration) string {
	if len(decl.Specifiers) == 0 {
		return ""
	}
	return decl.Specifiers[0].Local
}
