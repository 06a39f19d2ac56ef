// Package lint hosts the rule-running engine: it parses files, invokes the
// configured rules, and prints or applies the resulting diagnostics.
package lint

import "github.com/jssort/jssort/pkg/ast"

// Rule checks one parsed file and reports violations. Check must be
// stateless across files.
type Rule interface {
	Name() string
	Check(prog *ast.Program) []Diagnostic
}

// Fix is a textual replacement over a byte range of the original source.
type Fix struct {
	Range ast.Range
	Text  string
}

// Diagnostic is one reported violation, optionally carrying a fix. Line is
// 1-based and Column 0-based, following ast.Position.
type Diagnostic struct {
	Rule    string
	Message string
	Line    int
	Column  int
	Fix     *Fix
}
