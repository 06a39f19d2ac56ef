// Package ast defines the ECMAScript syntax nodes the linter operates on.
// The parser produces these nodes; rules treat them as read-only.
package ast

// StatementKind discriminates import declarations from every other
// top-level statement.
type StatementKind int

const (
	KindImport StatementKind = iota
	KindOther
)

// ImportKind distinguishes value imports from TypeScript type-only imports.
type ImportKind int

const (
	ImportValue ImportKind = iota
	ImportType
)

// SpecifierKind identifies the binding variant of a specifier.
type SpecifierKind int

const (
	SpecifierNamespace SpecifierKind = iota // * as foo
	SpecifierDefault                        // foo
	SpecifierNamed                          // { foo } or { foo as bar }
)

// Range is a half-open [Start, End) pair of byte offsets into the original
// source text.
type Range struct {
	Start int
	End   int
}

// Position locates a node for diagnostics. Line is 1-based, Column 0-based.
type Position struct {
	Line   int
	Column int
}

// StringLiteral is a module source literal. Raw keeps the quoted text as
// written when available; Value is the unquoted string.
type StringLiteral struct {
	Value string
	Raw   string
}

// Specifier is one local binding introduced by an import declaration.
// Imported is set for named specifiers only; it may be "default" when the
// module's default export is imported by name.
type Specifier struct {
	Kind     SpecifierKind
	Local    string
	Imported string
}

// ImportDeclaration is a statement binding zero or more local names from a
// module source.
type ImportDeclaration struct {
	Source     StringLiteral
	Specifiers []Specifier
	ImportKind ImportKind
	Range      Range
	Loc        Position
}

// HasSpecifier reports whether the declaration owns at least one specifier
// of the given kind.
func (d *ImportDeclaration) HasSpecifier(kind SpecifierKind) bool {
	for _, s := range d.Specifiers {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

// Statement is one top-level statement. Import is set when Kind is
// KindImport.
type Statement struct {
	Kind   StatementKind
	Import *ImportDeclaration
	Range  Range
	Loc    Position
}

// Program is the parsed top-level statement list of one source file.
type Program struct {
	Path string
	Body []Statement
}
