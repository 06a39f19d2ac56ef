package rule

import "github.com/jssort/jssort/pkg/ast"

// Builders shared by the tests in this package.

func src(value string) ast.StringLiteral {
	return ast.StringLiteral{Value: value, Raw: `"` + value + `"`}
}

func starImport(local, source string) *ast.ImportDeclaration {
	return &ast.ImportDeclaration{
		Source:     src(source),
		Specifiers: []ast.Specifier{{Kind: ast.SpecifierNamespace, Local: local}},
	}
}

func defaultImport(local, source string) *ast.ImportDeclaration {
	return &ast.ImportDeclaration{
		Source:     src(source),
		Specifiers: []ast.Specifier{{Kind: ast.SpecifierDefault, Local: local}},
	}
}

func namedImport(source string, locals ...string) *ast.ImportDeclaration {
	decl := &ast.ImportDeclaration{Source: src(source)}
	for _, local := range locals {
		decl.Specifiers = append(decl.Specifiers, ast.Specifier{
			Kind:     ast.SpecifierNamed,
			Local:    local,
			Imported: local,
		})
	}
	return decl
}

func sideEffectImport(source string) *ast.ImportDeclaration {
	return &ast.ImportDeclaration{Source: src(source)}
}

// stmtEntry is one top-level statement laid out by buildProgram.
type stmtEntry struct {
	decl *ast.ImportDeclaration // nil for a non-import statement
	text string
}

func importStmt(decl *ast.ImportDeclaration, text string) stmtEntry {
	return stmtEntry{decl: decl, text: text}
}

func otherStmt(text string) stmtEntry {
	return stmtEntry{text: text}
}

// buildProgram lays entries out one per line and assigns byte ranges and
// positions the way the parser would.
func buildProgram(entries ...stmtEntry) *ast.Program {
	prog := &ast.Program{}
	offset := 0

	for i, e := range entries {
		r := ast.Range{Start: offset, End: offset + len(e.text)}
		loc := ast.Position{Line: i + 1, Column: 0}

		stmt := ast.Statement{Kind: ast.KindOther, Range: r, Loc: loc}
		if e.decl != nil {
			e.decl.Range = r
			e.decl.Loc = loc
			stmt.Kind = ast.KindImport
			stmt.Import = e.decl
		}
		prog.Body = append(prog.Body, stmt)

		offset = r.End + 1 // newline
	}

	return prog
}
