package rule

import "github.com/jssort/jssort/pkg/ast"

// collectImports gathers the leading run of import declarations from the
// top-level statement list. An import found after a non-import statement is
// reported at the point of detection and stops the scan; no reordering is
// attempted in that case, since the replacement span would be ambiguous.
func (a *analysis) collectImports(prog *ast.Program) (imports []*ast.ImportDeclaration, misplaced bool) {
	seenOther := false

	for i := range prog.Body {
		stmt := &prog.Body[i]
		if stmt.Kind != ast.KindImport {
			seenOther = true
			continue
		}
		if seenOther {
			a.report(stmt.Import, MsgMisplaced, nil)
			return imports, true
		}
		imports = append(imports, stmt.Import)
	}

	return imports, false
}
