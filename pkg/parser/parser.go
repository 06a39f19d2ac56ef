// Package parser turns JavaScript and TypeScript sources into the linter's
// AST using tree-sitter.
package parser

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jssort/jssort/pkg/ast"
)

// Node types shared by the javascript and typescript grammars.
const (
	nodeImportStatement = "import_statement"
	nodeImportClause    = "import_clause"
	nodeNamespaceImport = "namespace_import"
	nodeNamedImports    = "named_imports"
	nodeImportSpecifier = "import_specifier"
	nodeString          = "string"
	nodeStringFragment  = "string_fragment"
	nodeIdentifier      = "identifier"
	nodeComment         = "comment"
	nodeHashBang        = "hash_bang_line"
	nodeTypeKeyword     = "type"
)

// Parser parses one source at a time; it is not safe for concurrent use.
type Parser struct {
	parser *sitter.Parser
}

// New creates a Parser.
func New() *Parser {
	return &Parser{parser: sitter.NewParser()}
}

// ParseFile reads and parses a single source file, picking the grammar from
// the file extension. It returns the program together with the raw source
// bytes, which fix ranges index into.
func (p *Parser) ParseFile(ctx context.Context, path string) (*ast.Program, []byte, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading file")
	}

	lang, ok := LanguageFromExtension(filepath.Ext(path))
	if !ok {
		return nil, nil, errors.Errorf("unsupported file extension %q", filepath.Ext(path))
	}

	prog, err := p.Parse(ctx, source, lang)
	if err != nil {
		return nil, nil, err
	}
	prog.Path = path

	return prog, source, nil
}

// Parse parses source with the given grammar and lowers the top-level
// statements into ast nodes.
func (p *Parser) Parse(ctx context.Context, source []byte, lang Language) (*ast.Program, error) {
	p.parser.SetLanguage(grammar(lang))

	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, errors.Wrap(err, "parsing source")
	}

	prog := &ast.Program{}
	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		// Comments and hashbang lines are not statements.
		if node.Type() == nodeComment || node.Type() == nodeHashBang {
			continue
		}
		prog.Body = append(prog.Body, lowerStatement(node, source))
	}

	return prog, nil
}

func lowerStatement(node *sitter.Node, source []byte) ast.Statement {
	stmt := ast.Statement{
		Kind:  ast.KindOther,
		Range: nodeRange(node),
		Loc:   nodePosition(node),
	}
	if node.Type() == nodeImportStatement {
		stmt.Kind = ast.KindImport
		stmt.Import = lowerImport(node, source)
	}
	return stmt
}

// lowerImport builds an ImportDeclaration from an import_statement node.
//
//	import_statement
//	├── import
//	├── type?                      // type-only import (TypeScript)
//	├── import_clause
//	│   ├── identifier             // default import
//	│   ├── namespace_import       // * as foo
//	│   └── named_imports          // { foo, bar as baz }
//	├── from
//	└── string                     // module source
func lowerImport(node *sitter.Node, source []byte) *ast.ImportDeclaration {
	decl := &ast.ImportDeclaration{
		ImportKind: ast.ImportValue,
		Range:      nodeRange(node),
		Loc:        nodePosition(node),
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case nodeTypeKeyword:
			decl.ImportKind = ast.ImportType
		case nodeImportClause:
			decl.Specifiers = lowerClause(child, source)
		case nodeString:
			decl.Source = lowerLiteral(child, source)
		}
	}

	return decl
}

func lowerClause(node *sitter.Node, source []byte) []ast.Specifier {
	var specs []ast.Specifier

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case nodeIdentifier:
			specs = append(specs, ast.Specifier{Kind: ast.SpecifierDefault, Local: text(child, source)})
		case nodeNamespaceImport:
			// namespace_import wraps the bound identifier: * as <local>
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if inner := child.NamedChild(j); inner.Type() == nodeIdentifier {
					specs = append(specs, ast.Specifier{Kind: ast.SpecifierNamespace, Local: text(inner, source)})
				}
			}
		case nodeNamedImports:
			specs = append(specs, lowerNamedImports(child, source)...)
		}
	}

	return specs
}

func lowerNamedImports(node *sitter.Node, source []byte) []ast.Specifier {
	var specs []ast.Specifier

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != nodeImportSpecifier {
			continue
		}

		spec := ast.Specifier{Kind: ast.SpecifierNamed}
		if name := child.ChildByFieldName("name"); name != nil {
			spec.Imported = text(name, source)
			spec.Local = spec.Imported
		}
		if alias := child.ChildByFieldName("alias"); alias != nil {
			spec.Local = text(alias, source)
		}

		specs = append(specs, spec)
	}

	return specs
}

func lowerLiteral(node *sitter.Node, source []byte) ast.StringLiteral {
	lit := ast.StringLiteral{Raw: text(node, source)}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == nodeStringFragment {
			lit.Value = text(child, source)
		}
	}
	return lit
}

func text(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

func nodeRange(node *sitter.Node) ast.Range {
	return ast.Range{Start: int(node.StartByte()), End: int(node.EndByte())}
}

func nodePosition(node *sitter.Node) ast.Position {
	point := node.StartPoint()
	return ast.Position{Line: int(point.Row) + 1, Column: int(point.Column)}
}
