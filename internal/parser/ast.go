package parser

import (
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

// Shape describes what kind of type a declaration introduces.
type Shape int

const (
	ShapeStruct    Shape = iota // type T struct{...}
	ShapeInterface              // type T interface{...}, Go's tagged union
	ShapeNamed                  // type T uint16, type T OtherType
	ShapeArray                  // type T [N]E
	ShapeSlice                  // type T []E
	ShapeMap                    // type T map[K]V
	ShapePointer                // type T *E
	ShapeFunc                   // type T func(...)
	ShapeChan                   // type T chan E
	ShapeGeneric                // type T[P any] ...
	ShapeAlias                  // type T = E
)

func (s Shape) String() string {
	switch s {
	case ShapeStruct:
		return "struct"
	case ShapeInterface:
		return "interface (tagged union)"
	case ShapeNamed:
		return "named non-struct type"
	case ShapeArray:
		return "array type"
	case ShapeSlice:
		return "slice type"
	case ShapeMap:
		return "map type"
	case ShapePointer:
		return "pointer type"
	case ShapeFunc:
		return "func type"
	case ShapeChan:
		return "channel type"
	case ShapeGeneric:
		return "generic type"
	case ShapeAlias:
		return "type alias"
	default:
		return "unknown shape"
	}
}

// TypeDecl is a type declaration carrying a @wire annotation
type TypeDecl struct {
	Name   string
	Anno   *TypeAnnotation
	Shape  Shape
	Fields []Field // declaration order; empty for non-struct shapes
	Pos    token.Position
}

// Field is one entry of a record's field schema
type Field struct {
	Name       string // field name, or the type name for embedded fields
	Positional bool   // embedded field, addressed by its type name
	GoType     string
	Tag        *FieldTag
}

// Package is everything the generator needs from one directory of Go source
type Package struct {
	Name    string
	Dir     string
	Types   []*TypeDecl       // annotated declarations, in source order
	Named   map[string]string // defined non-struct types: name → underlying type string
	Aliases map[string]string // type T = E: name → aliased type string
	Structs map[string]bool   // every struct type declared in the package
	Consts  map[string]int    // integer constants usable as array lengths
	Imports map[string]string // package name → import path
}

func newPackage(name, dir string) *Package {
	return &Package{
		Name:    name,
		Dir:     dir,
		Named:   make(map[string]string),
		Aliases: make(map[string]string),
		Structs: make(map[string]bool),
		Consts:  make(map[string]int),
		Imports: make(map[string]string),
	}
}

// ParseFile parses a single Go source file
func ParseFile(filename string) (*Package, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	pkg := newPackage(file.Name.Name, filepath.Dir(filename))
	if err := pkg.addFile(fset, file); err != nil {
		return nil, err
	}
	return pkg, nil
}

// ParseDir parses the Go package in dir. Files excluded by build
// constraints, test files and generated files are skipped, so a stale
// generated file never feeds back into generation.
func ParseDir(dir string) (*Package, error) {
	bp, err := build.ImportDir(dir, 0)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	pkg := newPackage(bp.Name, dir)
	for _, name := range bp.GoFiles {
		path := filepath.Join(dir, name)
		file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse error: %w", err)
		}
		if ast.IsGenerated(file) {
			continue
		}
		if err := pkg.addFile(fset, file); err != nil {
			return nil, err
		}
	}
	return pkg, nil
}

func (p *Package) addFile(fset *token.FileSet, file *ast.File) error {
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		name := path[strings.LastIndex(path, "/")+1:]
		if imp.Name != nil {
			name = imp.Name.Name
		}
		p.Imports[name] = path
	}

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		switch genDecl.Tok {
		case token.CONST:
			p.addConsts(genDecl)
		case token.TYPE:
			for _, spec := range genDecl.Specs {
				if err := p.addType(fset, genDecl, spec.(*ast.TypeSpec)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (p *Package) addType(fset *token.FileSet, genDecl *ast.GenDecl, typeSpec *ast.TypeSpec) error {
	name := typeSpec.Name.Name
	shape := shapeOf(typeSpec)

	switch shape {
	case ShapeStruct:
		p.Structs[name] = true
	case ShapeNamed, ShapeArray:
		p.Named[name] = typeToString(typeSpec.Type)
	case ShapeAlias:
		p.Aliases[name] = typeToString(typeSpec.Type)
	}

	// Doc sits on the TypeSpec inside a type ( ... ) group, on the GenDecl otherwise
	doc := typeSpec.Doc
	if doc == nil && len(genDecl.Specs) == 1 {
		doc = genDecl.Doc
	}
	anno, err := extractAnnotation(doc)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", fset.Position(typeSpec.Pos()), name, err)
	}
	if anno == nil {
		return nil
	}

	decl := &TypeDecl{
		Name:  name,
		Anno:  anno,
		Shape: shape,
		Pos:   fset.Position(typeSpec.Pos()),
	}
	if shape == ShapeStruct {
		fields, err := extractFields(typeSpec.Type.(*ast.StructType))
		if err != nil {
			return fmt.Errorf("%s: %s: %w", decl.Pos, name, err)
		}
		decl.Fields = fields
	}
	p.Types = append(p.Types, decl)
	return nil
}

func (p *Package) addConsts(genDecl *ast.GenDecl) {
	for _, spec := range genDecl.Specs {
		vs := spec.(*ast.ValueSpec)
		for i, ident := range vs.Names {
			if i >= len(vs.Values) {
				break
			}
			lit, ok := vs.Values[i].(*ast.BasicLit)
			if !ok || lit.Kind != token.INT {
				continue
			}
			if n, err := strconv.ParseInt(lit.Value, 0, 64); err == nil {
				p.Consts[ident.Name] = int(n)
			}
		}
	}
}

func shapeOf(typeSpec *ast.TypeSpec) Shape {
	if typeSpec.TypeParams != nil && len(typeSpec.TypeParams.List) > 0 {
		return ShapeGeneric
	}
	if typeSpec.Assign.IsValid() {
		return ShapeAlias
	}

	switch t := typeSpec.Type.(type) {
	case *ast.StructType:
		return ShapeStruct
	case *ast.InterfaceType:
		return ShapeInterface
	case *ast.ArrayType:
		if t.Len == nil {
			return ShapeSlice
		}
		return ShapeArray
	case *ast.MapType:
		return ShapeMap
	case *ast.StarExpr:
		return ShapePointer
	case *ast.FuncType:
		return ShapeFunc
	case *ast.ChanType:
		return ShapeChan
	default:
		return ShapeNamed
	}
}

func extractAnnotation(doc *ast.CommentGroup) (*TypeAnnotation, error) {
	if doc == nil {
		return nil, nil
	}

	// Extract comment text lines
	var lines []string
	for _, comment := range doc.List {
		lines = append(lines, CleanComment(comment.Text))
	}

	anno, found, err := FindAnnotation(lines)
	if err != nil || !found {
		return nil, err
	}
	return anno, nil
}

func extractFields(structType *ast.StructType) ([]Field, error) {
	var fields []Field

	for _, field := range structType.Fields.List {
		tag, err := fieldTag(field)
		if err != nil {
			return nil, err
		}
		goType := typeToString(field.Type)

		if len(field.Names) == 0 {
			// Embedded field: positional, addressed by its type name
			fields = append(fields, Field{
				Name:       embeddedName(field.Type),
				Positional: true,
				GoType:     goType,
				Tag:        tag,
			})
			continue
		}

		// A, B uint8 declares two fields in order
		for _, ident := range field.Names {
			fields = append(fields, Field{
				Name:   ident.Name,
				GoType: goType,
				Tag:    tag,
			})
		}
	}

	return fields, nil
}

func fieldTag(field *ast.Field) (*FieldTag, error) {
	if field.Tag == nil {
		return &FieldTag{}, nil
	}
	tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
	raw, ok := tag.Lookup("wire")
	if !ok {
		return &FieldTag{}, nil
	}
	ft, err := ParseTag(raw)
	if err != nil {
		name := "embedded field"
		if len(field.Names) > 0 {
			name = field.Names[0].Name
		}
		return nil, fmt.Errorf("field %s: %w", name, err)
	}
	return ft, nil
}

func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	default:
		return "?"
	}
}

// typeToString converts AST type expression to string
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		// Simple type: uint16, Header, etc.
		return t.Name

	case *ast.SelectorExpr:
		// Qualified type: other.Header
		return exprToString(t.X) + "." + t.Sel.Name

	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeToString(t.Elt)
		}
		return fmt.Sprintf("[%s]%s", exprToString(t.Len), typeToString(t.Elt))

	case *ast.StarExpr:
		return "*" + typeToString(t.X)

	case *ast.MapType:
		return fmt.Sprintf("map[%s]%s", typeToString(t.Key), typeToString(t.Value))

	case *ast.ChanType:
		return "chan " + typeToString(t.Value)

	case *ast.FuncType:
		return "func"

	case *ast.InterfaceType:
		return "interface{}"

	case *ast.StructType:
		return "struct{}"

	case *ast.IndexExpr, *ast.IndexListExpr:
		return "generic"

	case *ast.ParenExpr:
		return typeToString(t.X)

	default:
		return "unknown"
	}
}

func exprToString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return e.Value
	case *ast.Ident:
		return e.Name
	case *ast.Ellipsis:
		return "..."
	default:
		return "?"
	}
}
