package analyzer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexhholmes/fixedwire/internal/parser"
)

type FieldKind int

const (
	PrimitiveField FieldKind = iota // fixed-width basic value, possibly a named type
	ArrayField                      // [N]T of primitives or records
	RecordField                     // nested record with its own wire methods
)

func (k FieldKind) String() string {
	switch k {
	case PrimitiveField:
		return "primitive"
	case ArrayField:
		return "array"
	case RecordField:
		return "record"
	default:
		return "unknown"
	}
}

// FieldPlan is one encoded field of a record, in declaration order
type FieldPlan struct {
	Name     string // selector on the receiver
	GoType   string // declared type, used to instantiate codecs
	Kind     FieldKind
	Offset   int    // static byte offset, -1 once a run-time width precedes
	Width    int    // bytes, or Dynamic
	WidthSrc string // Go expression for Width
	Codec    string // primitive codec suffix; element codec for arrays
	Validate string

	// Arrays only
	Len       int
	Elem      string
	ElemKind  FieldKind
	ElemWidth string // Go expression for one element's width
}

// RecordPlan is the analyzed encoding of one @wire record
type RecordPlan struct {
	TypeName string
	Atomic   bool
	Fields   []FieldPlan
	Width    int    // total bytes, or Dynamic
	WidthSrc string // Go expression for Width
	Errors   []string
}

// IsValid returns true if the record has no analysis errors
func (p *RecordPlan) IsValid() bool {
	return len(p.Errors) == 0
}

// UnsupportedShapeError reports an annotated declaration that is not a
// struct and so cannot be composed field by field
type UnsupportedShapeError struct {
	TypeName string
	Shape    parser.Shape
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("%s: cannot generate wire methods for %s; only structs of fixed-width fields are supported",
		e.TypeName, e.Shape)
}

// FieldError reports a field whose type has no fixed wire encoding
type FieldError struct {
	TypeName string
	Field    string
	GoType   string
	Err      error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s (%s): %v", e.TypeName, e.Field, e.GoType, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Analyze performs wire analysis on a parsed type
func Analyze(decl *parser.TypeDecl, registry *TypeRegistry) (*RecordPlan, error) {
	if decl == nil {
		return nil, fmt.Errorf("type declaration is nil")
	}

	p := &RecordPlan{
		TypeName: decl.Name,
		Atomic:   decl.Anno != nil && decl.Anno.Atomic,
	}

	if decl.Shape != parser.ShapeStruct {
		err := &UnsupportedShapeError{TypeName: decl.Name, Shape: decl.Shape}
		p.Errors = append(p.Errors, err.Error())
		return p, err
	}

	var errs []error
	offset := 0
	for _, field := range decl.Fields {
		if field.Tag != nil && field.Tag.Skip {
			continue
		}

		fp, err := planField(field, registry)
		if err != nil {
			fieldErr := &FieldError{TypeName: decl.Name, Field: field.Name, GoType: field.GoType, Err: err}
			errs = append(errs, fieldErr)
			p.Errors = append(p.Errors, fieldErr.Error())
			continue
		}

		fp.Offset = offset
		if offset >= 0 && fp.Width != Dynamic {
			offset += fp.Width
		} else {
			offset = -1
		}
		p.Fields = append(p.Fields, fp)
	}

	if len(errs) > 0 {
		return p, errors.Join(errs...)
	}

	p.Width, p.WidthSrc = totalWidth(p.Fields)

	// A package-wide atomic default quietly yields to run-time widths;
	// an explicit request does not
	if p.Atomic && p.Width == Dynamic && !decl.Anno.AtomicSet {
		p.Atomic = false
	}
	if p.Atomic && p.Width == Dynamic {
		err := fmt.Errorf("%s: atomic requires a static width, but the record contains run-time sized records", decl.Name)
		p.Errors = append(p.Errors, err.Error())
		return p, err
	}

	return p, nil
}

func planField(field parser.Field, registry *TypeRegistry) (FieldPlan, error) {
	fp := FieldPlan{
		Name:   field.Name,
		GoType: field.GoType,
	}
	if field.Tag != nil {
		fp.Validate = field.Tag.Validate
	}

	if field.Name == "_" {
		return fp, fmt.Errorf("blank fields cannot be encoded or decoded; tag it `wire:\"-\"` or name it")
	}

	width, err := registry.SizeOf(field.GoType)
	if err != nil {
		return fp, err
	}
	fp.Width = width

	resolved := registry.ResolveType(field.GoType)
	switch {
	case strings.HasPrefix(resolved, "["):
		n, elem, err := registry.ArrayOf(resolved)
		if err != nil {
			return fp, err
		}
		fp.Kind = ArrayField
		fp.Len = n
		fp.Elem = elem
		if codec, ok := CodecOf(registry.ResolveType(elem)); ok {
			fp.ElemKind = PrimitiveField
			fp.Codec = codec
			size, _ := SizeOf(registry.ResolveType(elem))
			fp.ElemWidth = strconv.Itoa(size)
		} else {
			fp.ElemKind = RecordField
			fp.ElemWidth = recordWidthSrc(elem, registry)
		}
		if width == Dynamic {
			fp.WidthSrc = fmt.Sprintf("%d * %s", n, fp.ElemWidth)
		} else {
			fp.WidthSrc = strconv.Itoa(width)
		}

	case registry.IsRecord(resolved):
		fp.Kind = RecordField
		fp.WidthSrc = recordWidthSrc(field.GoType, registry)

	default:
		codec, ok := CodecOf(resolved)
		if !ok {
			return fp, fmt.Errorf("no codec for %s", resolved)
		}
		fp.Kind = PrimitiveField
		fp.Codec = codec
		fp.WidthSrc = strconv.Itoa(width)
	}

	return fp, nil
}

// recordWidthSrc is a constant for records with a static width and a
// WidthOf call for records sized at run time
func recordWidthSrc(goType string, registry *TypeRegistry) string {
	if width, err := registry.SizeOf(goType); err == nil && width != Dynamic {
		return strconv.Itoa(width)
	}
	return "wire.WidthOf[" + goType + "]()"
}

func totalWidth(fields []FieldPlan) (int, string) {
	static := 0
	var terms []string
	for _, f := range fields {
		if f.Width == Dynamic {
			terms = append(terms, f.WidthSrc)
			continue
		}
		static += f.Width
	}

	if len(terms) == 0 {
		return static, strconv.Itoa(static)
	}
	if static > 0 {
		terms = append([]string{strconv.Itoa(static)}, terms...)
	}
	return Dynamic, strings.Join(terms, " + ")
}
