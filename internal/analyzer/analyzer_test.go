package analyzer

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alexhholmes/fixedwire/internal/parser"
)

func field(name, goType string) parser.Field {
	return parser.Field{Name: name, GoType: goType, Tag: &parser.FieldTag{}}
}

func record(name string, fields ...parser.Field) *parser.TypeDecl {
	return &parser.TypeDecl{
		Name:   name,
		Anno:   &parser.TypeAnnotation{},
		Shape:  parser.ShapeStruct,
		Fields: fields,
	}
}

func TestAnalyze_Primitives(t *testing.T) {
	// type Pair struct {
	//     A uint16
	//     B uint8
	// }
	decl := record("Pair", field("A", "uint16"), field("B", "uint8"))

	plan, err := Analyze(decl, NewTypeRegistry())
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if !plan.IsValid() {
		t.Errorf("Record should be valid, errors: %v", plan.Errors)
	}

	want := []FieldPlan{
		{Name: "A", GoType: "uint16", Kind: PrimitiveField, Offset: 0, Width: 2, WidthSrc: "2", Codec: "Uint16"},
		{Name: "B", GoType: "uint8", Kind: PrimitiveField, Offset: 2, Width: 1, WidthSrc: "1", Codec: "Uint8"},
	}
	if diff := cmp.Diff(want, plan.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	if plan.Width != 3 || plan.WidthSrc != "3" {
		t.Errorf("Width = %d (%q), want 3", plan.Width, plan.WidthSrc)
	}
}

func TestAnalyze_EmptyRecord(t *testing.T) {
	plan, err := Analyze(record("Unit"), NewTypeRegistry())
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(plan.Fields) != 0 || plan.Width != 0 || plan.WidthSrc != "0" {
		t.Errorf("empty record plan = %+v", plan)
	}
}

func TestAnalyze_ArraysAndNamedTypes(t *testing.T) {
	reg := NewTypeRegistry()
	reg.RegisterNamed("Mode", "uint16")
	reg.Register("Item", 3)
	reg.RegisterConst("Slots", 4)

	decl := record("Frame",
		field("Mode", "Mode"),
		field("Samples", "[Slots]uint8"),
		field("Items", "[2]Item"),
	)

	plan, err := Analyze(decl, reg)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	mode := plan.Fields[0]
	if mode.Kind != PrimitiveField || mode.Codec != "Uint16" || mode.GoType != "Mode" {
		t.Errorf("Mode plan = %+v", mode)
	}

	samples := plan.Fields[1]
	if samples.Kind != ArrayField || samples.Len != 4 || samples.ElemKind != PrimitiveField ||
		samples.Codec != "Uint8" || samples.ElemWidth != "1" || samples.Offset != 2 {
		t.Errorf("Samples plan = %+v", samples)
	}

	items := plan.Fields[2]
	if items.Kind != ArrayField || items.ElemKind != RecordField || items.Elem != "Item" ||
		items.ElemWidth != "3" || items.Width != 6 || items.Offset != 6 {
		t.Errorf("Items plan = %+v", items)
	}

	if plan.Width != 12 {
		t.Errorf("Width = %d, want 12", plan.Width)
	}
}

func TestAnalyze_RunTimeWidth(t *testing.T) {
	reg := NewTypeRegistry()
	reg.Register("geo.Point", Dynamic)

	decl := record("Fix",
		field("ID", "uint32"),
		field("Where", "geo.Point"),
		field("Path", "[2]geo.Point"),
		field("Ok", "bool"),
	)

	plan, err := Analyze(decl, reg)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	where := plan.Fields[1]
	if where.Kind != RecordField || where.WidthSrc != "wire.WidthOf[geo.Point]()" || where.Offset != 4 {
		t.Errorf("Where plan = %+v", where)
	}
	path := plan.Fields[2]
	if path.WidthSrc != "2 * wire.WidthOf[geo.Point]()" || path.Offset != -1 {
		t.Errorf("Path plan = %+v", path)
	}
	if ok := plan.Fields[3]; ok.Offset != -1 {
		t.Errorf("Ok offset = %d after a run-time width, want -1", ok.Offset)
	}

	if plan.Width != Dynamic {
		t.Errorf("Width = %d, want Dynamic", plan.Width)
	}
	if want := "5 + wire.WidthOf[geo.Point]() + 2 * wire.WidthOf[geo.Point]()"; plan.WidthSrc != want {
		t.Errorf("WidthSrc = %q, want %q", plan.WidthSrc, want)
	}
}

func TestAnalyze_SkipAndValidate(t *testing.T) {
	decl := record("Tagged",
		parser.Field{Name: "Mode", GoType: "uint8", Tag: &parser.FieldTag{Validate: "checkMode"}},
		parser.Field{Name: "cache", GoType: "[]byte", Tag: &parser.FieldTag{Skip: true}},
		field("Seq", "uint16"),
	)

	plan, err := Analyze(decl, NewTypeRegistry())
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(plan.Fields) != 2 {
		t.Fatalf("expected 2 encoded fields, got %d", len(plan.Fields))
	}
	if plan.Fields[0].Validate != "checkMode" {
		t.Errorf("Validate = %q", plan.Fields[0].Validate)
	}
	if plan.Fields[1].Name != "Seq" || plan.Fields[1].Offset != 1 {
		t.Errorf("Seq plan = %+v", plan.Fields[1])
	}
}

func TestAnalyze_UnsupportedShapes(t *testing.T) {
	shapes := []parser.Shape{
		parser.ShapeInterface,
		parser.ShapeNamed,
		parser.ShapeArray,
		parser.ShapeSlice,
		parser.ShapeMap,
		parser.ShapePointer,
		parser.ShapeFunc,
		parser.ShapeChan,
		parser.ShapeGeneric,
		parser.ShapeAlias,
	}

	for _, shape := range shapes {
		t.Run(shape.String(), func(t *testing.T) {
			decl := &parser.TypeDecl{Name: "Message", Anno: &parser.TypeAnnotation{}, Shape: shape}
			plan, err := Analyze(decl, NewTypeRegistry())

			var shapeErr *UnsupportedShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("error = %v, want *UnsupportedShapeError", err)
			}
			if shapeErr.Shape != shape {
				t.Errorf("Shape = %v, want %v", shapeErr.Shape, shape)
			}
			if plan.IsValid() {
				t.Error("plan should carry the error")
			}
		})
	}
}

func TestAnalyze_InterfaceDiagnostic(t *testing.T) {
	decl := &parser.TypeDecl{Name: "Message", Shape: parser.ShapeInterface}
	_, err := Analyze(decl, NewTypeRegistry())
	if err == nil || !strings.Contains(err.Error(), "interface") {
		t.Errorf("error = %v, want a diagnostic naming interface", err)
	}
}

func TestAnalyze_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		field  parser.Field
		errMsg string
	}{
		{"int", field("N", "int"), "platform-dependent"},
		{"string", field("S", "string"), "no fixed width"},
		{"slice", field("B", "[]byte"), "use an array"},
		{"map", field("M", "map[string]uint8"), "map types"},
		{"pointer", field("P", "*uint8"), "pointer types"},
		{"interface", field("I", "interface{}"), "tagged union"},
		{"nested array", field("G", "[2][2]uint8"), "nested arrays"},
		{"unknown", field("U", "Mystery"), "unknown type"},
		{"blank", field("_", "uint8"), "blank fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := record("Bad", field("Ok", "uint8"), tt.field)
			plan, err := Analyze(decl, NewTypeRegistry())

			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("error = %v, want *FieldError", err)
			}
			if fieldErr.Field != tt.field.Name {
				t.Errorf("FieldError.Field = %q, want %q", fieldErr.Field, tt.field.Name)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not contain %q", err, tt.errMsg)
			}
			if len(plan.Errors) != 1 {
				t.Errorf("plan.Errors = %v, want one error", plan.Errors)
			}
		})
	}
}

func TestAnalyze_CollectsAllFieldErrors(t *testing.T) {
	decl := record("Bad", field("A", "int"), field("B", "uint8"), field("C", "string"))
	plan, err := Analyze(decl, NewTypeRegistry())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(plan.Errors) != 2 {
		t.Errorf("plan.Errors = %v, want 2 errors", plan.Errors)
	}
}

func TestAnalyze_AtomicNeedsStaticWidth(t *testing.T) {
	reg := NewTypeRegistry()
	reg.Register("geo.Point", Dynamic)

	decl := record("Fix", field("Where", "geo.Point"))
	decl.Anno.Atomic = true
	decl.Anno.AtomicSet = true

	_, err := Analyze(decl, reg)
	if err == nil || !strings.Contains(err.Error(), "atomic requires a static width") {
		t.Errorf("error = %v, want atomic width error", err)
	}

	// Defaulted, not requested: falls back to non-atomic
	decl.Anno.AtomicSet = false
	plan, err := Analyze(decl, reg)
	if err != nil || plan.Atomic {
		t.Errorf("Analyze(defaulted atomic Fix) = %+v, %v", plan, err)
	}

	static := record("Pair", field("A", "uint16"))
	static.Anno.Atomic = true
	plan, err = Analyze(static, reg)
	if err != nil || !plan.Atomic {
		t.Errorf("Analyze(atomic Pair) = %+v, %v", plan, err)
	}
}

func TestAnalyze_NilDecl(t *testing.T) {
	if _, err := Analyze(nil, NewTypeRegistry()); err == nil {
		t.Error("expected error for nil declaration")
	}
}
