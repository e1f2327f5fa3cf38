package codegen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/alexhholmes/fixedwire/internal/analyzer"
	wparser "github.com/alexhholmes/fixedwire/internal/parser"
)

func field(name, goType string) wparser.Field {
	return wparser.Field{Name: name, GoType: goType, Tag: &wparser.FieldTag{}}
}

func analyze(t *testing.T, reg *analyzer.TypeRegistry, name string, atomic bool, fields ...wparser.Field) *analyzer.RecordPlan {
	t.Helper()
	decl := &wparser.TypeDecl{
		Name:   name,
		Anno:   &wparser.TypeAnnotation{Atomic: atomic},
		Shape:  wparser.ShapeStruct,
		Fields: fields,
	}
	plan, err := analyzer.Analyze(decl, reg)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	return plan
}

func generate(t *testing.T, plan *analyzer.RecordPlan) string {
	t.Helper()
	code, err := NewGenerator(plan).Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return code
}

func assertContains(t *testing.T, code string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(code, w) {
			t.Errorf("generated code missing %q\n%s", w, code)
		}
	}
}

func TestGeneratePrimitiveFields(t *testing.T) {
	// type Pair struct {
	//     A uint16
	//     B uint8
	// }
	plan := analyze(t, analyzer.NewTypeRegistry(), "Pair", false, field("A", "uint16"), field("B", "uint8"))
	code := generate(t, plan)

	assertContains(t, code,
		"func (p Pair) WireSize() int {\n\treturn 3\n}",
		"func (p Pair) MarshalWire(buf []byte) (int, error) {",
		"func (p *Pair) UnmarshalWire(buf []byte) error {",
		"// A: uint16 at [0, 2)",
		"// B: uint8 at [2, 3)",
		"n, err := wire.EncodeUint16(buf[off:], p.A)",
		"n, err = wire.EncodeUint8(buf[off:], p.B)",
		"f0, err := wire.DecodeUint16[uint16](wire.Tail(buf, off))",
		"off += 2\n",
		"f1, err := wire.DecodeUint8[uint8](wire.Tail(buf, off))",
		"p.A = f0\n\tp.B = f1\n\treturn nil",
	)

	// Fail fast on every field
	if got := strings.Count(code, "return 0, err"); got != 2 {
		t.Errorf("marshal has %d early returns, want 2", got)
	}
	// No advance after the last decoded field
	if strings.Contains(code, "off += 1\n") {
		t.Error("decode advances past the last field")
	}
}

func TestGenerateEmptyRecord(t *testing.T) {
	plan := analyze(t, analyzer.NewTypeRegistry(), "Unit", true)
	code := generate(t, plan)

	assertContains(t, code,
		"func (p Unit) WireSize() int {\n\treturn 0\n}",
		"func (p Unit) MarshalWire(buf []byte) (int, error) {\n\treturn 0, nil\n}",
		"func (p *Unit) UnmarshalWire(buf []byte) error {\n\treturn nil\n}",
	)
	if strings.Contains(code, "scratch") {
		t.Error("empty atomic record should not use scratch space")
	}
}

func TestGenerateNamedTypesAndValidate(t *testing.T) {
	reg := analyzer.NewTypeRegistry()
	reg.RegisterNamed("Mode", "uint16")

	plan := analyze(t, reg, "Frame", false,
		wparser.Field{Name: "Mode", GoType: "Mode", Tag: &wparser.FieldTag{Validate: "checkMode"}},
		field("Ok", "bool"),
	)
	code := generate(t, plan)

	assertContains(t, code,
		"if err := checkMode(p.Mode); err != nil {\n\t\treturn 0, err\n\t}\n\tn, err := wire.EncodeUint16(buf[off:], p.Mode)",
		"f0, err := wire.DecodeUint16[Mode](wire.Tail(buf, off))",
		"if err := checkMode(f0); err != nil {\n\t\treturn err\n\t}",
		"f1, err := wire.DecodeBool[bool](wire.Tail(buf, off))",
	)
}

func TestGenerateArrays(t *testing.T) {
	reg := analyzer.NewTypeRegistry()
	reg.Register("Item", 3)
	reg.RegisterConst("Slots", 4)

	plan := analyze(t, reg, "Table", false,
		field("Samples", "[Slots]uint8"),
		field("Items", "[2]Item"),
	)
	code := generate(t, plan)

	assertContains(t, code,
		"// Samples: [Slots]uint8 at [0, 4)",
		"n, err := wire.EncodeArray(buf[off:], p.Samples[:], wire.EncodeUint8[uint8])",
		"n, err = wire.EncodeArray(buf[off:], p.Items[:], wire.EncodeRecord[Item])",
		"var f0 [Slots]uint8\n\tif err := wire.DecodeArray(f0[:], wire.Tail(buf, off), 1, wire.DecodeUint8[uint8]); err != nil {",
		"off += 4\n",
		"var f1 [2]Item\n\tif err := wire.DecodeArray(f1[:], wire.Tail(buf, off), 3, wire.DecodeRecord[Item]); err != nil {",
		"p.Samples = f0",
		"p.Items = f1",
		"return 10",
	)
}

func TestGenerateNestedRecords(t *testing.T) {
	reg := analyzer.NewTypeRegistry()
	reg.Register("Pair", 3)
	reg.Register("geo.Point", analyzer.Dynamic)

	plan := analyze(t, reg, "Fix", false,
		wparser.Field{Name: "Pair", Positional: true, GoType: "Pair", Tag: &wparser.FieldTag{}},
		field("Where", "geo.Point"),
		field("Seq", "uint32"),
	)
	code := generate(t, plan)

	assertContains(t, code,
		"n, err := p.Pair.MarshalWire(buf[off:])",
		"n, err = p.Where.MarshalWire(buf[off:])",
		"f0, err := wire.DecodeRecord[Pair](wire.Tail(buf, off))",
		"off += 3\n",
		"f1, err := wire.DecodeRecord[geo.Point](wire.Tail(buf, off))",
		"off += wire.WidthOf[geo.Point]()\n",
		"// Where: geo.Point at 3",
		"// Seq: uint32\n",
		"return 7 + wire.WidthOf[geo.Point]()",
	)
}

func TestGenerateAtomic(t *testing.T) {
	plan := analyze(t, analyzer.NewTypeRegistry(), "Pair", true, field("A", "uint16"), field("B", "uint8"))
	code := generate(t, plan)

	assertContains(t, code,
		"if len(buf) < 3 {\n\t\treturn 0, wire.ErrEncodeBufferTooSmall\n\t}",
		"var scratch [3]byte",
		"n, err := wire.EncodeUint16(scratch[off:], p.A)",
		"n, err = wire.EncodeUint8(scratch[off:], p.B)",
		"copy(buf, scratch[:off])\n\treturn off, nil",
	)
	if strings.Contains(code, "(buf[off:]") {
		t.Error("atomic marshal writes into buf before every field succeeds")
	}
}

func TestGenerateInvalidPlan(t *testing.T) {
	decl := &wparser.TypeDecl{Name: "Message", Shape: wparser.ShapeInterface}
	plan, err := analyzer.Analyze(decl, analyzer.NewTypeRegistry())
	if err == nil {
		t.Fatal("expected analysis error")
	}

	code, err := NewGenerator(plan).Generate()
	if err == nil {
		t.Fatal("Generate() should fail for an invalid plan")
	}
	if code != "" {
		t.Errorf("Generate() emitted code for an invalid plan:\n%s", code)
	}
}

func TestGenerateFile(t *testing.T) {
	reg := analyzer.NewTypeRegistry()
	reg.Register("geo.Point", analyzer.Dynamic)

	plans := []*analyzer.RecordPlan{
		analyze(t, reg, "Pair", false, field("A", "uint16"), field("B", "uint8")),
		analyze(t, reg, "Fix", false, field("Where", "geo.Point")),
	}

	src, err := GenerateFile(&File{
		Package: "demo",
		Imports: map[string]string{"geo": "example.com/geo/v2", "fmt": "fmt"},
		Plans:   plans,
	})
	if err != nil {
		t.Fatalf("GenerateFile() error: %v", err)
	}
	code := string(src)

	if !strings.HasPrefix(code, Header+"\n") {
		t.Errorf("missing generated header:\n%s", code)
	}
	assertContains(t, code,
		"package demo",
		`"github.com/alexhholmes/fixedwire/wire"`,
		`geo "example.com/geo/v2"`,
	)
	if strings.Contains(code, `"fmt"`) {
		t.Error("unused source imports leaked into the generated file")
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "demo_wire.go", src, parser.ParseComments); err != nil {
		t.Errorf("generated file does not parse: %v\n%s", err, code)
	}
}

func TestGenerateFileRejectsInvalidPlans(t *testing.T) {
	good := analyze(t, analyzer.NewTypeRegistry(), "Pair", false, field("A", "uint16"))
	bad, _ := analyzer.Analyze(&wparser.TypeDecl{Name: "Message", Shape: wparser.ShapeInterface}, analyzer.NewTypeRegistry())

	src, err := GenerateFile(&File{Package: "demo", Plans: []*analyzer.RecordPlan{good, bad}})
	if err == nil || !strings.Contains(err.Error(), "interface") {
		t.Errorf("GenerateFile() error = %v, want interface diagnostic", err)
	}
	if src != nil {
		t.Error("GenerateFile() returned source alongside an error")
	}
}

func TestQualifier(t *testing.T) {
	tests := map[string]string{
		"geo.Point":    "geo",
		"[4]geo.Point": "geo",
		"uint16":       "",
		"[Slots]Mode":  "",
	}
	for goType, want := range tests {
		if got := qualifier(goType); got != want {
			t.Errorf("qualifier(%q) = %q, want %q", goType, got, want)
		}
	}
}
