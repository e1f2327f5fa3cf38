package codegen

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/alexhholmes/fixedwire/internal/analyzer"
	"github.com/alexhholmes/fixedwire/internal/logging"
)

// Generator generates wire methods for one analyzed record
type Generator struct {
	plan *analyzer.RecordPlan
}

// NewGenerator creates a new code generator
func NewGenerator(plan *analyzer.RecordPlan) *Generator {
	return &Generator{plan: plan}
}

// Generate returns the generated code for this type (without package header/imports)
func (g *Generator) Generate() (string, error) {
	if !g.plan.IsValid() {
		return "", fmt.Errorf("%s: record has %d errors", g.plan.TypeName, len(g.plan.Errors))
	}

	var out strings.Builder
	out.WriteString(g.GenerateSize())
	out.WriteString("\n")
	out.WriteString(g.GenerateMarshal())
	out.WriteString("\n")
	out.WriteString(g.GenerateUnmarshal())

	logging.Logger().Debug("generated record",
		zap.String("type", g.plan.TypeName),
		zap.Int("fields", len(g.plan.Fields)),
		zap.String("width", g.plan.WidthSrc),
		zap.Bool("atomic", g.atomic()))

	return out.String(), nil
}

// atomic mode needs a non-zero static width for its scratch array
func (g *Generator) atomic() bool {
	return g.plan.Atomic && g.plan.Width > 0
}

// GenerateSize generates the WireSize method
func (g *Generator) GenerateSize() string {
	var code strings.Builder

	code.WriteString(fmt.Sprintf("// WireSize returns the encoded width of %s in bytes.\n", g.plan.TypeName))
	code.WriteString(fmt.Sprintf("func (p %s) WireSize() int {\n", g.plan.TypeName))
	code.WriteString(fmt.Sprintf("\treturn %s\n", g.plan.WidthSrc))
	code.WriteString("}\n")

	return code.String()
}

// GenerateMarshal generates the MarshalWire method
func (g *Generator) GenerateMarshal() string {
	var code strings.Builder
	name := g.plan.TypeName

	code.WriteString(fmt.Sprintf("// MarshalWire encodes %s into buf and returns the number of bytes written.\n", name))
	code.WriteString(fmt.Sprintf("func (p %s) MarshalWire(buf []byte) (int, error) {\n", name))

	if len(g.plan.Fields) == 0 {
		code.WriteString("\treturn 0, nil\n")
		code.WriteString("}\n")
		return code.String()
	}

	dst := "buf"
	if g.atomic() {
		dst = "scratch"
		code.WriteString(fmt.Sprintf("\tif len(buf) < %d {\n", g.plan.Width))
		code.WriteString("\t\treturn 0, wire.ErrEncodeBufferTooSmall\n")
		code.WriteString("\t}\n")
		code.WriteString(fmt.Sprintf("\tvar scratch [%d]byte\n", g.plan.Width))
	}
	code.WriteString("\toff := 0\n\n")

	for i, field := range g.plan.Fields {
		code.WriteString(fieldComment(field))
		code.WriteString(g.generateFieldMarshal(field, dst, i == 0))
	}

	if g.atomic() {
		code.WriteString("\tcopy(buf, scratch[:off])\n")
	}
	code.WriteString("\treturn off, nil\n")
	code.WriteString("}\n")

	return code.String()
}

func (g *Generator) generateFieldMarshal(field analyzer.FieldPlan, dst string, first bool) string {
	var code strings.Builder

	if field.Validate != "" {
		code.WriteString(fmt.Sprintf("\tif err := %s(p.%s); err != nil {\n", field.Validate, field.Name))
		code.WriteString("\t\treturn 0, err\n")
		code.WriteString("\t}\n")
	}

	assign := "="
	if first {
		assign = ":="
	}

	var call string
	switch field.Kind {
	case analyzer.PrimitiveField:
		call = fmt.Sprintf("wire.Encode%s(%s[off:], p.%s)", field.Codec, dst, field.Name)
	case analyzer.RecordField:
		call = fmt.Sprintf("p.%s.MarshalWire(%s[off:])", field.Name, dst)
	case analyzer.ArrayField:
		call = fmt.Sprintf("wire.EncodeArray(%s[off:], p.%s[:], %s)", dst, field.Name, elemEncoder(field))
	}

	code.WriteString(fmt.Sprintf("\tn, err %s %s\n", assign, call))
	code.WriteString("\tif err != nil {\n")
	code.WriteString("\t\treturn 0, err\n")
	code.WriteString("\t}\n")
	code.WriteString("\toff += n\n\n")

	return code.String()
}

// GenerateUnmarshal generates the UnmarshalWire method
func (g *Generator) GenerateUnmarshal() string {
	var code strings.Builder
	name := g.plan.TypeName

	code.WriteString(fmt.Sprintf("// UnmarshalWire decodes %s from buf. p is only modified when every field decodes.\n", name))
	code.WriteString(fmt.Sprintf("func (p *%s) UnmarshalWire(buf []byte) error {\n", name))

	if len(g.plan.Fields) == 0 {
		code.WriteString("\treturn nil\n")
		code.WriteString("}\n")
		return code.String()
	}

	code.WriteString("\toff := 0\n\n")

	last := len(g.plan.Fields) - 1
	for i, field := range g.plan.Fields {
		code.WriteString(fieldComment(field))
		code.WriteString(g.generateFieldUnmarshal(field, fmt.Sprintf("f%d", i)))
		if i < last {
			// Advance by the declared width, not by what was read
			code.WriteString(fmt.Sprintf("\toff += %s\n", field.WidthSrc))
		}
		code.WriteString("\n")
	}

	for i, field := range g.plan.Fields {
		code.WriteString(fmt.Sprintf("\tp.%s = f%d\n", field.Name, i))
	}
	code.WriteString("\treturn nil\n")
	code.WriteString("}\n")

	return code.String()
}

func (g *Generator) generateFieldUnmarshal(field analyzer.FieldPlan, local string) string {
	var code strings.Builder

	switch field.Kind {
	case analyzer.PrimitiveField:
		code.WriteString(fmt.Sprintf("\t%s, err := wire.Decode%s[%s](wire.Tail(buf, off))\n",
			local, field.Codec, field.GoType))
		code.WriteString("\tif err != nil {\n")
		code.WriteString("\t\treturn err\n")
		code.WriteString("\t}\n")

	case analyzer.RecordField:
		code.WriteString(fmt.Sprintf("\t%s, err := wire.DecodeRecord[%s](wire.Tail(buf, off))\n",
			local, field.GoType))
		code.WriteString("\tif err != nil {\n")
		code.WriteString("\t\treturn err\n")
		code.WriteString("\t}\n")

	case analyzer.ArrayField:
		// The local array is the slot arena; it is published only once
		// every element has decoded
		code.WriteString(fmt.Sprintf("\tvar %s %s\n", local, field.GoType))
		code.WriteString(fmt.Sprintf("\tif err := wire.DecodeArray(%s[:], wire.Tail(buf, off), %s, %s); err != nil {\n",
			local, field.ElemWidth, elemDecoder(field)))
		code.WriteString("\t\treturn err\n")
		code.WriteString("\t}\n")
	}

	if field.Validate != "" {
		code.WriteString(fmt.Sprintf("\tif err := %s(%s); err != nil {\n", field.Validate, local))
		code.WriteString("\t\treturn err\n")
		code.WriteString("\t}\n")
	}

	return code.String()
}

func elemEncoder(field analyzer.FieldPlan) string {
	if field.ElemKind == analyzer.RecordField {
		return fmt.Sprintf("wire.EncodeRecord[%s]", field.Elem)
	}
	return fmt.Sprintf("wire.Encode%s[%s]", field.Codec, field.Elem)
}

func elemDecoder(field analyzer.FieldPlan) string {
	if field.ElemKind == analyzer.RecordField {
		return fmt.Sprintf("wire.DecodeRecord[%s]", field.Elem)
	}
	return fmt.Sprintf("wire.Decode%s[%s]", field.Codec, field.Elem)
}

// fieldComment renders "// Name: type at [start, end)" for statically
// placed fields
func fieldComment(field analyzer.FieldPlan) string {
	switch {
	case field.Offset < 0:
		return fmt.Sprintf("\t// %s: %s\n", field.Name, field.GoType)
	case field.Width == analyzer.Dynamic:
		return fmt.Sprintf("\t// %s: %s at %d\n", field.Name, field.GoType, field.Offset)
	default:
		return fmt.Sprintf("\t// %s: %s at [%d, %d)\n", field.Name, field.GoType, field.Offset, field.Offset+field.Width)
	}
}
