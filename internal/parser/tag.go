package parser

import (
	"fmt"
	"go/token"
	"strings"
)

// FieldTag holds the parsed `wire:"..."` struct tag of one field
type FieldTag struct {
	Skip     bool   // "-": field is not part of the encoding
	Validate string // name of a func(T) error run before encode and after decode
}

// ParseTag parses wire struct tags
//
// Semantics:
//   - "-"               : field is skipped; never encoded, left untouched on decode
//   - "validate=Func"   : Func(value) error guards the field on both paths
//
// Examples:
//
//	`wire:"-"`
//	`wire:"validate=checkMode"`
func ParseTag(tag string) (*FieldTag, error) {
	if tag == "" {
		return nil, fmt.Errorf("empty wire tag")
	}

	if tag == "-" {
		return &FieldTag{Skip: true}, nil
	}

	f := &FieldTag{}
	for _, part := range strings.Split(tag, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid wire tag parameter: %s", part)
		}

		switch key {
		case "validate":
			if !token.IsIdentifier(value) {
				return nil, fmt.Errorf("validate= requires a function name, got: %q", value)
			}
			f.Validate = value
		default:
			return nil, fmt.Errorf("unknown wire tag parameter: %s", key)
		}
	}

	return f, nil
}
