package analyzer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexhholmes/fixedwire/internal/parser"
)

// Dynamic marks a record whose width is only known at run time, through
// its WireSize method.
const Dynamic = -1

var errUnknownType = errors.New("unknown type")

// primitives maps every supported basic type to its wire codec suffix
var primitives = map[string]string{
	"uint8":   "Uint8",
	"byte":    "Uint8",
	"int8":    "Int8",
	"bool":    "Bool",
	"uint16":  "Uint16",
	"int16":   "Int16",
	"uint32":  "Uint32",
	"int32":   "Int32",
	"rune":    "Int32",
	"float32": "Float32",
	"uint64":  "Uint64",
	"int64":   "Int64",
	"float64": "Float64",
}

// SizeOf returns the size in bytes of a Go type
// Returns error for unsupported types
func SizeOf(goType string) (int, error) {
	// Primitive types
	switch goType {
	case "uint8", "int8", "byte", "bool":
		return 1, nil
	case "uint16", "int16":
		return 2, nil
	case "uint32", "int32", "rune", "float32":
		return 4, nil
	case "uint64", "int64", "float64":
		return 8, nil
	}

	// Basic types without a fixed width
	switch goType {
	case "int", "uint", "uintptr":
		return 0, fmt.Errorf("%s has a platform-dependent width; use a sized integer", goType)
	case "string":
		return 0, fmt.Errorf("string has no fixed width")
	case "complex64", "complex128":
		return 0, fmt.Errorf("%s not supported", goType)
	}

	// Slice: []T - check before array
	if strings.HasPrefix(goType, "[]") {
		return 0, fmt.Errorf("slice %s has no fixed width; use an array", goType)
	}

	// Array: [N]T
	if strings.HasPrefix(goType, "[") && strings.Contains(goType, "]") {
		return arraySize(goType)
	}

	if err := unsupportedForm(goType); err != nil {
		return 0, err
	}

	// Unknown/struct type - needs type registry
	return 0, fmt.Errorf("%w: %s (use type registry for records)", errUnknownType, goType)
}

// CodecOf returns the wire codec suffix of a basic type: "Uint16" for
// uint16, so the generator can emit wire.EncodeUint16 / wire.DecodeUint16.
func CodecOf(goType string) (string, bool) {
	codec, ok := primitives[goType]
	return codec, ok
}

func unsupportedForm(goType string) error {
	switch {
	case strings.HasPrefix(goType, "*"):
		return fmt.Errorf("pointer types not supported: %s", goType)
	case strings.HasPrefix(goType, "map["):
		return fmt.Errorf("map types not supported: %s", goType)
	case strings.HasPrefix(goType, "chan "):
		return fmt.Errorf("channel types not supported: %s", goType)
	case goType == "func":
		return fmt.Errorf("func types not supported")
	case goType == "interface{}", goType == "any":
		return fmt.Errorf("interface types not supported; a tagged union has no fixed width")
	case goType == "struct{}":
		return fmt.Errorf("anonymous structs not supported; declare a named @wire record")
	case goType == "generic":
		return fmt.Errorf("generic types not supported")
	}
	return nil
}

var arrayRe = regexp.MustCompile(`^\[(\w+)\](.+)$`)

func arraySize(goType string) (int, error) {
	// Parse: [16]byte → 16 * 1
	matches := arrayRe.FindStringSubmatch(goType)
	if matches == nil {
		return 0, fmt.Errorf("invalid array type: %s", goType)
	}

	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid array length: %s", matches[1])
	}

	elemType := matches[2]
	if strings.HasPrefix(elemType, "[") {
		return 0, fmt.Errorf("nested arrays not supported: %s", goType)
	}
	elemSize, err := SizeOf(elemType)
	if err != nil {
		return 0, fmt.Errorf("array element: %w", err)
	}

	return n * elemSize, nil
}

// TypeRegistry tracks record widths, named types and constants for
// record analysis
type TypeRegistry struct {
	types   map[string]int    // record type name → width in bytes, or Dynamic
	aliases map[string]string // named type or alias → underlying type
	defined map[string]bool   // named types that are not aliases
	consts  map[string]int    // integer constant → value

	// Same-package records are sized lazily from their fields
	pending  map[string]*parser.TypeDecl
	visiting map[string]bool
	invalid  map[string]error
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types:    make(map[string]int),
		aliases:  make(map[string]string),
		defined:  make(map[string]bool),
		consts:   make(map[string]int),
		pending:  make(map[string]*parser.TypeDecl),
		visiting: make(map[string]bool),
		invalid:  make(map[string]error),
	}
}

// Register adds a record type with its width. Use Dynamic for records
// whose width is only known at run time.
func (r *TypeRegistry) Register(name string, size int) {
	r.types[name] = size
}

// RegisterAlias adds a type alias mapping (e.g., type PageID = uint64)
func (r *TypeRegistry) RegisterAlias(alias, underlying string) {
	r.aliases[alias] = underlying
}

// RegisterNamed adds a defined type (e.g., type Mode uint16). A defined
// type does not inherit the methods of a record it is declared over.
func (r *TypeRegistry) RegisterNamed(name, underlying string) {
	r.aliases[name] = underlying
	r.defined[name] = true
}

// RegisterConst adds an integer constant usable as an array length
func (r *TypeRegistry) RegisterConst(name string, value int) {
	r.consts[name] = value
}

// RegisterPackage adds everything a parsed package declares: named
// types, aliases, constants and its @wire records. Record widths are
// computed on first use.
func (r *TypeRegistry) RegisterPackage(pkg *parser.Package) {
	for name, underlying := range pkg.Named {
		r.RegisterNamed(name, underlying)
	}
	for name, underlying := range pkg.Aliases {
		r.RegisterAlias(name, underlying)
	}
	for name, value := range pkg.Consts {
		r.RegisterConst(name, value)
	}
	for _, decl := range pkg.Types {
		if decl.Shape == parser.ShapeStruct {
			r.pending[decl.Name] = decl
		}
	}
}

// Lookup returns the width of a registered record
func (r *TypeRegistry) Lookup(name string) (int, bool) {
	if size, ok := r.types[name]; ok {
		return size, true
	}
	if _, ok := r.pending[name]; !ok {
		return 0, false
	}
	size, err := r.recordWidth(name)
	if err != nil {
		return 0, false
	}
	return size, true
}

// ResolveType resolves type aliases to their underlying types
// Returns the original type if not an alias
func (r *TypeRegistry) ResolveType(goType string) string {
	seen := make(map[string]bool)
	// Recursively resolve aliases
	for !seen[goType] {
		seen[goType] = true
		underlying, ok := r.aliases[goType]
		if !ok {
			break
		}
		goType = underlying
	}
	return goType
}

// IsRecord reports whether goType names a record, directly or through
// aliases
func (r *TypeRegistry) IsRecord(goType string) bool {
	resolved := r.ResolveType(goType)
	if _, ok := r.types[resolved]; ok {
		return true
	}
	_, ok := r.pending[resolved]
	return ok
}

// SizeOf calculates size using registry for records and named types
func (r *TypeRegistry) SizeOf(goType string) (int, error) {
	// Resolve type aliases
	resolved := r.ResolveType(goType)

	// Handle arrays of registered types: [N]RegisteredType
	if strings.HasPrefix(resolved, "[") && !strings.HasPrefix(resolved, "[]") {
		n, elemType, err := r.ArrayOf(resolved)
		if err != nil {
			return 0, err
		}
		elemSize, err := r.SizeOf(elemType) // Recursive
		if err != nil {
			return 0, fmt.Errorf("array element: %w", err)
		}
		if elemSize == Dynamic {
			return Dynamic, nil
		}
		return n * elemSize, nil
	}

	// Try built-in types
	size, err := SizeOf(resolved)
	if err == nil {
		return size, nil
	}
	if !errors.Is(err, errUnknownType) {
		return 0, err
	}

	if r.IsRecord(resolved) {
		if err := r.checkMethods(goType); err != nil {
			return 0, err
		}
		return r.recordWidth(resolved)
	}

	return 0, fmt.Errorf("%w: %s (not a @wire record or fixed-width type)", errUnknownType, goType)
}

// ArrayOf splits [N]T into its length and element type, resolving named
// constants. Nested arrays are rejected.
func (r *TypeRegistry) ArrayOf(goType string) (int, string, error) {
	matches := arrayRe.FindStringSubmatch(goType)
	if matches == nil {
		return 0, "", fmt.Errorf("invalid array type: %s", goType)
	}

	n, err := strconv.Atoi(matches[1])
	if err != nil {
		value, ok := r.consts[matches[1]]
		if !ok {
			return 0, "", fmt.Errorf("invalid array length: %s", matches[1])
		}
		n = value
	}
	if n < 0 {
		return 0, "", fmt.Errorf("negative array length: %d", n)
	}

	elemType := matches[2]
	if strings.HasPrefix(r.ResolveType(elemType), "[") {
		return 0, "", fmt.Errorf("nested arrays not supported: %s", goType)
	}
	return n, elemType, nil
}

// checkMethods rejects a defined type declared over a record: the wire
// methods belong to the record, not to the new type.
func (r *TypeRegistry) checkMethods(goType string) error {
	for name := goType; ; {
		if r.defined[name] {
			return fmt.Errorf("%s is a defined type over record %s and has no wire methods; use an alias",
				goType, r.ResolveType(goType))
		}
		next, ok := r.aliases[name]
		if !ok || next == name {
			return nil
		}
		name = next
	}
}

// recordWidth sums the widths of a same-package record's encoded fields
func (r *TypeRegistry) recordWidth(name string) (int, error) {
	if err, ok := r.invalid[name]; ok {
		return 0, err
	}
	if size, ok := r.types[name]; ok {
		return size, nil
	}
	if r.visiting[name] {
		return 0, fmt.Errorf("recursive record: %s contains itself", name)
	}

	r.visiting[name] = true
	defer delete(r.visiting, name)

	total := 0
	for _, field := range r.pending[name].Fields {
		if field.Tag != nil && field.Tag.Skip {
			continue
		}
		size, err := r.SizeOf(field.GoType)
		if err != nil {
			err = fmt.Errorf("record %s: field %s: %w", name, field.Name, err)
			r.invalid[name] = err
			return 0, err
		}
		if size == Dynamic || total == Dynamic {
			total = Dynamic
			continue
		}
		total += size
	}

	r.types[name] = total
	return total, nil
}
