package codegen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"github.com/alexhholmes/fixedwire/internal/analyzer"
	"github.com/alexhholmes/fixedwire/internal/logging"
)

// WireImport is the import path of the run-time codec package every
// generated file depends on
const WireImport = "github.com/alexhholmes/fixedwire/wire"

// Header is the first line of every generated file
const Header = "// Code generated by wiregen; DO NOT EDIT."

// File describes one generated output file
type File struct {
	Package string            // package clause
	Imports map[string]string // package name → import path, from the source package
	Plans   []*analyzer.RecordPlan
}

// GenerateFile renders every plan into one formatted Go source file.
// Any invalid plan fails the whole file.
func GenerateFile(f *File) ([]byte, error) {
	var errs []error
	for _, plan := range f.Plans {
		for _, msg := range plan.Errors {
			errs = append(errs, errors.New(msg))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var code strings.Builder
	code.WriteString(Header + "\n\n")
	code.WriteString(fmt.Sprintf("package %s\n\n", f.Package))

	code.WriteString("import (\n")
	code.WriteString(fmt.Sprintf("\t%q\n", WireImport))
	for _, imp := range f.qualifiedImports() {
		code.WriteString("\t" + imp + "\n")
	}
	code.WriteString(")\n\n")

	for _, plan := range f.Plans {
		body, err := NewGenerator(plan).Generate()
		if err != nil {
			return nil, err
		}
		code.WriteString(body)
		code.WriteString("\n")
	}

	// Also drops the wire import when every record is empty
	src, err := imports.Process(f.Package+"_wire.go", []byte(code.String()), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

// qualifiedImports returns import specs for every package qualifier the
// plans mention, e.g. geo in geo.Point
func (f *File) qualifiedImports() []string {
	seen := make(map[string]bool)
	for _, plan := range f.Plans {
		for _, field := range plan.Fields {
			for _, goType := range []string{field.GoType, field.Elem} {
				if q := qualifier(goType); q != "" {
					seen[q] = true
				}
			}
		}
	}

	var specs []string
	for name := range seen {
		path, ok := f.Imports[name]
		if !ok {
			logging.Logger().Warn("no import for qualifier", zap.String("qualifier", name))
			continue
		}
		if path[strings.LastIndex(path, "/")+1:] == name {
			specs = append(specs, fmt.Sprintf("%q", path))
		} else {
			specs = append(specs, fmt.Sprintf("%s %q", name, path))
		}
	}
	sort.Strings(specs)
	return specs
}

// qualifier returns "geo" for "geo.Point" and "[4]geo.Point"
func qualifier(goType string) string {
	if i := strings.LastIndex(goType, "]"); i >= 0 {
		goType = goType[i+1:]
	}
	if i := strings.Index(goType, "."); i > 0 {
		return goType[:i]
	}
	return ""
}

// OutputPath returns the default output file for a package directory
func OutputPath(dir, pkgName string) string {
	return filepath.Join(dir, pkgName+"_wire.go")
}

// WriteFile writes generated source, replacing any previous output
func WriteFile(path string, src []byte) error {
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logging.Logger().Info("wrote generated file", zap.String("path", path), zap.Int("bytes", len(src)))
	return nil
}
