package main

import (
	"fmt"
	"io"

	"github.com/alexhholmes/fixedwire/internal/config"
	"github.com/alexhholmes/fixedwire/internal/parser"
)

// dump prints the parsed field schema of every selected record
func dump(w io.Writer, pkg *parser.Package, cfg config.Config) error {
	if len(pkg.Types) == 0 {
		fmt.Fprintln(w, "No types with @wire annotations found")
		return nil
	}

	for _, t := range pkg.Types {
		if !cfg.Wants(t.Name) {
			continue
		}

		atomic := t.Anno != nil && t.Anno.Atomic
		if cfg.Atomic && t.Anno != nil && !t.Anno.AtomicSet {
			atomic = true
		}
		fmt.Fprintf(w, "\n%s (%s, atomic=%t)\n", t.Name, t.Shape, atomic)
		if t.Shape != parser.ShapeStruct {
			continue
		}

		fmt.Fprintln(w, "Fields:")
		for _, f := range t.Fields {
			fmt.Fprintf(w, "  %-15s %-20s", f.Name, f.GoType)
			if f.Positional {
				fmt.Fprint(w, " embedded")
			}
			if f.Tag != nil && f.Tag.Skip {
				fmt.Fprint(w, " skip")
			}
			if f.Tag != nil && f.Tag.Validate != "" {
				fmt.Fprintf(w, " validate=%s", f.Tag.Validate)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
