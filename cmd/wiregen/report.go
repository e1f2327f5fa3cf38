package main

import (
	"fmt"
	"go/token"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// reporter prints diagnostics, colored only when w is a terminal
type reporter struct {
	w    io.Writer
	err  *color.Color
	warn *color.Color
	pos  *color.Color
}

func newReporter(w io.Writer) *reporter {
	r := &reporter{
		w:    w,
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow),
		pos:  color.New(color.Faint),
	}

	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	for _, c := range []*color.Color{r.err, r.warn, r.pos} {
		if tty {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *reporter) Error(pos token.Position, msg string) {
	if pos.IsValid() {
		r.pos.Fprintf(r.w, "%s: ", pos)
	}
	r.err.Fprint(r.w, "error: ")
	fmt.Fprintln(r.w, msg)
}

func (r *reporter) Warn(msg string) {
	r.warn.Fprint(r.w, "warning: ")
	fmt.Fprintln(r.w, msg)
}
