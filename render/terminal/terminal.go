// Package terminal renders lookup results with ANSI SGR colors.
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
)

// Renderer wraps fragments in ANSI escape sequences and prints bodies to
// the terminal.
type Renderer struct {
	// Out receives emitted bodies. Nil means standard output.
	Out io.Writer
}

// New creates a terminal Renderer writing to standard output.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Red(s string) string       { return wrap(styleRed, s) }
func (r *Renderer) Yellow(s string) string    { return wrap(styleYellow, s) }
func (r *Renderer) Purple(s string) string    { return wrap(stylePurple, s) }
func (r *Renderer) Cyan(s string) string      { return wrap(styleCyan, s) }
func (r *Renderer) Underline(s string) string { return wrap(styleUnderline, s) }
func (r *Renderer) Default(s string) string   { return s }

// Emit writes body followed by a newline.
func (r *Renderer) Emit(_, body string) error {
	_, err := fmt.Fprintln(r.out(), body)
	return err
}

func (r *Renderer) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}

// ColorEnabled reports whether "auto" color should resolve to color for f.
// NO_COLOR, when set to any value, disables color.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(f)
}
