// Package plain renders lookup results as undecorated text.
package plain

import (
	"fmt"
	"io"
	"os"
)

// Renderer leaves every fragment untouched and prints bodies as-is.
type Renderer struct {
	// Out receives emitted bodies. Nil means standard output.
	Out io.Writer
}

// New creates a plain Renderer writing to standard output.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Red(s string) string       { return s }
func (r *Renderer) Yellow(s string) string    { return s }
func (r *Renderer) Purple(s string) string    { return s }
func (r *Renderer) Cyan(s string) string      { return s }
func (r *Renderer) Underline(s string) string { return s }
func (r *Renderer) Default(s string) string   { return s }

// Emit writes body followed by a newline. The word is not printed; the body
// already starts with it.
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
