// Package json renders lookup entries as JSON (serializes the entry format
// as-is).
package json

import (
	"encoding/json"
	"io"

	"github.com/sonnes/ydcv/core"
)

// Renderer renders an entry to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer.
func New(indent bool) *Renderer {
	return &Renderer{Indent: indent}
}

// Render writes e to w as a single JSON document followed by a newline.
func (r *Renderer) Render(w io.Writer, e *core.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(e)
}
