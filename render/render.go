// Package render defines the interface for rendering dictionary lookup
// results into various output styles.
package render

// Renderer decorates fragments of a lookup result and emits the finished
// body. Transforms are pure and accept any string, including the empty one.
type Renderer interface {
	Red(s string) string
	Yellow(s string) string
	Purple(s string) string
	Cyan(s string) string
	Underline(s string) string
	Default(s string) string

	// Emit outputs the body formatted for word.
	Emit(word, body string) error
}
