// Package html renders lookup results as HTML-style markup suitable for
// desktop notification bodies, and optionally delivers them as notifications.
package html

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sonnes/ydcv/notify"
)

// Renderer wraps fragments in markup spans. With notifications enabled, Emit
// shows the result as a desktop pop-up instead of printing it.
type Renderer struct {
	// Out receives emitted bodies when notifications are off. Nil means
	// standard output.
	Out io.Writer

	// Sender delivers notifications. Nil means the D-Bus session bus.
	Sender notify.Sender

	enabled bool

	// handle is rebuilt and re-sent on every Emit so that each lookup
	// replaces the previous pop-up.
	handle notify.Notification
}

// New creates an HTML Renderer. When notify is true, Emit sends desktop
// notifications rather than writing to standard output.
func New(notify bool) *Renderer {
	return &Renderer{enabled: notify}
}

func (r *Renderer) Red(s string) string       { return span(colorRed, s) }
func (r *Renderer) Yellow(s string) string    { return span(colorYellow, s) }
func (r *Renderer) Purple(s string) string    { return span(colorPurple, s) }
func (r *Renderer) Cyan(s string) string      { return span(colorCyan, s) }
func (r *Renderer) Underline(s string) string { return underline(s) }
func (r *Renderer) Default(s string) string   { return s }

// Notify reports whether Emit delivers desktop notifications. It lets callers
// that pick a renderer check which HTML mode they got.
func (r *Renderer) Notify() bool {
	return r.enabled
}

// Emit prints body, or sends it as a notification titled word. Notification
// delivery is best-effort: failures are logged at debug level and never
// returned.
func (r *Renderer) Emit(word, body string) error {
	if !r.enabled {
		_, err := fmt.Fprintln(r.out(), body)
		return err
	}

	r.handle.AppName = notify.AppName
	r.handle.Summary = word
	r.handle.Body = body
	r.handle.Timeout = notify.DefaultTimeout

	if err := r.sender().Send(&r.handle); err != nil {
		log.Debug("desktop notification not delivered", "word", word, "err", err)
	}
	return nil
}

func (r *Renderer) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r *Renderer) sender() notify.Sender {
	if r.Sender == nil {
		r.Sender = notify.NewDBus()
	}
	return r.Sender
}
