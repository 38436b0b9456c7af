package html

// Color names understood by notification servers that accept Pango-style
// markup in the notification body.
const (
	colorRed    = "red"
	colorYellow = "goldenrod"
	colorPurple = "purple"
	colorCyan   = "navy"
)

func span(color, s string) string {
	return `<span color="` + color + `">` + s + `</span>`
}

func underline(s string) string {
	return "<u>" + s + "</u>"
}
