package render

import (
	"strings"

	"github.com/sonnes/ydcv/core"
)

// listSep joins translations and web reference values.
const listSep = "；"

// Explain lays out a lookup entry as a multi-line body, decorating each part
// through r.
func Explain(r Renderer, e *core.Entry) string {
	var lines []string

	if !e.OK() {
		return r.Red(" -- No result for this query.")
	}

	translation := strings.Join(e.Translation, listSep)

	// Sentences and phrases come back with a bare translation.
	if e.Basic == nil && len(e.Web) == 0 {
		lines = append(lines,
			r.Underline(e.Query),
			r.Cyan("  Translation:"),
			"    "+translation,
		)
		return strings.Join(lines, "\n")
	}

	lines = append(lines, r.Underline(e.Query)+" "+phonetic(r, e.Basic)+" "+r.Default(translation))

	if e.Basic != nil && len(e.Basic.Explains) > 0 {
		lines = append(lines, r.Cyan("  Word Explanation:"))
		for _, exp := range e.Basic.Explains {
			lines = append(lines, r.Default("     * "+exp))
		}
	}

	if len(e.Web) > 0 {
		lines = append(lines, r.Cyan("  Web Reference:"))
		for _, item := range e.Web {
			values := make([]string, len(item.Value))
			for i, v := range item.Value {
				values[i] = r.Purple(v)
			}
			lines = append(lines,
				"     * "+r.Yellow(item.Key),
				"       "+strings.Join(values, listSep),
			)
		}
	}

	return strings.Join(lines, "\n")
}

// phonetic prefers the UK/US pair and falls back to the general phonetic.
func phonetic(r Renderer, b *core.Basic) string {
	switch {
	case b == nil:
		return ""
	case b.UKPhonetic != "" && b.USPhonetic != "":
		return " UK: [" + r.Yellow(b.UKPhonetic) + "], US: [" + r.Yellow(b.USPhonetic) + "]"
	case b.Phonetic != "":
		return "[" + r.Yellow(b.Phonetic) + "]"
	default:
		return ""
	}
}
