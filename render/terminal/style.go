package terminal

import "github.com/charmbracelet/x/ansi"

var (
	styleRed       = ansi.Style{}.ForegroundColor(ansi.Red)     // 31
	styleYellow    = ansi.Style{}.ForegroundColor(ansi.Yellow)  // 33
	stylePurple    = ansi.Style{}.ForegroundColor(ansi.Magenta) // 35
	styleCyan      = ansi.Style{}.ForegroundColor(ansi.Cyan)    // 36
	styleUnderline = ansi.Style{}.Underline()                   // 4
)

// reset is the explicit "\x1b[0m" form. ansi.Style.Styled closes with the
// short "\x1b[m", which consumers of this output do not expect.
var reset = ansi.Style{}.Reset().String()

func wrap(style ansi.Style, s string) string {
	return style.String() + s + reset
}
