package diag

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color selects the display color of a Logger's output.
type Color int

const (
	// NoColor renders plain text regardless of terminal support.
	NoColor Color = iota
	Green
	Blue
	Yellow
	Magenta
	Red
)

var colorNames = [...]string{
	NoColor: "NONE",
	Green:   "GREEN",
	Blue:    "BLUE",
	Yellow:  "YELLOW",
	Magenta: "MAGENTA",
	Red:     "RED",
}

// palette maps each color to the Vitesse Dark tones, with 256-color and
// 16-color fallbacks for terminals that cannot show truecolor.
var palette = map[Color]lipgloss.CompleteColor{
	Green:   {TrueColor: "#4d9375", ANSI256: "65", ANSI: "2"},
	Blue:    {TrueColor: "#6394bf", ANSI256: "67", ANSI: "4"},
	Yellow:  {TrueColor: "#e6cc77", ANSI256: "186", ANSI: "3"},
	Magenta: {TrueColor: "#d9739f", ANSI256: "168", ANSI: "5"},
	Red:     {TrueColor: "#cb7676", ANSI256: "167", ANSI: "1"},
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor returns the Color named by s, ignoring case.
func ParseColor(s string) (Color, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return NoColor, fmt.Errorf("unknown color %q", s)
}

// style returns the foreground style for c. Unknown colors get an
// unstyled lipgloss.Style.
func (c Color) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if col, ok := palette[c]; ok {
		st = st.Foreground(col)
	}
	return st
}
