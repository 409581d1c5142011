package legend

import "github.com/charmbracelet/lipgloss"

// Style bundles the visual hints applied to legend nodes: header and item
// fonts, a foreground brush, indentation, padding, and the target symbol
// size. The builder copies these references onto nodes unmodified; it never
// interprets them.
type Style struct {
	HeaderFont lipgloss.Style
	ItemFont   lipgloss.Style
	Foreground lipgloss.TerminalColor
	Indent     int
	Padding    Size
	SymbolSize Size
}

// DefaultStyle returns the styling used when no theme is configured.
func DefaultStyle() Style {
	fg := lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"}
	return Style{
		HeaderFont: lipgloss.NewStyle().Bold(true),
		ItemFont:   lipgloss.NewStyle(),
		Foreground: fg,
		Indent:     2,
		Padding:    Size{Width: 1, Height: 0},
		SymbolSize: Size{Width: 2, Height: 1},
	}
}
