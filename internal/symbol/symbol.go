// Package symbol renders terminal symbol previews for map layers.
package symbol

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tverin/maplegend/internal/legend"
)

// Colored is implemented by layers that expose a swatch color.
type Colored interface {
	SwatchColor() string
}

// Swatch is a rendered block of colored cells attached to a legend node.
type Swatch struct {
	view string
	size legend.Size
}

func (s *Swatch) View() string        { return s.view }
func (s *Swatch) Bounds() legend.Size { return s.size }

// texturedColor is used for layers that carry no swatch color of their own.
var texturedColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#696969"}

// TerminalProvider renders color swatches sized in terminal cells. Layers
// exposing a swatch color get a solid block in that color; anything else
// gets a neutral textured block.
type TerminalProvider struct{}

// NewTerminalProvider creates the default preview provider.
func NewTerminalProvider() *TerminalProvider {
	return &TerminalProvider{}
}

// Preview renders a swatch for the layer, or nil when either dimension is 0.
func (p *TerminalProvider) Preview(layer legend.Layer, width, height int) legend.Symbol {
	if width <= 0 || height <= 0 {
		return nil
	}

	glyph := "▒"
	style := lipgloss.NewStyle().Foreground(texturedColor)
	if c, ok := layer.(Colored); ok && c.SwatchColor() != "" {
		glyph = "█"
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(c.SwatchColor()))
	}

	row := strings.Repeat(glyph, width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}

	return &Swatch{
		view: style.Render(strings.Join(rows, "\n")),
		size: legend.Size{Width: width, Height: height},
	}
}
