package legendview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tverin/maplegend/internal/legend"
)

// Print renders the legend tree once as multi-line text, for the one-shot
// render command. Every node is printed regardless of its Expanded flag;
// excluded nodes are dimmed and annotated.
func Print(root *legend.Node, indent int, muted lipgloss.TerminalColor) string {
	if root == nil {
		return ""
	}
	if indent <= 0 {
		indent = 2
	}
	mutedStyle := lipgloss.NewStyle().Foreground(muted)

	var sb strings.Builder
	root.Walk(func(n *legend.Node, depth int) bool {
		sb.WriteString(strings.Repeat(" ", depth*indent))

		if n.Symbol != nil && n.Symbol.Bounds().Height == 1 {
			sb.WriteString(n.Symbol.View())
			sb.WriteString(" ")
		}

		if n.Excluded {
			sb.WriteString(mutedStyle.Render(n.Label + " (hidden)"))
		} else {
			sb.WriteString(n.Font.Render(n.Label))
		}
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}
