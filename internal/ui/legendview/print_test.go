package legendview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/tverin/maplegend/internal/legend"
)

func printTree() *legend.Node {
	root := legend.NewNode("Map")
	section := legend.NewNode("Static")
	roads := legend.NewNode("Roads")
	parcels := legend.NewNode("Parcels")
	parcels.Excluded = true
	section.AddChild(roads)
	section.AddChild(parcels)
	root.AddChild(section)
	return root
}

func TestPrint(t *testing.T) {
	out := Print(printTree(), 2, lipgloss.Color("#696969"))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, []string{
		"Map",
		"  Static",
		"    Roads",
		"    Parcels (hidden)",
	}, lines)
}

func TestPrint_IgnoresCollapsedState(t *testing.T) {
	root := printTree()
	root.Children[0].Expanded = false

	out := Print(root, 2, lipgloss.Color("#696969"))

	require.Contains(t, out, "Roads")
	require.Contains(t, out, "Parcels")
}

func TestPrint_NilRoot(t *testing.T) {
	require.Empty(t, Print(nil, 2, lipgloss.Color("#696969")))
}

func TestPrint_DefaultsIndent(t *testing.T) {
	out := Print(printTree(), 0, lipgloss.Color("#696969"))

	require.Contains(t, out, "  Static")
}
