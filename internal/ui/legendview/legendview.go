// Package legendview is the interactive terminal viewer for legend trees.
// It flattens the visible nodes of a legend into navigable rows, renders them
// with their node styling, and rebuilds the tree when the map document
// changes on disk.
package legendview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/tverin/maplegend/internal/legend"
	"github.com/tverin/maplegend/internal/log"
	"github.com/tverin/maplegend/internal/mapdoc"
)

// row is one visible line of the tree: a node and its depth below the root.
type row struct {
	node  *legend.Node
	depth int
}

// builtMsg carries the result of a legend build.
type builtMsg struct {
	root    *legend.Node
	mapName string
	err     error
}

// changedMsg signals that the map document changed on disk.
type changedMsg struct{}

// Model holds the viewer state.
type Model struct {
	builder *legend.Builder
	style   legend.Style
	mapPath string
	changes <-chan struct{} // watcher notifications, may be nil

	root    *legend.Node
	rows    []row
	mapName string
	loadErr error

	cursor   int
	viewport viewport.Model
	keys     KeyMap
	muted    lipgloss.TerminalColor
	selected lipgloss.TerminalColor
	width    int
	height   int
	ready    bool
}

// Option configures the viewer.
type Option func(*Model)

// WithChangeChannel wires watcher notifications into the viewer; each signal
// triggers a reload of the map document.
func WithChangeChannel(ch <-chan struct{}) Option {
	return func(m *Model) { m.changes = ch }
}

// WithColors overrides the muted and cursor-line colors.
func WithColors(muted, selected lipgloss.TerminalColor) Option {
	return func(m *Model) { m.muted, m.selected = muted, selected }
}

// New creates a viewer that loads the map document at mapPath and builds its
// legend with the given builder and style.
func New(builder *legend.Builder, style legend.Style, mapPath string, opts ...Option) Model {
	m := Model{
		builder:  builder,
		style:    style,
		mapPath:  mapPath,
		keys:     DefaultKeyMap(),
		muted:    lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"},
		selected: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"},
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init loads the map document and starts listening for changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.buildCmd(), m.waitForChange())
}

// buildCmd loads the map document and builds the legend tree.
func (m Model) buildCmd() tea.Cmd {
	builder, style, path := m.builder, m.style, m.mapPath
	return func() tea.Msg {
		mp, err := mapdoc.Load(path)
		if err != nil {
			return builtMsg{err: err}
		}
		root, err := builder.CreateRoot(context.Background(), style, mp)
		if err != nil {
			return builtMsg{err: err}
		}
		return builtMsg{root: root, mapName: mp.Name}
	}
}

// waitForChange blocks on the watcher channel, if any.
func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := max(msg.Height-3, 1) // title, separator, footer
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.refresh()
		return m, nil

	case builtMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatUI, "legend build failed", msg.err, "path", m.mapPath)
			m.loadErr = msg.err
			return m, nil
		}
		m.loadErr = nil
		m.root = msg.root
		m.mapName = msg.mapName
		m.clampCursor()
		m.refresh()
		return m, nil

	case changedMsg:
		log.Debug(log.CatUI, "map document changed, rebuilding", "path", m.mapPath)
		return m, tea.Batch(m.buildCmd(), m.waitForChange())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
			m.refresh()
		case key.Matches(msg, m.keys.Bottom):
			m.cursor = max(len(m.rows)-1, 0)
			m.refresh()
		case key.Matches(msg, m.keys.Toggle):
			if n := m.SelectedNode(); n != nil && len(n.Children) > 0 {
				n.Expanded = !n.Expanded
				m.clampCursor()
				m.refresh()
			}
		case key.Matches(msg, m.keys.Reload):
			return m, m.buildCmd()
		}
		return m, nil
	}
	return m, nil
}

// SelectedNode returns the node under the cursor, or nil.
func (m *Model) SelectedNode() *legend.Node {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor].node
	}
	return nil
}

// SelectByID moves the cursor to the node with the given ID.
// Returns true if the node was found and selected.
func (m *Model) SelectByID(id string) bool {
	for i, r := range m.rows {
		if r.node.ID.String() == id {
			m.cursor = i
			m.refresh()
			return true
		}
	}
	return false
}

func (m *Model) moveCursor(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.rows)-1, 0))
	m.refresh()
}

func (m *Model) clampCursor() {
	m.rows = visibleRows(m.root)
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

// refresh re-flattens the tree, re-renders the viewport content, and keeps
// the cursor line in view.
func (m *Model) refresh() {
	m.rows = visibleRows(m.root)
	if !m.ready {
		return
	}

	lines := make([]string, len(m.rows))
	for i, r := range m.rows {
		lines[i] = m.renderRow(r, i == m.cursor)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	// Keep cursor visible
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// visibleRows flattens the tree into display rows, skipping children of
// collapsed nodes.
func visibleRows(root *legend.Node) []row {
	if root == nil {
		return nil
	}
	var rows []row
	root.Walk(func(n *legend.Node, depth int) bool {
		rows = append(rows, row{node: n, depth: depth})
		return n.Expanded
	})
	return rows
}

// renderRow renders one tree line: cursor marker, indentation, expand
// indicator, symbol swatch, and the styled label.
func (m *Model) renderRow(r row, selected bool) string {
	n := r.node

	marker := "  "
	if selected {
		marker = lipgloss.NewStyle().Bold(true).Foreground(m.selected).Render("> ")
	}

	indentWidth := m.style.Indent
	if indentWidth <= 0 {
		indentWidth = 2
	}
	indent := strings.Repeat(" ", r.depth*indentWidth)

	arrow := "  "
	switch {
	case len(n.Children) > 0 && n.Expanded:
		arrow = "▾ "
	case len(n.Children) > 0:
		arrow = "▸ "
	}

	var sb strings.Builder
	sb.WriteString(marker)
	sb.WriteString(indent)
	sb.WriteString(arrow)

	// Single-row swatches render inline; taller symbols are elided to keep
	// one node per line.
	if n.Symbol != nil && n.Symbol.Bounds().Height == 1 {
		sb.WriteString(n.Symbol.View())
		sb.WriteString(" ")
	}

	label := n.Label
	if n.Excluded {
		label += " (hidden)"
		sb.WriteString(lipgloss.NewStyle().Foreground(m.muted).Render(label))
	} else {
		sb.WriteString(n.Font.Render(label))
	}

	line := sb.String()
	if m.width > 0 {
		line = truncate.StringWithTail(line, uint(m.width), "…") //nolint:gosec // G115: width is a terminal dimension
	}
	return line
}

// View renders the viewer.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	mutedStyle := lipgloss.NewStyle().Foreground(m.muted)

	if m.loadErr != nil {
		return fmt.Sprintf("%s\n\n%s",
			lipgloss.NewStyle().Bold(true).Render("maplegend"),
			mutedStyle.Render(fmt.Sprintf("cannot build legend: %v", m.loadErr)))
	}
	if m.root == nil {
		return mutedStyle.Render("Loading map document...")
	}

	title := m.mapName
	if title == "" {
		title = m.mapPath
	}
	header := lipgloss.NewStyle().Bold(true).Render(title) +
		mutedStyle.Render(fmt.Sprintf("  %d layers", countLeaves(m.root)))

	footer := mutedStyle.Render("j/k move · space toggle · r reload · q quit")

	return header + "\n" + m.viewport.View() + "\n" + footer
}

// countLeaves counts nodes with no children (the actual layer entries).
func countLeaves(root *legend.Node) int {
	count := 0
	root.Walk(func(n *legend.Node, _ int) bool {
		if len(n.Children) == 0 {
			count++
		}
		return true
	})
	return count
}
