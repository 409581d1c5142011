// Package config provides configuration types, defaults, and persistence for
// maplegend.
package config

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tverin/maplegend/internal/legend"
	"github.com/tverin/maplegend/internal/tracing"
)

// Config holds all configuration options for maplegend.
type Config struct {
	AutoRefresh         bool           `mapstructure:"auto_refresh"`
	AutoRefreshDebounce time.Duration  `mapstructure:"auto_refresh_debounce"`
	Theme               ThemeConfig    `mapstructure:"theme"`
	Legend              LegendConfig   `mapstructure:"legend"`
	Tracing             tracing.Config `mapstructure:"tracing"`
}

// ThemeConfig holds color customization options. Colors are hex strings;
// empty values fall back to adaptive defaults.
type ThemeConfig struct {
	Header   string `mapstructure:"header"`   // section header color
	Item     string `mapstructure:"item"`     // item label color
	Muted    string `mapstructure:"muted"`    // hints, excluded layers
	Selected string `mapstructure:"selected"` // viewer cursor line
}

// LegendConfig holds tree-shape options applied to every build.
type LegendConfig struct {
	Indent        int `mapstructure:"indent"`
	PaddingWidth  int `mapstructure:"padding_width"`
	PaddingHeight int `mapstructure:"padding_height"`
	SymbolWidth   int `mapstructure:"symbol_width"`
	SymbolHeight  int `mapstructure:"symbol_height"`
	MaxDepth      int `mapstructure:"max_depth"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoRefresh:         true,
		AutoRefreshDebounce: time.Second,
		Theme: ThemeConfig{
			Muted:    "#696969",
			Selected: "#FFFFFF",
		},
		Legend: LegendConfig{
			Indent:        2,
			PaddingWidth:  1,
			PaddingHeight: 0,
			SymbolWidth:   2,
			SymbolHeight:  1,
			MaxDepth:      legend.DefaultMaxDepth,
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// Style converts the configuration into the style bundle passed to every
// node-building call.
func (c Config) Style() legend.Style {
	st := legend.DefaultStyle()
	if c.Theme.Header != "" {
		st.HeaderFont = st.HeaderFont.Foreground(lipgloss.Color(c.Theme.Header))
	}
	if c.Theme.Item != "" {
		st.ItemFont = st.ItemFont.Foreground(lipgloss.Color(c.Theme.Item))
		st.Foreground = lipgloss.Color(c.Theme.Item)
	}
	if c.Legend.Indent > 0 {
		st.Indent = c.Legend.Indent
	}
	st.Padding = legend.Size{Width: c.Legend.PaddingWidth, Height: c.Legend.PaddingHeight}
	st.SymbolSize = legend.Size{Width: c.Legend.SymbolWidth, Height: c.Legend.SymbolHeight}
	return st
}

// MutedColor returns the theme's muted color.
func (c Config) MutedColor() lipgloss.TerminalColor {
	if c.Theme.Muted != "" {
		return lipgloss.Color(c.Theme.Muted)
	}
	return lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
}

// SelectedColor returns the theme's cursor-line color.
func (c Config) SelectedColor() lipgloss.TerminalColor {
	if c.Theme.Selected != "" {
		return lipgloss.Color(c.Theme.Selected)
	}
	return lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
}
