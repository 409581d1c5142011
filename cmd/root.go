package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tverin/maplegend/internal/config"
	"github.com/tverin/maplegend/internal/items"
	"github.com/tverin/maplegend/internal/legend"
	"github.com/tverin/maplegend/internal/log"
	"github.com/tverin/maplegend/internal/symbol"
	"github.com/tverin/maplegend/internal/tracing"
	"github.com/tverin/maplegend/internal/ui/legendview"
	"github.com/tverin/maplegend/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color BEFORE
	// any Bubble Tea program starts, so the OSC response does not race with
	// Bubble Tea's input loop.
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "maplegend [mapfile]",
	Short: "A terminal viewer for map legends",
	Long: `maplegend builds a hierarchical legend for a map document and shows it
in an interactive terminal tree: sections for variable, static, and
background layers, color swatches per layer, and live rebuild when the
map document changes on disk.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runViewer,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/maplegend/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug logs to maplegend.log")
	rootCmd.Flags().Bool("no-watch", false,
		"disable automatic rebuild when the map document changes")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("auto_refresh_debounce", defaults.AutoRefreshDebounce)
	viper.SetDefault("legend.indent", defaults.Legend.Indent)
	viper.SetDefault("legend.padding_width", defaults.Legend.PaddingWidth)
	viper.SetDefault("legend.padding_height", defaults.Legend.PaddingHeight)
	viper.SetDefault("legend.symbol_width", defaults.Legend.SymbolWidth)
	viper.SetDefault("legend.symbol_height", defaults.Legend.SymbolHeight)
	viper.SetDefault("legend.max_depth", defaults.Legend.MaxDepth)
	viper.SetDefault("theme.muted", defaults.Theme.Muted)
	viper.SetDefault("theme.selected", defaults.Theme.Selected)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .maplegend/config.yaml (current directory)
		// 2. ~/.config/maplegend/config.yaml (user config)
		if _, err := os.Stat(".maplegend/config.yaml"); err == nil {
			viper.SetConfigFile(".maplegend/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "maplegend"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".maplegend/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if debugFlag || os.Getenv("MAPLEGEND_DEBUG") != "" {
		if _, err := log.Init("maplegend.log"); err == nil {
			log.Info(log.CatConfig, "debug logging enabled", "config", viper.ConfigFileUsed())
		}
	} else {
		log.SetEnabled(false)
	}
}

// mapPathFromArgs returns the map document path: the positional argument, or
// map.yaml in the working directory.
func mapPathFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "map.yaml"
}

// newBuilder assembles the registry, preview provider, and builder shared by
// the viewer and the render command.
func newBuilder() *legend.Builder {
	registry := legend.NewFactoryRegistry(items.Defaults()...)
	previews := symbol.NewCachedProvider(
		symbol.NewTerminalProvider(),
		symbol.DefaultExpiration,
		symbol.DefaultCleanupInterval,
	)
	return legend.NewBuilder(registry,
		legend.WithPreviewProvider(previews),
		legend.WithMaxDepth(cfg.Legend.MaxDepth),
	)
}

func runViewer(cmd *cobra.Command, args []string) error {
	mapPath := mapPathFromArgs(args)
	if _, err := os.Stat(mapPath); err != nil {
		return fmt.Errorf("map document %s: %w", mapPath, err)
	}

	tp, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	opts := []legendview.Option{
		legendview.WithColors(cfg.MutedColor(), cfg.SelectedColor()),
	}

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	var w *watcher.Watcher
	if cfg.AutoRefresh && !noWatch {
		w, err = watcher.New(watcher.Config{
			MapPath:     mapPath,
			DebounceDur: cfg.AutoRefreshDebounce,
		})
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		changes, err := w.Start()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		opts = append(opts, legendview.WithChangeChannel(changes))
	}

	model := legendview.New(newBuilder(), cfg.Style(), mapPath, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()

	if w != nil {
		if stopErr := w.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
