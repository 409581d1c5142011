package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/tverin/maplegend/internal/mapdoc"
	"github.com/tverin/maplegend/internal/ui/legendview"
)

var renderCmd = &cobra.Command{
	Use:   "render [mapfile]",
	Short: "Render the legend once to stdout",
	Long: `Render builds the legend for a map document and prints the full tree to
stdout, without the interactive viewer.

Examples:
  maplegend render city.yaml
  maplegend render city.yaml --no-color | less`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		mp, err := mapdoc.Load(mapPathFromArgs(args))
		if err != nil {
			return err
		}

		root, err := newBuilder().CreateRoot(context.Background(), cfg.Style(), mp)
		if err != nil {
			return fmt.Errorf("building legend: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), legendview.Print(root, cfg.Legend.Indent, cfg.MutedColor()))
		return nil
	},
}

func init() {
	renderCmd.Flags().Bool("no-color", false, "disable colors and swatch glyph styling")
	rootCmd.AddCommand(renderCmd)
}
