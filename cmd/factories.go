package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var factoriesCmd = &cobra.Command{
	Use:   "factories",
	Short: "List registered legend item factories",
	Long: `Factories prints the type-key to item-factory table the legend builder
uses, in key order. Useful to check which layer kinds get a dedicated
legend item and which fall back to the generic one.

Examples:
  maplegend factories`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := newBuilder().Registry()
		for _, e := range registry.Entries() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %T\n", e.Key, e.Factory)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d registrations\n", registry.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(factoriesCmd)
}
