package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rosetta/internal/cli"
	"github.com/spf13/cobra"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the full catalog document",
	Long: `Walks every entry in catalog order and emits the complete document.
With --watch, the catalog is re-rendered whenever the source repository changes.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd)

		if err := cli.RunRender(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("format", "f", "", "Render format: plain or markdown")
	renderCmd.Flags().BoolP("watch", "w", false, "Re-render on source changes")
	renderCmd.Flags().Bool("no-style", false, "Disable terminal styling")
}
