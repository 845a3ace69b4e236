package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rosetta/internal/cli"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <topic>",
	Short: "Show a single topic entry",
	Long:  `Renders one catalog entry: both idiom snippets and their caveat notes.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd)

		cat, err := cli.CreateCatalog(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			fmt.Printf("Error initializing catalog: %v\n", err)
			os.Exit(1)
		}

		doc, err := cat.RenderTopic(args[0], opts.Format)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(doc)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("format", "f", "", "Render format: plain or markdown")
}
