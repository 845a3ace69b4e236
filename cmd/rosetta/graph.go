package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rosetta/internal/cli"
	"github.com/aretw0/rosetta/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the topic progression visualization",
	Long:  `Inspects the catalog and outputs a Mermaid diagram (graph TD) of the topic progression.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd)

		cat, err := cli.CreateCatalog(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			fmt.Printf("Error initializing catalog: %v\n", err)
			os.Exit(1)
		}

		// Generate and print Mermaid graph
		output := graph.GenerateMermaid(cat.All())
		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
