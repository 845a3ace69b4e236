package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/rosetta/internal/cli"
	"github.com/aretw0/rosetta/pkg/adapters/sqlite"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a catalog snapshot to SQLite",
	Long: `Writes the full catalog (topics, snippets, notes) as a snapshot into a
SQLite database, keeping it queryable with plain SQL outside the process.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd)
		out, _ := cmd.Flags().GetString("out")

		cat, err := cli.CreateCatalog(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			fmt.Printf("Error initializing catalog: %v\n", err)
			os.Exit(1)
		}

		store, err := sqlite.Open(out)
		if err != nil {
			fmt.Printf("Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		id, err := store.Export(context.Background(), cat.Digest(), cat.All())
		if err != nil {
			fmt.Printf("Error exporting snapshot: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Exported snapshot %s (%d topics) to %s\n", id, cat.Len(), out)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("out", "o", "rosetta.db", "SQLite database file to write")
}
