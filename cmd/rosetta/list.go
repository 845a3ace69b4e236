package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rosetta/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List topic names in catalog order",
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd)

		cat, err := cli.CreateCatalog(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			fmt.Printf("Error initializing catalog: %v\n", err)
			os.Exit(1)
		}

		for _, name := range cat.Topics() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
