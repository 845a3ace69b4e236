package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/rosetta"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rosetta",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rosetta version %s\n", strings.TrimSpace(rosetta.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
