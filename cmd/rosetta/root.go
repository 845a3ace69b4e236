package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rosetta"
	"github.com/aretw0/rosetta/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rosetta",
	Short: "Rosetta is a paired-idiom catalog for base R and the tidyverse",
	Long: `Rosetta serves an ordered catalog of data-wrangling topics, each pairing
a base-R snippet with its tidyverse equivalent plus caveat notes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Directory containing the catalog repository (default: built-in mtcars catalog)")
	rootCmd.PersistentFlags().Bool("builtin", false, "Force the built-in mtcars catalog")
	rootCmd.PersistentFlags().String("redis", "", "Redis URL for the render cache (e.g. redis://localhost:6379/0)")
	rootCmd.PersistentFlags().String("config", "", "Config directory (default: OS user config dir)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// buildOptions assembles CLI options from flags and the config file.
// Explicit flags always take precedence over configured values.
func buildOptions(cmd *cobra.Command) cli.Options {
	opts := cli.Options{}
	opts.RepoPath, _ = cmd.Flags().GetString("dir")
	opts.Builtin, _ = cmd.Flags().GetBool("builtin")
	opts.RedisURL, _ = cmd.Flags().GetString("redis")
	opts.Debug, _ = cmd.Flags().GetBool("debug")
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.Addr, _ = cmd.Flags().GetString("addr")
	opts.Watch, _ = cmd.Flags().GetBool("watch")
	opts.Plain, _ = cmd.Flags().GetBool("no-style")

	configDir, _ := cmd.Flags().GetString("config")
	if configDir == "" {
		configDir = cli.DefaultConfigDir()
	}
	if v, err := cli.LoadConfig(configDir); err == nil {
		cli.ApplyConfig(&opts, v)
	}

	if opts.Format == "" {
		opts.Format = rosetta.FormatMarkdown
	}
	return opts
}
