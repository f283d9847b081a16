package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// globalOptions are shared by every subcommand
type globalOptions struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "flowboard",
		Short: "flowboard - a single interactive flow diagram",
		Long: `flowboard serves one flow diagram page and owns its element sequence.
The page calls back into the server to connect nodes and remove elements,
and re-renders from the sequence the server returns.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: search standard locations)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newElementsCommand(opts))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
