package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fragsearch",
		Short: "Query an in-memory fragment search index from the command line",
	}

	var configPath string
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a fragsearch config YAML file")

	cmd.AddCommand(newDemoCmd(&configPath), newLoadCmd(&configPath), newStatsCmd(&configPath))

	return cmd
}
