package main

import (
	"fmt"

	"github.com/spf13/cobra"

	fragsearch "github.com/rawwwulea/QuickSearch"
	"github.com/rawwwulea/QuickSearch/config"
)

func newStatsCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Load a dataset from a file and print index statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			idx := fragsearch.New[string](cfg.Options()...)
			added, err := loadDataset(idx, file)
			if err != nil {
				return err
			}

			stats := idx.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d lines; index holds %d items, %d fragments\n", added, stats.Items, stats.Fragments)

			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to a dataset file, one item per line")

	return cmd
}
