package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	fragsearch "github.com/rawwwulea/QuickSearch"
	"github.com/rawwwulea/QuickSearch/config"
)

// loadDataset reads one item per line from path. A line may be either a
// bare keyword string (an id is generated with uuid.NewString) or an
// "id\tkeywords" pair separated by a tab.
func loadDataset(idx *fragsearch.Index[string], path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		id, keywords, ok := strings.Cut(line, "\t")
		if !ok {
			id, keywords = uuid.NewString(), line
		}

		if idx.AddItem(id, keywords) {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	return count, nil
}

func newLoadCmd(configPath *string) *cobra.Command {
	var file, query string
	var limit int

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load a dataset from a file and run a search against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			idx := fragsearch.New[string](cfg.Options()...)
			if _, err := loadDataset(idx, file); err != nil {
				return err
			}

			return runQuery(cmd, idx, query, limit)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to a dataset file, one item per line")
	cmd.Flags().StringVar(&query, "query", "", "search string to run against the loaded dataset")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results to print")

	return cmd
}
