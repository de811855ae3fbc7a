package main

import (
	"github.com/spf13/cobra"

	fragsearch "github.com/rawwwulea/QuickSearch"
	"github.com/rawwwulea/QuickSearch/config"
)

// contactsDataset mirrors the classic example dataset used to demonstrate
// quick search: an item followed by the keywords it should be discoverable
// under.
var contactsDataset = []struct {
	item     string
	keywords string
}{
	{"Jane Doe, 1234", "Jane Doe Marketing Manager SEO Community MySpace 1234"},
	{"Alice Stuggard, 9473", "Alice Stuggard Tech Cryptography Manager RSA 9473"},
	{"Robert Howard, 6866", "Robert Bob Howard Tech Necromancy Summoning Undead Cryptography BOFH RSA DOD Laundry 6866"},
	{"Eve Moneypenny, 9223", "Eve Moneypenny Accounting Manager Q OSA 9223"},
}

func newDemoCmd(configPath *string) *cobra.Command {
	var query string
	var limit int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a search against a small built-in contacts dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			idx := fragsearch.New[string](cfg.Options()...)
			for _, c := range contactsDataset {
				idx.AddItem(c.item, c.keywords)
			}

			return runQuery(cmd, idx, query, limit)
		},
	}

	cmd.Flags().StringVar(&query, "query", "mana", "search string to run against the dataset")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results to print")

	return cmd
}
