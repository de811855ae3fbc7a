package main

import (
	"fmt"

	"github.com/spf13/cobra"

	fragsearch "github.com/rawwwulea/QuickSearch"
)

func runQuery(cmd *cobra.Command, idx *fragsearch.Index[string], query string, limit int) error {
	resp := idx.FindAugmented(query, limit)

	fmt.Fprintf(cmd.OutOrStdout(), "search %q -> keywords %v\n", resp.SearchString, resp.SearchStringKeywords)
	for i, item := range resp.Items {
		fmt.Fprintf(cmd.OutOrStdout(), "%2d. %-30s score=%.3f keywords=%v\n", i+1, item.Item, item.Score, item.ItemKeywords)
	}
	if len(resp.Items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "(no matches)")
	}

	return nil
}
