package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/czas/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search journaled sentences by keyword",
		Long:  "Search sentence text and original timestamps for matching text.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().String("source", "", "Filter by source: now, say, import")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), store.SearchParams{
		Query:  query,
		Source: source,
		Limit:  limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	if formatFlag == "json" {
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "[]")
			return
		}
		printJSON(cmd, results)
		return
	}
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", r.ID, r.Input, r.Text)
	}
}
