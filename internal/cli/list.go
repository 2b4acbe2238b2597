package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/czas/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"list"},
		Short:   "List journaled sentences",
		Run:     runList,
	}

	cmd.Flags().String("source", "", "Filter by source: now, say, import")
	cmd.Flags().String("with-style", "", "Filter by the style a sentence was saved with")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	source, _ := cmd.Flags().GetString("source")
	withStyle, _ := cmd.Flags().GetString("with-style")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.List(cmd.Context(), store.ListParams{
		Source: source,
		Style:  withStyle,
		Limit:  limit,
	})
	if err != nil {
		exitErr("history", err)
	}

	if formatFlag == "json" {
		if records == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "[]")
			return
		}
		printJSON(cmd, records)
		return
	}
	for _, r := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", r.ID, r.Input, r.Text)
	}
}
