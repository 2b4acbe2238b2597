package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/czas/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a journaled sentence",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	rec, err := s.Get(cmd.Context(), store.GetParams{ID: args[0]})
	if err != nil {
		exitErr("get", err)
	}

	if formatFlag == "json" {
		printJSON(cmd, rec)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), rec.Text)
}
