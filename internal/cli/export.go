package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal as JSON",
		Long:  "Export journaled sentences as a JSON array, oldest first. Filter by source with --source.",
		Run:   runExport,
	}

	cmd.Flags().String("source", "", "Filter by source: now, say, import")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	source, _ := cmd.Flags().GetString("source")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.ExportAll(cmd.Context(), source)
	if err != nil {
		exitErr("export", err)
	}

	printJSON(cmd, records)
}
