// Package cli implements the czas CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rcliao/czas"
	"github.com/rcliao/czas/internal/config"
	"github.com/rcliao/czas/internal/logger"
	"github.com/rcliao/czas/internal/store"
	"github.com/rcliao/czas/internal/style"
)

var (
	dbPath     string
	formatFlag string
	styleFlag  string
	strictYear bool

	cfg      *config.Config
	outStyle style.Style
	log      zerolog.Logger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "czas",
	Short:         "Say the date and time in Polish",
	Long:          "Converts timestamps into grammatical Polish sentences and keeps an optional journal of them.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("db") {
			c.DBPath = dbPath
		}
		if cmd.Flags().Changed("style") {
			c.Style = styleFlag
		}
		if cmd.Flags().Changed("strict-year") {
			c.StrictYear = strictYear
		}
		if err := c.Validate(); err != nil {
			return err
		}
		st, err := style.Parse(c.Style)
		if err != nil {
			return err
		}
		switch formatFlag {
		case "text", "json":
		default:
			return fmt.Errorf("--format must be text or json, got %q", formatFlag)
		}
		cfg = c
		outStyle = st
		log = logger.New(logger.Options{Level: c.LogLevel, Format: c.LogFormat})
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Journal path (default: $CZAS_DB or ~/.czas/journal.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	RootCmd.PersistentFlags().StringVarP(&styleFlag, "style", "s", "plain", "Output style: plain, ascii, upper, sentence")
	RootCmd.PersistentFlags().BoolVar(&strictYear, "strict-year", false, "Reject years outside 1-9999")
}

func openStore() (*store.SQLiteStore, error) {
	log.Debug().Str("db", cfg.DBPath).Msg("opening journal")
	return store.NewSQLiteStore(cfg.DBPath)
}

func converter() czas.Converter {
	return cfg.Converter()
}

func styled(text string) string {
	return style.Apply(outStyle, text)
}

func printJSON(cmd *cobra.Command, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
