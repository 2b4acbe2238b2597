package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/czas"
	"github.com/rcliao/czas/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Say the current date and time",
		Long:  "Prints the current local time followed by its Polish reading. The zone comes from $CZAS_TIMEZONE.",
		Args:  cobra.NoArgs,
		Run:   runNow,
	}

	cmd.Flags().Bool("save", false, "Record the sentence in the journal")

	RootCmd.AddCommand(cmd)
}

func runNow(cmd *cobra.Command, args []string) {
	save, _ := cmd.Flags().GetBool("save")

	loc, err := cfg.Location()
	if err != nil {
		exitErr("timezone", err)
	}
	now := czas.SystemClock{Location: loc}.Now()
	ts := czas.TimestampOf(now)

	text, err := converter().Sentence(ts)
	if err != nil {
		exitErr("now", err)
	}
	text = styled(text)
	log.Debug().Str("input", ts.String()).Str("text", text).Msg("converted")

	outs := []rendering{{Input: ts.String(), Text: text}}
	if save {
		journal(cmd, outs, model.SourceNow)
	}
	out := outs[0]

	if formatFlag == "json" {
		printJSON(cmd, out)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", out.Input, out.Text)
}
