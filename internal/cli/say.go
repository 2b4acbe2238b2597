package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/czas/internal/model"
	"github.com/rcliao/czas/internal/store"
)

// rendering is the output of now and say.
type rendering struct {
	ID    string `json:"id,omitempty"`
	Input string `json:"input"`
	Text  string `json:"text"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "say [timestamp]",
		Short: "Say a given date and time",
		Long: `Converts a timestamp such as "2020-01-01 01:23:45" into a Polish sentence.
Without an argument, one timestamp per line is read from stdin.`,
		Run: runSay,
	}

	cmd.Flags().Bool("save", false, "Record the sentences in the journal")

	RootCmd.AddCommand(cmd)
}

func runSay(cmd *cobra.Command, args []string) {
	save, _ := cmd.Flags().GetBool("save")

	var inputs []string
	if len(args) > 0 {
		inputs = []string{strings.Join(args, " ")}
	} else if in := pipedInput(cmd); in != nil {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := sc.Err(); err != nil {
			exitErr("read stdin", err)
		}
	}
	if len(inputs) == 0 {
		exitErr("say", fmt.Errorf("timestamp is required (positional arg or stdin)"))
	}

	conv := converter()
	outs := make([]rendering, 0, len(inputs))
	for _, in := range inputs {
		text, err := conv.FromString(in)
		if err != nil {
			exitErr(fmt.Sprintf("say %q", in), err)
		}
		text = styled(text)
		log.Debug().Str("input", in).Str("text", text).Msg("converted")
		outs = append(outs, rendering{Input: in, Text: text})
	}

	if save {
		journal(cmd, outs, model.SourceSay)
	}

	if formatFlag == "json" {
		if len(outs) == 1 {
			printJSON(cmd, outs[0])
		} else {
			printJSON(cmd, outs)
		}
		return
	}
	for _, o := range outs {
		fmt.Fprintln(cmd.OutOrStdout(), o.Text)
	}
}

// pipedInput returns the command's input unless it is an interactive terminal.
func pipedInput(cmd *cobra.Command) io.Reader {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return nil
		}
	}
	return in
}

// journal stores every rendering and fills in the new record ids.
func journal(cmd *cobra.Command, outs []rendering, source string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	for i, r := range outs {
		rec, err := s.Put(cmd.Context(), store.PutParams{
			Input:  r.Input,
			Text:   r.Text,
			Style:  string(outStyle),
			Source: source,
		})
		if err != nil {
			exitErr("save", err)
		}
		log.Info().Str("id", rec.ID).Str("source", source).Msg("journaled")
		outs[i].ID = rec.ID
	}
}
