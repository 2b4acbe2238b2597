package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/czas/polish"
)

func init() {
	names := []string{"year"}
	for _, u := range polish.Units {
		names = append(names, u.String())
	}

	cmd := &cobra.Command{
		Use:   "convert <unit> <value>",
		Short: "Spell a single date or time component",
		Long:  "Spells one component in the case it takes in a sentence. Units: " + strings.Join(names, ", ") + ".",
		Args:  cobra.ExactArgs(2),
		Run:   runConvert,
	}

	RootCmd.AddCommand(cmd)
}

type conversion struct {
	Unit  string `json:"unit"`
	Value int    `json:"value"`
	Text  string `json:"text"`
}

func runConvert(cmd *cobra.Command, args []string) {
	unit := strings.ToLower(args[0])
	v, err := strconv.Atoi(args[1])
	if err != nil {
		exitErr("convert", fmt.Errorf("value must be an integer: %w", err))
	}

	text, err := convertUnit(unit, v)
	if err != nil {
		exitErr("convert", err)
	}
	text = styled(text)
	log.Debug().Str("unit", unit).Int("value", v).Str("text", text).Msg("converted")

	if formatFlag == "json" {
		printJSON(cmd, conversion{Unit: unit, Value: v, Text: text})
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
}

func convertUnit(unit string, v int) (string, error) {
	if unit == "year" {
		if cfg.StrictYear {
			return polish.YearStrict(v)
		}
		return polish.Year(v), nil
	}
	u, ok := polish.ParseUnit(unit)
	if !ok {
		return "", fmt.Errorf("unknown unit %q", unit)
	}
	return polish.Convert(u, v)
}
