package cmd

import (
	"os"
	"text/tabwriter"

	"github.com/etiology/BuddySuite/internal/buddy"
	"github.com/spf13/cobra"
)

// guessCmd is for reporting an input's detected format and alphabet.
var guessCmd = &cobra.Command{
	Use:                        "guess [input]",
	Short:                      "Report an input's detected format and alphabet",
	Example:                    "  buddy guess mystery.txt",
	SuggestionsMinimumDistance: 2,
	Run:                        runGuess,
}

// set flags
func init() {
	rootCmd.AddCommand(guessCmd)
}

func runGuess(cmd *cobra.Command, args []string) {
	p := inputParser{}
	text, origin, err := p.text(cmd, args)
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	format, err := buddy.GuessText(text, origin)
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	alphabet := buddy.AlphabetUnknown
	if format != buddy.FormatEmpty {
		if records, err := buddy.ReadRecords(text, format); err == nil {
			alphabet = buddy.GuessAlphabet(records)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	w.Write([]byte("input\tformat\talphabet\n"))
	w.Write([]byte(origin + "\t" + string(format) + "\t" + alphabet.String() + "\n"))
	w.Flush()
}
