package cmd

import (
	"fmt"
	"strconv"

	"github.com/etiology/BuddySuite/config"
	"github.com/etiology/BuddySuite/internal/buddy"
	"github.com/etiology/BuddySuite/internal/exec"
	"github.com/spf13/cobra"
)

// alignCmd applies transformation verbs to multiple sequence alignments.
var alignCmd = &cobra.Command{
	Use:   "align [input]",
	Short: "Transform a file of multiple sequence alignments",
	Long: `Parse one or more alignment blocks in any supported alignment format
(detected unless -f is set), apply one transformation verb and print the
result to stdout.

Files holding several alignments (stockholm, concatenated phylip) keep
their blocks; per-block verbs like --consensus run on each independently.`,
	Example:                    "  buddy align msa.stklm --trim 0.7 --out-format phylipr",
	SuggestionsMinimumDistance: 2,
	Run:                        runAlign,
}

// set flags
func init() {
	alignCmd.Flags().Bool("consensus", false, "print one majority-vote record per block")
	alignCmd.Flags().String("trim", "", "remove gappy columns: a threshold in [0,1], 'clean', 'gappyout' or 'default'")
	alignCmd.Flags().Bool("translate", false, "translate aligned nucleotide records to protein")
	alignCmd.Flags().Bool("enforce-triplets", false, "trim blocks to a codon multiple")
	alignCmd.Flags().Bool("uppercase", false, "map every residue to upper case")
	alignCmd.Flags().Bool("lowercase", false, "map every residue to lower case")
	alignCmd.Flags().Bool("transcribe", false, "convert aligned DNA to RNA")
	alignCmd.Flags().Bool("back-transcribe", false, "convert aligned RNA to DNA")
	alignCmd.Flags().String("map-features", "", "copy features from the ungapped records in this file onto the alignment")
	alignCmd.Flags().String("select", "", "keep only records whose id matches this pattern")
	alignCmd.Flags().String("delete", "", "remove records whose id matches this pattern")
	alignCmd.Flags().Bool("order-ids", false, "sort each block's records by id")
	alignCmd.Flags().Bool("reverse", false, "reverse the --order-ids sort")
	alignCmd.Flags().Bool("split", false, "print each block as its own alignment")
	alignCmd.Flags().Bool("concat", false, "join blocks column-wise by shared ids")
	alignCmd.Flags().Bool("lengths", false, "print the column count of every block")
	alignCmd.Flags().Bool("align", false, "run the configured external aligner over unaligned input")
	alignCmd.Flags().Bool("num-seqs", false, "print the record count of every block")

	rootCmd.AddCommand(alignCmd)
}

func runAlign(cmd *cobra.Command, args []string) {
	p := inputParser{}

	// --align takes unaligned records; everything else takes alignments
	if runAligner, _ := cmd.Flags().GetBool("align"); runAligner {
		set, err := p.seqSet(cmd, args)
		if err != nil {
			stderr.Fatalf("%v", err)
		}
		aligned, err := exec.Align(config.New().Aligner.Tool, set)
		if err != nil {
			stderr.Fatalf("%v", err)
		}
		writeAlign(cmd, &p, aligned)
		return
	}

	set, err := p.alignSet(cmd, args)
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	set, err = applyAlignVerb(cmd, &p, set)
	if err != nil {
		stderr.Fatalf("%v", err)
	}
	if set == nil {
		return // the verb printed its own output
	}
	writeAlign(cmd, &p, set)
}

func writeAlign(cmd *cobra.Command, p *inputParser, set *buddy.AlignSet) {
	output, err := set.String()
	if err != nil {
		stderr.Fatalf("%v", err)
	}
	if err = p.write(cmd, output); err != nil {
		stderr.Fatalf("%v", err)
	}
}

// applyAlignVerb runs the first requested verb against the set. A nil
// return means the verb wrote its output itself.
func applyAlignVerb(cmd *cobra.Command, p *inputParser, set *buddy.AlignSet) (*buddy.AlignSet, error) {
	flag := func(name string) bool { b, _ := cmd.Flags().GetBool(name); return b }
	str := func(name string) string { s, _ := cmd.Flags().GetString(name); return s }

	switch {
	case flag("consensus"):
		consensus := buddy.Consensus(set)
		output, err := consensus.String()
		if err != nil {
			return nil, err
		}
		return nil, p.write(cmd, output)

	case str("trim") != "":
		mode := str("trim")
		if mode == "default" {
			mode = strconv.FormatFloat(config.New().TrimThreshold, 'f', -1, 64)
		}
		return buddy.Trim(set, mode)
	case flag("translate"):
		return buddy.TranslateAlignment(set)
	case flag("enforce-triplets"):
		return buddy.EnforceTriplets(set)
	case flag("uppercase"):
		return buddy.UppercaseAlign(set), nil
	case flag("lowercase"):
		return buddy.LowercaseAlign(set), nil
	case flag("transcribe"):
		return buddy.TranscribeAlign(set)
	case flag("back-transcribe"):
		return buddy.BackTranscribeAlign(set)
	case str("map-features") != "":
		source, err := buddy.ReadFile(str("map-features"), "")
		if err != nil {
			return nil, err
		}
		return buddy.MapFeatures2Alignment(source, set), nil

	case str("select") != "":
		return buddy.SelectAlignRecords(set, str("select"))
	case str("delete") != "":
		return buddy.DeleteAlignRecords(set, str("delete"))
	case flag("order-ids"):
		return buddy.OrderAlignIDs(set, flag("reverse")), nil

	case flag("split"):
		for _, sub := range buddy.SplitBlocks(set) {
			output, err := sub.String()
			if err != nil {
				return nil, err
			}
			if err = p.write(cmd, output); err != nil {
				return nil, err
			}
		}
		return nil, nil

	case flag("concat"):
		return buddy.ConcatBlocks(set)

	case flag("lengths"):
		for _, length := range set.Lengths() {
			fmt.Println(length)
		}
		return nil, nil

	case flag("num-seqs"):
		for _, b := range set.Blocks {
			fmt.Println(strconv.Itoa(len(b.Records)))
		}
		return nil, nil
	}

	return set, nil // no verb: format conversion only
}
