package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etiology/BuddySuite/internal/buddy"
	"github.com/spf13/cobra"
)

// seqCmd applies transformation verbs to a file of sequence records.
// Verbs are flags: the first one set below is the one that runs.
var seqCmd = &cobra.Command{
	Use:   "seq [input]",
	Short: "Transform a file of sequence records",
	Long: `Parse sequences in any supported format (detected unless -f is set),
apply one transformation verb and print the result to stdout.

Verbs that change the alphabet (translate, transcribe) re-tag the records;
verbs that need a nucleotide alphabet fail on protein input.`,
	Example:                    "  buddy seq records.gb --translate --out-format fasta",
	SuggestionsMinimumDistance: 2,
	Run:                        runSeq,
}

// set flags
func init() {
	seqCmd.Flags().Bool("uppercase", false, "map every residue to upper case")
	seqCmd.Flags().Bool("lowercase", false, "map every residue to lower case")
	seqCmd.Flags().Bool("complement", false, "complement every nucleotide record")
	seqCmd.Flags().Bool("reverse-complement", false, "reverse-complement records, mirroring features")
	seqCmd.Flags().Bool("transcribe", false, "convert DNA records to RNA")
	seqCmd.Flags().Bool("back-transcribe", false, "convert RNA records to DNA")
	seqCmd.Flags().Bool("translate", false, "translate nucleotide records to protein")
	seqCmd.Flags().String("map-nucl2prot", "", "map features onto the protein records in this file")
	seqCmd.Flags().String("map-prot2nucl", "", "map features onto the nucleotide records in this file")
	seqCmd.Flags().String("mode", "key", "record pairing for feature mapping: 'key' or 'list'")
	seqCmd.Flags().String("select", "", "keep only records whose id matches this pattern")
	seqCmd.Flags().String("delete", "", "remove records whose id matches this pattern")
	seqCmd.Flags().String("rename", "", "rewrite ids, as 'pattern:replacement'")
	seqCmd.Flags().String("extract-range", "", "keep the subsequence 'start:end' (half-open)")
	seqCmd.Flags().String("annotate", "", "add a feature, as 'type:start:end[:strand]'")
	seqCmd.Flags().String("pattern", "", "restrict --annotate to records whose id matches this pattern")
	seqCmd.Flags().Bool("order-ids", false, "sort records by id")
	seqCmd.Flags().Bool("reverse", false, "reverse the --order-ids sort")
	seqCmd.Flags().Bool("make-unique", false, "suffix duplicate record ids")
	seqCmd.Flags().Bool("clean", false, "strip non-alphabet symbols from the records")
	seqCmd.Flags().Bool("num-seqs", false, "print the record count")
	seqCmd.Flags().Bool("ave-length", false, "print the mean ungapped record length")

	rootCmd.AddCommand(seqCmd)
}

func runSeq(cmd *cobra.Command, args []string) {
	p := inputParser{}
	set, err := p.seqSet(cmd, args)
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	if set, err = applySeqVerb(cmd, set); err != nil {
		stderr.Fatalf("%v", err)
	}
	if set == nil {
		return // the verb printed its own scalar output
	}

	output, err := set.String()
	if err != nil {
		stderr.Fatalf("%v", err)
	}
	if err = p.write(cmd, output); err != nil {
		stderr.Fatalf("%v", err)
	}
}

// applySeqVerb runs the first requested verb against the set. A nil
// set return means the verb wrote scalar output itself.
func applySeqVerb(cmd *cobra.Command, set *buddy.SeqSet) (*buddy.SeqSet, error) {
	flag := func(name string) bool { b, _ := cmd.Flags().GetBool(name); return b }
	str := func(name string) string { s, _ := cmd.Flags().GetString(name); return s }

	switch {
	case flag("uppercase"):
		return buddy.Uppercase(set), nil
	case flag("lowercase"):
		return buddy.Lowercase(set), nil
	case flag("complement"):
		return buddy.Complement(set)
	case flag("reverse-complement"):
		return buddy.ReverseComplement(set)
	case flag("transcribe"):
		return buddy.Transcribe(set)
	case flag("back-transcribe"):
		return buddy.BackTranscribe(set)
	case flag("translate"):
		return buddy.Translate(set)

	case str("map-nucl2prot") != "":
		prot, err := buddy.ReadFile(str("map-nucl2prot"), "")
		if err != nil {
			return nil, err
		}
		return buddy.MapFeaturesNucl2Prot(set, prot, str("mode"))

	case str("map-prot2nucl") != "":
		nucl, err := buddy.ReadFile(str("map-prot2nucl"), "")
		if err != nil {
			return nil, err
		}
		return buddy.MapFeaturesProt2Nucl(set, nucl, str("mode"))

	case str("select") != "":
		return buddy.SelectRecords(set, str("select"))
	case str("delete") != "":
		return buddy.DeleteRecords(set, str("delete"))

	case str("rename") != "":
		pattern, replacement, found := strings.Cut(str("rename"), ":")
		if !found {
			return nil, &buddy.ValueError{Reason: "--rename expects 'pattern:replacement'"}
		}
		return buddy.RenameIDs(set, pattern, replacement, 0)

	case str("extract-range") != "":
		var start, end int
		if _, err := fmt.Sscanf(str("extract-range"), "%d:%d", &start, &end); err != nil {
			return nil, &buddy.ValueError{Reason: "--extract-range expects 'start:end'"}
		}
		return buddy.ExtractRange(set, start, end)

	case str("annotate") != "":
		parts := strings.Split(str("annotate"), ":")
		if len(parts) < 3 {
			return nil, &buddy.ValueError{Reason: "--annotate expects 'type:start:end[:strand]'"}
		}
		start, serr := strconv.Atoi(parts[1])
		end, eerr := strconv.Atoi(parts[2])
		if serr != nil || eerr != nil {
			return nil, &buddy.ValueError{Reason: "--annotate expects integer 'start:end' bounds"}
		}
		strand := ""
		if len(parts) > 3 {
			strand = parts[3]
		}
		return buddy.Annotate(set, parts[0], []buddy.Span{{Start: start, End: end}}, strand, str("pattern"), nil)

	case flag("order-ids"):
		return buddy.OrderIDs(set, flag("reverse")), nil
	case flag("make-unique"):
		return buddy.MakeIDsUnique(set), nil
	case flag("clean"):
		return buddy.CleanSeq(set, true, 'N'), nil

	case flag("num-seqs"):
		fmt.Println(buddy.NumSeqs(set))
		return nil, nil
	case flag("ave-length"):
		fmt.Printf("%.2f\n", buddy.AverageLength(set))
		return nil, nil
	}

	return set, nil // no verb: format conversion only
}
