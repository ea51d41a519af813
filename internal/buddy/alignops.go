package buddy

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// consensusResidues breaks per-column ties among residues: earlier
// symbols win. Gap symbols are excluded; a gap takes a column only by
// outright majority.
const consensusResidues = "ABCDEFGHIKLMNPQRSTUVWXYZ*"

// Consensus computes one majority-vote record per block and returns
// them as a new SeqSet. Ties go to the symbol earliest in the fixed
// precedence order; gaps win a column only by outright majority.
func Consensus(a *AlignSet) *SeqSet {
	records := make([]*Record, len(a.Blocks))
	for i, b := range a.Blocks {
		records[i] = &Record{
			ID:       fmt.Sprintf("consensus_%d", i+1),
			Seq:      blockConsensus(b),
			Alphabet: a.Alphabet,
		}
	}
	return &SeqSet{Records: records, Alphabet: a.Alphabet, OutFormat: FormatFasta}
}

func blockConsensus(b *AlignmentBlock) string {
	var out strings.Builder
	for col := 0; col < b.Len(); col++ {
		counts := make(map[byte]int)
		gaps := 0
		for _, r := range b.Records {
			sym := r.Seq[col]
			if sym >= 'a' && sym <= 'z' {
				sym -= 'a' - 'A'
			}
			if sym == '-' || sym == '.' {
				gaps++
			}
			counts[sym]++
		}

		if gaps*2 > len(b.Records) {
			if counts['.'] > counts['-'] {
				out.WriteByte('.')
			} else {
				out.WriteByte('-')
			}
			continue
		}

		best := byte('-')
		bestCount := 0
		for _, sym := range []byte(consensusResidues) {
			if counts[sym] > bestCount {
				best, bestCount = sym, counts[sym]
			}
		}
		out.WriteByte(best)
	}
	return out.String()
}

// Trim removes alignment columns by gap fraction. mode is either a
// decimal threshold in [0, 1] (columns whose gap fraction exceeds it
// are removed), "clean" (remove columns with any gap) or "gappyout"
// (remove columns that are mostly gap).
func Trim(a *AlignSet, mode string) (*AlignSet, error) {
	var threshold float64
	switch mode {
	case "clean":
		threshold = 0
	case "gappyout":
		threshold = 0.5
	default:
		t, err := strconv.ParseFloat(mode, 64)
		if err != nil || t < 0 || t > 1 {
			return nil, &ValueError{Reason: fmt.Sprintf(
				"trim mode must be a threshold in [0, 1], 'clean' or 'gappyout', got '%s'", mode)}
		}
		threshold = t
	}

	for _, b := range a.Blocks {
		trimBlock(b, threshold)
	}
	return a, nil
}

func trimBlock(b *AlignmentBlock, threshold float64) {
	if len(b.Records) == 0 {
		return
	}

	var keep []int
	for col := 0; col < b.Len(); col++ {
		gaps := 0
		for _, r := range b.Records {
			if r.Seq[col] == '-' || r.Seq[col] == '.' {
				gaps++
			}
		}
		if float64(gaps)/float64(len(b.Records)) <= threshold {
			keep = append(keep, col)
		}
	}

	for _, r := range b.Records {
		seq := make([]byte, len(keep))
		for i, col := range keep {
			seq[i] = r.Seq[col]
		}
		r.Seq = string(seq)
		r.Features = nil // column coordinates no longer apply
	}
}

// TranslateAlignment translates every aligned nucleotide record,
// gap-aware. The first complete codon of each record is checked against
// the start codon with a warning when it differs.
func TranslateAlignment(a *AlignSet) (*AlignSet, error) {
	if !a.Alphabet.Nucleic() {
		return nil, &AlphabetError{Op: "translate", Alphabet: a.Alphabet}
	}

	for _, b := range a.Blocks {
		for _, r := range b.Records {
			if first := firstCodon(r.Seq); first != "" && !isStartCodon(first) {
				stderr.Printf("Warning: first codon '%s' is not a start codon in %s\n", first, r.ID)
			}
			r.Seq = translateSeq(r.Seq, r.ID)
			r.Features = nil
			r.Alphabet = AlphabetProtein
		}
	}
	a.Alphabet = AlphabetProtein
	return a, nil
}

// firstCodon returns the record's first ungapped codon.
func firstCodon(seq string) string {
	ungapped := strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}
		return r
	}, seq)
	if len(ungapped) < 3 {
		return ""
	}
	return strings.ToUpper(ungapped[:3])
}

// EnforceTriplets trims trailing columns so every block's length is a
// codon multiple, warning when columns are dropped.
func EnforceTriplets(a *AlignSet) (*AlignSet, error) {
	if !a.Alphabet.Nucleic() {
		return nil, &AlphabetError{Op: "enforce-triplets", Alphabet: a.Alphabet}
	}

	for i, b := range a.Blocks {
		if over := b.Len() % 3; over != 0 {
			stderr.Printf("Warning: alignment %d is not a codon multiple, dropping %d trailing column(s)\n", i+1, over)
			for _, r := range b.Records {
				r.Seq = r.Seq[:len(r.Seq)-over]
			}
		}
	}
	return a, nil
}

// UppercaseAlign maps every residue to upper case.
func UppercaseAlign(a *AlignSet) *AlignSet {
	for _, r := range a.Records() {
		r.Seq = strings.ToUpper(r.Seq)
	}
	return a
}

// LowercaseAlign maps every residue to lower case.
func LowercaseAlign(a *AlignSet) *AlignSet {
	for _, r := range a.Records() {
		r.Seq = strings.ToLower(r.Seq)
	}
	return a
}

// TranscribeAlign converts aligned DNA to RNA.
func TranscribeAlign(a *AlignSet) (*AlignSet, error) {
	if a.Alphabet != AlphabetDNA {
		return nil, &AlphabetError{Op: "transcribe", Alphabet: a.Alphabet}
	}

	for _, r := range a.Records() {
		r.Seq = strings.ReplaceAll(strings.ReplaceAll(r.Seq, "T", "U"), "t", "u")
		r.Alphabet = AlphabetRNA
	}
	a.Alphabet = AlphabetRNA
	return a, nil
}

// BackTranscribeAlign converts aligned RNA to DNA.
func BackTranscribeAlign(a *AlignSet) (*AlignSet, error) {
	if a.Alphabet != AlphabetRNA {
		return nil, &AlphabetError{Op: "back-transcribe", Alphabet: a.Alphabet}
	}

	for _, r := range a.Records() {
		r.Seq = strings.ReplaceAll(strings.ReplaceAll(r.Seq, "U", "T"), "u", "t")
		r.Alphabet = AlphabetDNA
	}
	a.Alphabet = AlphabetDNA
	return a, nil
}

// SelectAlignRecords keeps only records whose id matches the pattern,
// across all blocks. Blocks left empty are removed.
func SelectAlignRecords(a *AlignSet, pattern string) (*AlignSet, error) {
	return filterAlign(a, pattern, true)
}

// DeleteAlignRecords removes records whose id matches the pattern.
func DeleteAlignRecords(a *AlignSet, pattern string) (*AlignSet, error) {
	return filterAlign(a, pattern, false)
}

func filterAlign(a *AlignSet, pattern string, keepMatches bool) (*AlignSet, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ValueError{Reason: fmt.Sprintf("invalid record pattern '%s': %v", pattern, err)}
	}

	var blocks []*AlignmentBlock
	for _, b := range a.Blocks {
		var kept []*Record
		for _, r := range b.Records {
			if re.MatchString(r.ID) == keepMatches {
				kept = append(kept, r)
			}
		}
		if len(kept) > 0 {
			blocks = append(blocks, &AlignmentBlock{Records: kept})
		}
	}
	a.Blocks = blocks
	return a, nil
}

// OrderAlignIDs sorts each block's records by id.
func OrderAlignIDs(a *AlignSet, reverse bool) *AlignSet {
	for _, b := range a.Blocks {
		sort.SliceStable(b.Records, func(i, j int) bool {
			if reverse {
				i, j = j, i
			}
			return b.Records[i].ID < b.Records[j].ID
		})
	}
	return a
}

// SplitBlocks breaks a multi-block set into one AlignSet per block.
func SplitBlocks(a *AlignSet) []*AlignSet {
	sets := make([]*AlignSet, len(a.Blocks))
	for i, b := range a.Blocks {
		sets[i] = &AlignSet{
			Blocks:    []*AlignmentBlock{b},
			Alphabet:  a.Alphabet,
			OutFormat: a.OutFormat,
		}
	}
	return sets
}

// ConcatBlocks joins every block column-wise into one. Records are
// matched across blocks by id, so every block must hold the same ids.
func ConcatBlocks(a *AlignSet) (*AlignSet, error) {
	if len(a.Blocks) < 2 {
		return a, nil
	}

	first := a.Blocks[0]
	for _, b := range a.Blocks[1:] {
		if len(b.Records) != len(first.Records) {
			return nil, &ValueError{Reason: fmt.Sprintf(
				"cannot concatenate alignments with different record counts (%d vs %d)",
				len(first.Records), len(b.Records))}
		}
		for _, r := range first.Records {
			other, ok := blockGet(b, r.ID)
			if !ok {
				return nil, &ValueError{Reason: fmt.Sprintf(
					"cannot concatenate alignments: record %s is missing from a block", r.ID)}
			}
			r.Seq += other.Seq
		}
	}
	a.Blocks = []*AlignmentBlock{first}
	return a, nil
}

func blockGet(b *AlignmentBlock, id string) (*Record, bool) {
	for _, r := range b.Records {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// MapFeatures2Alignment copies features from ungapped source records
// onto their aligned (gapped) counterparts, stretching coordinates over
// the gap columns.
func MapFeatures2Alignment(source *SeqSet, a *AlignSet) *AlignSet {
	for _, b := range a.Blocks {
		for _, target := range b.Records {
			src, ok := source.Get(target.ID)
			if !ok {
				continue
			}
			for _, f := range src.Features {
				if mapped, ok := gapFeature(f, target.Seq); ok {
					target.Features = append(target.Features, mapped)
				}
			}
		}
	}
	return a
}

// gapFeature rewrites ungapped coordinates to the gapped column space.
func gapFeature(f Feature, gapped string) (Feature, bool) {
	spans, ok := spansOf(f.Location)
	if !ok {
		return f, false
	}

	// ungapped position -> column index
	cols := make([]int, 0, len(gapped))
	for col := 0; col < len(gapped); col++ {
		if gapped[col] != '-' && gapped[col] != '.' {
			cols = append(cols, col)
		}
	}

	mapped := make(Compound, 0, len(spans))
	for _, s := range spans {
		if s.Start >= len(cols) || s.Start >= s.End {
			continue
		}
		end := s.End
		if end > len(cols) {
			end = len(cols)
		}
		mapped = append(mapped, Span{Start: cols[s.Start], End: cols[end-1] + 1})
	}
	if len(mapped) == 0 {
		return f, false
	}

	out := f.Copy()
	if len(mapped) == 1 {
		out.Location = mapped[0]
	} else {
		out.Location = mapped
	}
	return out, true
}
