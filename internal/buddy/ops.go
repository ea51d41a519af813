package buddy

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// complements maps each IUPAC nucleotide code (both cases) to its
// complement. Unmapped symbols pass through unchanged.
var complements = map[byte]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'U': 'A',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D', 'N': 'N', 'X': 'X',
}

func complementSym(b byte, rna bool) byte {
	upper := b &^ 0x20
	c, ok := complements[upper]
	if !ok {
		return b
	}
	if rna && c == 'T' {
		c = 'U'
	}
	if b >= 'a' && b <= 'z' {
		c |= 0x20
	}
	return c
}

// Uppercase maps every residue symbol to upper case. Features are
// untouched. Idempotent.
func Uppercase(s *SeqSet) *SeqSet {
	for _, r := range s.Records {
		r.Seq = strings.ToUpper(r.Seq)
	}
	return s
}

// Lowercase maps every residue symbol to lower case.
func Lowercase(s *SeqSet) *SeqSet {
	for _, r := range s.Records {
		r.Seq = strings.ToLower(r.Seq)
	}
	return s
}

// Complement replaces every symbol with its complement, in place.
// Nucleic alphabets only.
func Complement(s *SeqSet) (*SeqSet, error) {
	if !s.Alphabet.Nucleic() {
		return nil, &AlphabetError{Op: "complement", Alphabet: s.Alphabet}
	}

	rna := s.Alphabet == AlphabetRNA
	for _, r := range s.Records {
		seq := []byte(r.Seq)
		for i := range seq {
			seq[i] = complementSym(seq[i], rna)
		}
		r.Seq = string(seq)
	}
	return s, nil
}

// ReverseComplement reverses and complements every record, mirroring
// feature coordinates and flipping strands to match.
func ReverseComplement(s *SeqSet) (*SeqSet, error) {
	if !s.Alphabet.Nucleic() {
		return nil, &AlphabetError{Op: "reverse-complement", Alphabet: s.Alphabet}
	}

	rna := s.Alphabet == AlphabetRNA
	for _, r := range s.Records {
		n := r.Len()
		seq := make([]byte, n)
		for i := 0; i < n; i++ {
			seq[i] = complementSym(r.Seq[n-1-i], rna)
		}
		r.Seq = string(seq)

		for i := range r.Features {
			r.Features[i] = mirrorFeature(r.Features[i], n)
		}
	}
	return s, nil
}

// mirrorFeature reflects a feature's spans across the sequence midpoint
// and flips its strand.
func mirrorFeature(f Feature, length int) Feature {
	spans, ok := spansOf(f.Location)
	if !ok {
		return f
	}

	mirrored := make(Compound, len(spans))
	for i, s := range spans {
		mirrored[len(spans)-1-i] = Span{Start: length - s.End, End: length - s.Start}
	}
	if len(mirrored) == 1 {
		f.Location = mirrored[0]
	} else {
		f.Location = mirrored
	}

	f.Strand = -f.Strand
	return f
}

// Transcribe converts DNA records to RNA.
func Transcribe(s *SeqSet) (*SeqSet, error) {
	if s.Alphabet != AlphabetDNA {
		return nil, &AlphabetError{Op: "transcribe", Alphabet: s.Alphabet}
	}

	for _, r := range s.Records {
		r.Seq = strings.ReplaceAll(strings.ReplaceAll(r.Seq, "T", "U"), "t", "u")
		r.Alphabet = AlphabetRNA
	}
	s.Alphabet = AlphabetRNA
	return s, nil
}

// BackTranscribe converts RNA records to DNA.
func BackTranscribe(s *SeqSet) (*SeqSet, error) {
	if s.Alphabet != AlphabetRNA {
		return nil, &AlphabetError{Op: "back-transcribe", Alphabet: s.Alphabet}
	}

	for _, r := range s.Records {
		r.Seq = strings.ReplaceAll(strings.ReplaceAll(r.Seq, "U", "T"), "u", "t")
		r.Alphabet = AlphabetDNA
	}
	s.Alphabet = AlphabetDNA
	return s, nil
}

// Translate converts nucleotide records to protein. Features do not
// carry over; MapFeaturesNucl2Prot maps them onto the translation.
func Translate(s *SeqSet) (*SeqSet, error) {
	if !s.Alphabet.Nucleic() {
		return nil, &AlphabetError{Op: "translate", Alphabet: s.Alphabet}
	}

	for _, r := range s.Records {
		r.Seq = translateSeq(r.Seq, r.ID)
		r.Features = nil
		r.Alphabet = AlphabetProtein
	}
	s.Alphabet = AlphabetProtein
	return s, nil
}

// SelectRecords keeps only records whose id matches the pattern. Zero
// matches is an empty result, not an error.
func SelectRecords(s *SeqSet, pattern string) (*SeqSet, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ValueError{Reason: fmt.Sprintf("invalid record pattern '%s': %v", pattern, err)}
	}

	var kept []*Record
	for _, r := range s.Records {
		if re.MatchString(r.ID) {
			kept = append(kept, r)
		}
	}
	s.Records = kept
	return s, nil
}

// DeleteRecords removes records whose id matches the pattern.
func DeleteRecords(s *SeqSet, pattern string) (*SeqSet, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ValueError{Reason: fmt.Sprintf("invalid record pattern '%s': %v", pattern, err)}
	}

	var kept []*Record
	for _, r := range s.Records {
		if !re.MatchString(r.ID) {
			kept = append(kept, r)
		}
	}
	s.Records = kept
	return s, nil
}

// RenameIDs rewrites record ids by regex substitution. max bounds the
// number of replacements per id (0 means all).
func RenameIDs(s *SeqSet, pattern, replacement string, max int) (*SeqSet, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ValueError{Reason: fmt.Sprintf("invalid rename pattern '%s': %v", pattern, err)}
	}

	for _, r := range s.Records {
		remaining := max
		r.ID = re.ReplaceAllStringFunc(r.ID, func(m string) string {
			if max > 0 {
				if remaining == 0 {
					return m
				}
				remaining--
			}
			return re.ReplaceAllString(m, replacement)
		})
	}
	return s, nil
}

// ExtractRange trims every record to the half-open range [start, end).
// Features are clipped to the range and shifted to the new origin;
// features left empty are dropped.
func ExtractRange(s *SeqSet, start, end int) (*SeqSet, error) {
	if end < start {
		return nil, &ValueError{Reason: fmt.Sprintf("extract range end (%d) is before start (%d)", end, start)}
	}

	for _, r := range s.Records {
		from, to := clipTo(start, r.Len()), clipTo(end, r.Len())
		r.Seq = r.Seq[from:to]

		var kept []Feature
		for _, f := range r.Features {
			if shifted, ok := shiftFeature(f, from, to); ok {
				kept = append(kept, shifted)
			}
		}
		r.Features = kept
	}
	return s, nil
}

// shiftFeature clips a feature to [from, to) and rebases it to from.
func shiftFeature(f Feature, from, to int) (Feature, bool) {
	spans, ok := spansOf(f.Location)
	if !ok {
		return f, false
	}

	var kept Compound
	for _, s := range spans {
		clipped := Span{Start: clipTo(s.Start, to) - from, End: clipTo(s.End, to) - from}
		if clipped.Start < 0 {
			clipped.Start = 0
		}
		if clipped.End <= clipped.Start {
			continue
		}
		kept = append(kept, clipped)
	}
	if len(kept) == 0 {
		return f, false
	}

	if len(kept) == 1 {
		f.Location = kept[0]
	} else {
		f.Location = kept
	}
	return f, true
}

// Annotate adds a feature across the passed spans of every record whose
// id matches pattern ("" matches all). Out-of-range spans are clipped
// with a warning; an unrecognized strand value defaults to none with a
// warning.
func Annotate(s *SeqSet, ftype string, spans []Span, strand, pattern string, qualifiers []Qualifier) (*SeqSet, error) {
	re := regexp.MustCompile("")
	if pattern != "" {
		var err error
		if re, err = regexp.Compile(pattern); err != nil {
			return nil, &ValueError{Reason: fmt.Sprintf("invalid record pattern '%s': %v", pattern, err)}
		}
	}

	str, known := ParseStrand(strand)
	if !known {
		stderr.Printf("Warning: strand '%s' is not recognized, defaulting to none\n", strand)
	}

	for _, r := range s.Records {
		if !re.MatchString(r.ID) {
			continue
		}

		var kept Compound
		for _, sp := range spans {
			clipped := Span{Start: clipTo(sp.Start, r.Len()), End: clipTo(sp.End, r.Len())}
			if clipped != sp {
				stderr.Printf("Warning: feature %s clipped to the bounds of %s\n", ftype, r.ID)
			}
			if clipped.Start < clipped.End {
				kept = append(kept, clipped)
			}
		}
		if len(kept) == 0 {
			continue
		}

		f := Feature{Type: ftype, Strand: str, Qualifiers: qualifiers}
		if len(kept) == 1 {
			f.Location = kept[0]
		} else {
			f.Location = kept
		}
		r.Features = append(r.Features, f)
	}
	return s, nil
}

// OrderIDs sorts records by id, optionally in reverse.
func OrderIDs(s *SeqSet, reverse bool) *SeqSet {
	sort.SliceStable(s.Records, func(i, j int) bool {
		if reverse {
			i, j = j, i
		}
		return s.Records[i].ID < s.Records[j].ID
	})
	return s
}

// MakeIDsUnique suffixes duplicate ids with an incrementing counter so
// the set satisfies the unique-id invariant.
func MakeIDsUnique(s *SeqSet) *SeqSet {
	counts := make(map[string]int)
	for _, r := range s.Records {
		counts[r.ID]++
		if n := counts[r.ID]; n > 1 {
			r.ID = r.ID + "_" + strconv.Itoa(n)
		}
	}
	return s
}

// CleanSeq strips symbols outside the set's alphabet (gaps included).
// With ambiguous false, ambiguity codes are replaced by rep instead of
// kept.
func CleanSeq(s *SeqSet, ambiguous bool, rep byte) *SeqSet {
	strict := "ACGTU"
	if s.Alphabet == AlphabetProtein {
		strict = "ACDEFGHIKLMNPQRSTVWY"
	}

	for _, r := range s.Records {
		var out strings.Builder
		for _, c := range strings.ToUpper(r.Seq) {
			switch {
			case strings.ContainsRune(strict, c):
				out.WriteRune(c)
			case !unicode.IsLetter(c):
				// gaps, digits, punctuation
			case s.Alphabet.Nucleic() && !strings.ContainsRune(nuclSymbols, c):
				// not a residue at all, drop
			case ambiguous:
				out.WriteRune(c)
			default:
				out.WriteByte(rep)
			}
		}
		r.Seq = out.String()
		r.Features = nil // coordinates are meaningless after cleaning
	}
	return s
}

// ConcatSeqs joins every record into one, id'd by the passed name.
func ConcatSeqs(s *SeqSet, id string) *SeqSet {
	var seq strings.Builder
	for _, r := range s.Records {
		seq.WriteString(r.Seq)
	}
	s.Records = []*Record{{ID: id, Seq: seq.String(), Alphabet: s.Alphabet}}
	return s
}

// AverageLength returns the mean ungapped record length.
func AverageLength(s *SeqSet) float64 {
	if len(s.Records) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.Records {
		total += len(strings.NewReplacer("-", "", ".", "").Replace(r.Seq))
	}
	return float64(total) / float64(len(s.Records))
}

// NumSeqs returns the record count.
func NumSeqs(s *SeqSet) int {
	return len(s.Records)
}
