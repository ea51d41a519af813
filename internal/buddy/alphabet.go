package buddy

import "strings"

// Alphabet is the symbol domain of a record.
type Alphabet int8

const (
	AlphabetUnknown Alphabet = iota
	AlphabetDNA
	AlphabetRNA
	AlphabetProtein
)

func (a Alphabet) String() string {
	switch a {
	case AlphabetDNA:
		return "dna"
	case AlphabetRNA:
		return "rna"
	case AlphabetProtein:
		return "protein"
	}
	return "unknown"
}

// Nucleic reports whether the alphabet is DNA or RNA.
func (a Alphabet) Nucleic() bool {
	return a == AlphabetDNA || a == AlphabetRNA
}

// ParseAlphabet maps a user-supplied alphabet name to an Alphabet.
// Unrecognized names return AlphabetUnknown so the caller can fall back
// to guessing from content.
func ParseAlphabet(name string) Alphabet {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dna":
		return AlphabetDNA
	case "rna":
		return AlphabetRNA
	case "prot", "protein", "pep":
		return AlphabetProtein
	}
	return AlphabetUnknown
}

// nucleotide symbols, IUPAC ambiguity codes included
const nuclSymbols = "ACGTUNRYSWKMBDHVX"

// GuessAlphabet classifies records by symbol frequency: if at least 85%
// of the (ungapped) symbols are nucleotide codes the set is DNA, or RNA
// when U appears without T. Anything else is protein. Empty input is
// unknown.
func GuessAlphabet(records []*Record) Alphabet {
	var total, nucl int
	var hasT, hasU bool

	for _, r := range records {
		for _, c := range strings.ToUpper(r.Seq) {
			if c == '-' || c == '.' || c == '*' || c == ' ' {
				continue
			}
			total++
			if strings.ContainsRune(nuclSymbols, c) {
				nucl++
			}
			if c == 'T' {
				hasT = true
			}
			if c == 'U' {
				hasU = true
			}
		}
	}

	if total == 0 {
		return AlphabetUnknown
	}
	if float64(nucl)/float64(total) >= 0.85 {
		if hasU && !hasT {
			return AlphabetRNA
		}
		return AlphabetDNA
	}
	return AlphabetProtein
}
