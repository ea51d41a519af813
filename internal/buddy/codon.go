package buddy

import "strings"

// geneticCode is the standard (table 1) genetic code. '*' marks stops.
var geneticCode = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// translateSeq translates one (possibly gapped) nucleotide string.
// A gap-only codon stays a gap column; an unrecognized codon becomes
// 'X' with a warning naming the codon and record; a trailing partial
// codon is dropped with a warning.
func translateSeq(seq, id string) string {
	// RNA is handled by the same table
	normalized := strings.ToUpper(strings.ReplaceAll(seq, "U", "T"))
	normalized = strings.ReplaceAll(normalized, "u", "t")

	if trailing := len(normalized) % 3; trailing != 0 {
		stderr.Printf("Warning: size of %s is not a multiple of 3, dropping %d trailing residue(s)\n", id, trailing)
		normalized = normalized[:len(normalized)-trailing]
	}

	var out strings.Builder
	for at := 0; at < len(normalized); at += 3 {
		codon := normalized[at : at+3]
		switch {
		case codon == "---":
			out.WriteByte('-')
		case strings.ContainsAny(codon, "-."):
			out.WriteByte('X') // partially gapped codon
		default:
			aa, known := geneticCode[codon]
			if !known {
				stderr.Printf("Warning: codon '%s' in %s is not in the standard genetic code, using X\n", codon, id)
				aa = 'X'
			}
			out.WriteByte(aa)
		}
	}
	return out.String()
}

// isStartCodon reports whether the codon initiates translation in the
// standard code.
func isStartCodon(codon string) bool {
	return strings.ToUpper(strings.ReplaceAll(codon, "U", "T")) == "ATG"
}
