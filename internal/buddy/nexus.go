package buddy

import (
	"fmt"
	"regexp"
	"strings"
)

var nexusDimRegex = regexp.MustCompile(`(?i)ntax\s*=\s*(\d+).*nchar\s*=\s*(\d+)`)

// readNexus parses the data/characters block of a nexus file to one
// alignment block. Comments in square brackets are stripped first.
func readNexus(text string) ([]*AlignmentBlock, error) {
	text = regexp.MustCompile(`\[[^\]]*\]`).ReplaceAllString(text, "")

	lower := strings.ToLower(text)
	matrixAt := strings.Index(lower, "matrix")
	if matrixAt < 0 {
		return nil, &FormatError{Reason: "nexus file has no matrix section"}
	}

	// the matrix runs to the next ';'
	matrix := text[matrixAt+len("matrix"):]
	if end := strings.Index(matrix, ";"); end >= 0 {
		matrix = matrix[:end]
	}

	// records may be interleaved: accumulate by id, keeping first-seen order
	seqs := make(map[string]*strings.Builder)
	var order []string
	for _, line := range strings.Split(matrix, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		id := strings.Trim(fields[0], "'\"")
		if _, seen := seqs[id]; !seen {
			seqs[id] = &strings.Builder{}
			order = append(order, id)
		}
		seqs[id].WriteString(strings.Join(fields[1:], ""))
	}

	if len(order) == 0 {
		return nil, &FormatError{Reason: "nexus matrix holds no records"}
	}

	records := make([]*Record, len(order))
	for i, id := range order {
		records[i] = &Record{ID: id, Seq: seqs[id].String()}
	}

	if dims := nexusDimRegex.FindStringSubmatch(lower); dims != nil {
		declared := dims[1]
		if fmt.Sprintf("%d", len(records)) != declared {
			return nil, &FormatError{Reason: fmt.Sprintf(
				"nexus dimensions declared ntax=%s, matrix holds %d", declared, len(records))}
		}
	}

	return []*AlignmentBlock{{Records: records}}, nil
}

// writeNexus serializes one alignment block as a nexus data block.
// Nexus holds a single matrix; callers reject multi-block sets.
func writeNexus(b *AlignmentBlock, alphabet Alphabet) string {
	datatype := "dna"
	switch alphabet {
	case AlphabetRNA:
		datatype = "rna"
	case AlphabetProtein:
		datatype = "protein"
	}

	idWidth := 0
	for _, r := range b.Records {
		if len(r.ID) > idWidth {
			idWidth = len(r.ID)
		}
	}

	var out strings.Builder
	out.WriteString("#NEXUS\n")
	out.WriteString("begin data;\n")
	fmt.Fprintf(&out, "\tdimensions ntax=%d nchar=%d;\n", len(b.Records), b.Len())
	fmt.Fprintf(&out, "\tformat datatype=%s missing=? gap=-;\n", datatype)
	out.WriteString("matrix\n")
	for _, r := range b.Records {
		fmt.Fprintf(&out, "%-*s %s\n", idWidth+1, r.ID, r.Seq)
	}
	out.WriteString(";\nend;\n")
	return out.String()
}
