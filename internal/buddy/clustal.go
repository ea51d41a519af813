package buddy

import (
	"fmt"
	"strings"
)

// readClustal parses a clustal alignment to one block. Sequence lines
// are "id  chunk"; conservation lines (leading whitespace) and the
// header line are skipped; interleaved chunks accumulate by id.
func readClustal(text string) ([]*AlignmentBlock, error) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || !strings.HasPrefix(strings.ToUpper(lines[0]), "CLUSTAL") {
		return nil, &FormatError{Reason: "missing CLUSTAL header line"}
	}

	seqs := make(map[string]*strings.Builder)
	var order []string
	for _, line := range lines[1:] {
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue // blank or conservation line
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		id, chunk := fields[0], fields[1] // trailing field may be a column count

		if _, seen := seqs[id]; !seen {
			seqs[id] = &strings.Builder{}
			order = append(order, id)
		}
		seqs[id].WriteString(chunk)
	}

	if len(order) == 0 {
		return nil, &FormatError{Reason: "no records under the CLUSTAL header"}
	}

	records := make([]*Record, len(order))
	for i, id := range order {
		records[i] = &Record{ID: id, Seq: seqs[id].String()}
	}
	return []*AlignmentBlock{{Records: records}}, nil
}

// writeClustal serializes one block in 60-column interleaved chunks
// under a CLUSTAL header. Clustal holds a single alignment; callers
// reject multi-block sets.
func writeClustal(b *AlignmentBlock) string {
	idWidth := 0
	for _, r := range b.Records {
		if len(r.ID) > idWidth {
			idWidth = len(r.ID)
		}
	}

	var out strings.Builder
	out.WriteString("CLUSTAL W multiple sequence alignment\n\n")
	for start := 0; start < b.Len(); start += 60 {
		end := start + 60
		if end > b.Len() {
			end = b.Len()
		}
		for _, r := range b.Records {
			fmt.Fprintf(&out, "%-*s %s\n", idWidth+4, r.ID, r.Seq[start:end])
		}
		out.WriteString("\n")
	}
	return out.String()
}
