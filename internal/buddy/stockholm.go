package buddy

import (
	"fmt"
	"strings"
)

// readStockholm parses stockholm text to alignment blocks, one per
// '//'-terminated alignment. Markup lines (#=GF, #=GS, #=GR, #=GC) are
// skipped; interleaved sequence chunks accumulate by id.
func readStockholm(text string) ([]*AlignmentBlock, error) {
	if !strings.HasPrefix(strings.TrimSpace(text), "# STOCKHOLM") {
		return nil, &FormatError{Reason: "missing '# STOCKHOLM' header line"}
	}

	var blocks []*AlignmentBlock
	seqs := make(map[string]*strings.Builder)
	var order []string

	flush := func() {
		if len(order) == 0 {
			return
		}
		records := make([]*Record, len(order))
		for i, id := range order {
			records[i] = &Record{ID: id, Seq: seqs[id].String()}
		}
		blocks = append(blocks, &AlignmentBlock{Records: records})
		seqs = make(map[string]*strings.Builder)
		order = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.TrimSpace(line) == "//":
			flush()
		default:
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			id := fields[0]
			if _, seen := seqs[id]; !seen {
				seqs[id] = &strings.Builder{}
				order = append(order, id)
			}
			seqs[id].WriteString(fields[1])
		}
	}
	flush() // tolerate a missing trailing '//'

	if len(blocks) == 0 {
		return nil, &FormatError{Reason: "no records under the STOCKHOLM header"}
	}
	return blocks, nil
}

// writeStockholm serializes every block, each under its own header and
// closed with '//'.
func writeStockholm(blocks []*AlignmentBlock) string {
	var out strings.Builder
	for _, b := range blocks {
		idWidth := 0
		for _, r := range b.Records {
			if len(r.ID) > idWidth {
				idWidth = len(r.ID)
			}
		}

		out.WriteString("# STOCKHOLM 1.0\n")
		for _, r := range b.Records {
			fmt.Fprintf(&out, "%-*s %s\n", idWidth+1, r.ID, r.Seq)
		}
		out.WriteString("//\n")
	}
	return out.String()
}
