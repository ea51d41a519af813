package buddy

import (
	"strconv"
	"strings"
)

// readFasta parses multi-FASTA text to records. Gap characters are kept
// so aligned FASTA round-trips.
func readFasta(text string) ([]*Record, error) {
	lines := strings.Split(text, "\n")

	var records []*Record
	var current *Record
	var seq strings.Builder

	flush := func() {
		if current != nil {
			current.Seq = seq.String()
			records = append(records, current)
			seq.Reset()
		}
	}

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, ">") {
			flush()
			header := strings.TrimSpace(line[1:])
			id, desc := header, ""
			if sp := strings.IndexAny(header, " \t"); sp > 0 {
				id, desc = header[:sp], strings.TrimSpace(header[sp+1:])
			}
			current = &Record{ID: id, Description: desc}
			continue
		}
		if current != nil {
			seq.WriteString(strings.TrimSpace(line))
		}
	}
	flush()

	if len(records) == 0 {
		return nil, &FormatError{Reason: "no fasta records in input"}
	}
	return records, nil
}

// writeFasta serializes records to multi-FASTA, wrapping sequence lines
// at 80 columns.
func writeFasta(records []*Record) string {
	var out strings.Builder
	for _, r := range records {
		out.WriteString(">" + r.ID)
		if r.Description != "" {
			out.WriteString(" " + r.Description)
		}
		out.WriteString("\n")
		out.WriteString(wrap(r.Seq, 80))
	}
	return out.String()
}

// readRaw treats each blank-line-separated chunk as one unnamed record.
func readRaw(text string) ([]*Record, error) {
	var records []*Record
	for i, chunk := range strings.Split(text, "\n\n") {
		seq := strings.Join(strings.Fields(chunk), "")
		if seq == "" {
			continue
		}
		records = append(records, &Record{
			ID:  rawID(i),
			Seq: seq,
		})
	}
	if len(records) == 0 {
		return nil, &FormatError{Reason: "no sequence characters in raw input"}
	}
	return records, nil
}

func rawID(index int) string {
	if index == 0 {
		return "raw_input"
	}
	return "raw_input_" + strconv.Itoa(index)
}

// writeRaw serializes just the symbols, records separated by a blank line.
func writeRaw(records []*Record) string {
	seqs := make([]string, len(records))
	for i, r := range records {
		seqs[i] = r.Seq
	}
	return strings.Join(seqs, "\n\n") + "\n"
}

// wrap splits seq into width-character lines, each newline terminated.
func wrap(seq string, width int) string {
	if seq == "" {
		return "\n"
	}
	var out strings.Builder
	for start := 0; start < len(seq); start += width {
		end := start + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[start:end])
		out.WriteString("\n")
	}
	return out.String()
}
