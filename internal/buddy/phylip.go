package buddy

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var phylipHeaderRegex = regexp.MustCompile(`^\s*(\d+)\s+(\d+)\s*$`)

// readPhylip parses one or more phylip alignments (concatenated files
// each start with their own "count length" header). strict means ids
// occupy a fixed 10-column field; sequential means each record's full
// sequence is given before the next record starts.
func readPhylip(text string, strict, sequential bool) ([]*AlignmentBlock, error) {
	lines := strings.Split(text, "\n")

	var blocks []*AlignmentBlock
	at := 0
	for at < len(lines) {
		// find the next header
		for at < len(lines) && strings.TrimSpace(lines[at]) == "" {
			at++
		}
		if at >= len(lines) {
			break
		}

		header := phylipHeaderRegex.FindStringSubmatch(lines[at])
		if header == nil {
			return nil, &FormatError{Reason: fmt.Sprintf("expected phylip 'count length' header, got '%s'", lines[at])}
		}
		count, _ := strconv.Atoi(header[1])
		length, _ := strconv.Atoi(header[2])
		at++

		var block *AlignmentBlock
		var err error
		if sequential {
			block, at, err = readPhylipSequential(lines, at, count, length, strict)
		} else {
			block, at, err = readPhylipInterleaved(lines, at, count, length, strict)
		}
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	if len(blocks) == 0 {
		return nil, &FormatError{Reason: "no phylip alignments in input"}
	}
	return blocks, nil
}

// splitPhylipLine pulls the id and first sequence chunk off a record's
// leading line.
func splitPhylipLine(line string, strict bool) (id, seq string) {
	if strict {
		if len(line) < 10 {
			return strings.TrimSpace(line), ""
		}
		return strings.TrimSpace(line[:10]), strings.Join(strings.Fields(line[10:]), "")
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], "")
}

func readPhylipInterleaved(lines []string, at, count, length int, strict bool) (*AlignmentBlock, int, error) {
	records := make([]*Record, 0, count)

	// first pass: one leading line per record
	for len(records) < count && at < len(lines) {
		if strings.TrimSpace(lines[at]) == "" {
			at++
			continue
		}
		id, seq := splitPhylipLine(lines[at], strict)
		if id == "" {
			return nil, at, &FormatError{Reason: fmt.Sprintf("phylip record %d is missing an id", len(records)+1)}
		}
		records = append(records, &Record{ID: id, Seq: seq})
		at++
	}
	if len(records) < count {
		return nil, at, &FormatError{Reason: fmt.Sprintf("phylip header declared %d records, found %d", count, len(records))}
	}

	// continuation passes until every record reaches the declared length
	for records[0].Len() < length {
		progressed := false
		for i := 0; i < count && at < len(lines); {
			line := strings.TrimSpace(lines[at])
			at++
			if line == "" {
				continue
			}
			records[i].Seq += strings.Join(strings.Fields(line), "")
			progressed = true
			i++
		}
		if !progressed {
			return nil, at, &FormatError{Reason: fmt.Sprintf(
				"phylip record %s is %d columns, header declared %d", records[0].ID, records[0].Len(), length)}
		}
	}

	for _, r := range records {
		if r.Len() != length {
			return nil, at, &FormatError{Reason: fmt.Sprintf(
				"phylip record %s is %d columns, header declared %d", r.ID, r.Len(), length)}
		}
	}
	return &AlignmentBlock{Records: records}, at, nil
}

func readPhylipSequential(lines []string, at, count, length int, strict bool) (*AlignmentBlock, int, error) {
	records := make([]*Record, 0, count)

	for len(records) < count {
		for at < len(lines) && strings.TrimSpace(lines[at]) == "" {
			at++
		}
		if at >= len(lines) {
			return nil, at, &FormatError{Reason: fmt.Sprintf("phylip header declared %d records, found %d", count, len(records))}
		}

		id, seq := splitPhylipLine(lines[at], strict)
		at++
		for len(seq) < length && at < len(lines) {
			line := strings.TrimSpace(lines[at])
			if line == "" {
				break
			}
			seq += strings.Join(strings.Fields(line), "")
			at++
		}
		if len(seq) != length {
			return nil, at, &FormatError{Reason: fmt.Sprintf(
				"phylip record %s is %d columns, header declared %d", id, len(seq), length)}
		}
		records = append(records, &Record{ID: id, Seq: seq})
	}

	return &AlignmentBlock{Records: records}, at, nil
}

// writePhylip serializes alignment blocks, one header per block. Strict
// ids are padded or truncated to the fixed 10-column field; relaxed ids
// keep their full length followed by two spaces.
func writePhylip(blocks []*AlignmentBlock, strict bool) string {
	var out strings.Builder
	for _, b := range blocks {
		fmt.Fprintf(&out, " %d %d\n", len(b.Records), b.Len())
		for _, r := range b.Records {
			if strict {
				id := r.ID
				if len(id) > 10 {
					id = id[:10]
				}
				fmt.Fprintf(&out, "%-10s%s\n", id, r.Seq)
			} else {
				fmt.Fprintf(&out, "%s  %s\n", r.ID, r.Seq)
			}
		}
	}
	return out.String()
}
