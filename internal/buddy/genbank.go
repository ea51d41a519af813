package buddy

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	locusRegex   = regexp.MustCompile(`(?m)^LOCUS\s+(\S+)`)
	spanRegex    = regexp.MustCompile(`(\d+)\.\.[<>]?(\d+)`)
	nonSeqRegex  = regexp.MustCompile(`[^A-Za-z*\-.]`)
	emblIDRegex  = regexp.MustCompile(`(?m)^ID\s+([^;\s]+)`)
	qualKeyRegex = regexp.MustCompile(`^/(\w+)=?(.*)$`)
)

// readGenbank parses one or more GenBank (or EMBL) entries, separated
// by '//' lines, to records with their feature tables.
func readGenbank(text string, embl bool) ([]*Record, error) {
	var records []*Record
	for _, entry := range strings.Split(text, "\n//") {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		rec, err := readGenbankEntry(entry, embl)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, &FormatError{Reason: "no genbank entries in input"}
	}
	return records, nil
}

func readGenbankEntry(entry string, embl bool) (*Record, error) {
	idRegex, seqHeader, featHeader := locusRegex, "ORIGIN", "FEATURES"
	if embl {
		idRegex, seqHeader, featHeader = emblIDRegex, "SQ ", "FH "
	}

	idMatch := idRegex.FindStringSubmatch(entry)
	if idMatch == nil {
		return nil, &FormatError{Reason: "entry is missing its LOCUS/ID header"}
	}
	rec := &Record{ID: idMatch[1]}

	// sequence lines follow ORIGIN (genbank) or SQ (embl)
	seqAt := strings.Index(entry, "\n"+seqHeader)
	if seqAt < 0 {
		return nil, &FormatError{Reason: fmt.Sprintf("entry %s has no sequence section", rec.ID)}
	}
	seqPart := entry[seqAt:]
	if nl := strings.Index(seqPart[1:], "\n"); nl >= 0 {
		seqPart = seqPart[nl+1:]
	}
	var seq strings.Builder
	for _, line := range strings.Split(seqPart, "\n") {
		for _, field := range strings.Fields(line) {
			if nonSeqRegex.MatchString(field) {
				continue // position numbers and embl spacer columns
			}
			seq.WriteString(field)
		}
	}
	rec.Seq = seq.String()

	// feature table between FEATURES/FH and the sequence section
	head := entry[:seqAt]
	if featAt := strings.Index(head, featHeader); featAt >= 0 {
		features, err := readFeatureTable(head[featAt:], embl)
		if err != nil {
			return nil, err
		}
		rec.Features = features
	}

	return rec, nil
}

// readFeatureTable parses the indented key/location/qualifier lines of
// a feature table. EMBL prefixes each line with "FT".
func readFeatureTable(table string, embl bool) ([]Feature, error) {
	lines := strings.Split(table, "\n")

	var parsed []*Feature
	var current *Feature
	var locBuffer string // locations can continue onto the next line
	var lastQual *Qualifier

	flushLoc := func() error {
		if current == nil || locBuffer == "" {
			return nil
		}
		loc, strand, err := parseGenbankLocation(locBuffer)
		if err != nil {
			return err
		}
		current.Location = loc
		current.Strand = strand
		locBuffer = ""
		return nil
	}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if embl {
			if strings.HasPrefix(line, "FH") {
				continue
			}
			if !strings.HasPrefix(line, "FT") {
				break // out of the feature table
			}
			line = line[2:]
		}
		if !strings.HasPrefix(line, " ") {
			break // out of the indented feature table
		}

		trimmed := strings.TrimSpace(line)
		indent := len(line) - len(strings.TrimLeft(line, " "))

		switch {
		case indent < 10 && !strings.HasPrefix(trimmed, "/"):
			// new feature: type then location
			if err := flushLoc(); err != nil {
				return nil, err
			}
			fields := strings.Fields(trimmed)
			current = &Feature{Type: fields[0]}
			parsed = append(parsed, current)
			lastQual = nil
			if len(fields) > 1 {
				locBuffer = strings.Join(fields[1:], "")
			}

		case strings.HasPrefix(trimmed, "/"):
			if err := flushLoc(); err != nil {
				return nil, err
			}
			if current == nil {
				continue
			}
			m := qualKeyRegex.FindStringSubmatch(trimmed)
			if m == nil {
				continue
			}
			current.Qualifiers = append(current.Qualifiers, Qualifier{
				Key:   m[1],
				Value: strings.Trim(m[2], `"`),
			})
			lastQual = &current.Qualifiers[len(current.Qualifiers)-1]

		case locBuffer != "":
			locBuffer += trimmed // continued location

		case lastQual != nil:
			// continued qualifier: prose values wrap on word boundaries,
			// translations wrap mid-sequence
			val := strings.Trim(trimmed, `"`)
			if lastQual.Key == "translation" {
				lastQual.Value += val
			} else {
				lastQual.Value += " " + val
			}
		}
	}

	if err := flushLoc(); err != nil {
		return nil, err
	}

	features := make([]Feature, len(parsed))
	for i, f := range parsed {
		features[i] = *f
	}
	return features, nil
}

// parseGenbankLocation converts "join(1..10,20..30)", "complement(5..8)"
// or "5..8" to a Location and Strand. Positions are 1-based inclusive in
// the file and half-open 0-based in memory.
func parseGenbankLocation(loc string) (Location, Strand, error) {
	strand := StrandFwd
	if strings.Contains(loc, "complement(") {
		strand = StrandRev
	}

	matches := spanRegex.FindAllStringSubmatch(loc, -1)
	if matches == nil {
		// single-base locations like "42"
		if pos, err := strconv.Atoi(strings.Trim(loc, "<>()")); err == nil {
			return Span{Start: pos - 1, End: pos}, strand, nil
		}
		return nil, StrandNone, &FormatError{Reason: fmt.Sprintf("unparseable feature location '%s'", loc)}
	}

	spans := make(Compound, len(matches))
	for i, m := range matches {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		spans[i] = Span{Start: start - 1, End: end}
	}
	if len(spans) == 1 {
		return spans[0], strand, nil
	}
	return spans, strand, nil
}

// writeGenbank serializes records to GenBank flat-file text.
func writeGenbank(records []*Record) string {
	var out strings.Builder
	for _, r := range records {
		molecule := "bp"
		if r.Alphabet == AlphabetProtein {
			molecule = "aa"
		}
		fmt.Fprintf(&out, "LOCUS       %-16s %d %s\n", r.ID, r.Len(), molecule)
		if r.Description != "" {
			fmt.Fprintf(&out, "DEFINITION  %s\n", r.Description)
		}

		if len(r.Features) > 0 {
			out.WriteString("FEATURES             Location/Qualifiers\n")
			for _, f := range r.Features {
				fmt.Fprintf(&out, "     %-16s%s\n", f.Type, formatGenbankLocation(f.Location, f.Strand))
				for _, q := range f.Qualifiers {
					fmt.Fprintf(&out, "                     /%s=\"%s\"\n", q.Key, q.Value)
				}
			}
		}

		out.WriteString("ORIGIN\n")
		seq := r.Seq
		for start := 0; start < len(seq); start += 60 {
			end := start + 60
			if end > len(seq) {
				end = len(seq)
			}
			fmt.Fprintf(&out, "%9d", start+1)
			for at := start; at < end; at += 10 {
				upTo := at + 10
				if upTo > end {
					upTo = end
				}
				out.WriteString(" " + strings.ToLower(seq[at:upTo]))
			}
			out.WriteString("\n")
		}
		out.WriteString("//\n")
	}
	return out.String()
}

func formatGenbankLocation(loc Location, strand Strand) string {
	spans, ok := spansOf(loc)
	if !ok || len(spans) == 0 {
		return "1..1"
	}

	parts := make([]string, len(spans))
	for i, s := range spans {
		parts[i] = fmt.Sprintf("%d..%d", s.Start+1, s.End)
	}
	body := parts[0]
	if len(parts) > 1 {
		body = "join(" + strings.Join(parts, ",") + ")"
	}
	if strand == StrandRev {
		body = "complement(" + body + ")"
	}
	return body
}

// writeEMBL serializes records to a minimal EMBL flat file sharing the
// GenBank feature formatting.
func writeEMBL(records []*Record) string {
	var out strings.Builder
	for _, r := range records {
		molecule := "BP"
		if r.Alphabet == AlphabetProtein {
			molecule = "AA"
		}
		fmt.Fprintf(&out, "ID   %s; SV 1; linear; ; ; ; %d %s.\n", r.ID, r.Len(), molecule)
		if r.Description != "" {
			fmt.Fprintf(&out, "DE   %s\n", r.Description)
		}

		if len(r.Features) > 0 {
			out.WriteString("FH   Key             Location/Qualifiers\n")
			for _, f := range r.Features {
				fmt.Fprintf(&out, "FT   %-16s%s\n", f.Type, formatGenbankLocation(f.Location, f.Strand))
				for _, q := range f.Qualifiers {
					fmt.Fprintf(&out, "FT                   /%s=\"%s\"\n", q.Key, q.Value)
				}
			}
		}

		fmt.Fprintf(&out, "SQ   Sequence %d %s;\n", r.Len(), strings.ToLower(molecule))
		seq := strings.ToLower(r.Seq)
		for start := 0; start < len(seq); start += 60 {
			end := start + 60
			if end > len(seq) {
				end = len(seq)
			}
			out.WriteString("     ")
			for at := start; at < end; at += 10 {
				upTo := at + 10
				if upTo > end {
					upTo = end
				}
				out.WriteString(seq[at:upTo] + " ")
			}
			fmt.Fprintf(&out, "%d\n", end)
		}
		out.WriteString("//\n")
	}
	return out.String()
}
