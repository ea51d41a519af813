package buddy

import (
	"encoding/xml"
	"strings"
)

// seqXML wire structs, one <entry> per record with the sequence in an
// alphabet-specific element.
type seqXMLDoc struct {
	XMLName xml.Name      `xml:"seqXML"`
	Version string        `xml:"seqXMLversion,attr"`
	Entries []seqXMLEntry `xml:"entry"`
}

type seqXMLEntry struct {
	ID          string `xml:"id,attr"`
	Description string `xml:"description,omitempty"`
	DNASeq      string `xml:"DNAseq,omitempty"`
	RNASeq      string `xml:"RNAseq,omitempty"`
	AASeq       string `xml:"AAseq,omitempty"`
}

func readSeqXML(text string) ([]*Record, error) {
	var doc seqXMLDoc
	if err := xml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &FormatError{Reason: "malformed seqxml: " + err.Error()}
	}

	var records []*Record
	for _, e := range doc.Entries {
		seq := e.DNASeq
		if seq == "" {
			seq = e.RNASeq
		}
		if seq == "" {
			seq = e.AASeq
		}
		records = append(records, &Record{
			ID:          e.ID,
			Description: e.Description,
			Seq:         strings.TrimSpace(seq),
		})
	}

	if len(records) == 0 {
		return nil, &FormatError{Reason: "no entries in seqxml input"}
	}
	return records, nil
}

func writeSeqXML(records []*Record, alphabet Alphabet) string {
	doc := seqXMLDoc{Version: "0.4"}
	for _, r := range records {
		entry := seqXMLEntry{ID: r.ID, Description: r.Description}
		switch alphabet {
		case AlphabetRNA:
			entry.RNASeq = r.Seq
		case AlphabetProtein:
			entry.AASeq = r.Seq
		default:
			entry.DNASeq = r.Seq
		}
		doc.Entries = append(doc.Entries, entry)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return ""
	}
	return xml.Header + string(out) + "\n"
}
