package buddy

import (
	"strings"
	"testing"
)

// alignedRecords returns a fresh pair of equal-length records so every
// format, aligned or not, can serialize them.
func alignedRecords() []*Record {
	return []*Record{
		{ID: "seq_1", Seq: "ATGCTCGTAGCT", Alphabet: AlphabetDNA},
		{ID: "seq_2", Seq: "ATG--CGTAGCT", Alphabet: AlphabetDNA},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	type args struct {
		format Format
	}
	tests := []struct {
		name string
		args args
	}{
		{"fasta", args{format: FormatFasta}},
		{"genbank", args{format: FormatGenbank}},
		{"embl", args{format: FormatEMBL}},
		{"seqxml", args{format: FormatSeqXML}},
		{"nexus", args{format: FormatNexus}},
		{"strict phylip", args{format: FormatPhylip}},
		{"relaxed phylip", args{format: FormatPhylipRelaxed}},
		{"sequential strict phylip", args{format: FormatPhylipSS}},
		{"sequential relaxed phylip", args{format: FormatPhylipSR}},
		{"clustal", args{format: FormatClustal}},
		{"stockholm", args{format: FormatStockholm}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := alignedRecords()

			out, err := WriteRecords(records, AlphabetDNA, tt.args.format)
			if err != nil {
				t.Fatalf("WriteRecords() error = %v", err)
			}
			back, err := ReadRecords(out, tt.args.format)
			if err != nil {
				t.Fatalf("ReadRecords() error = %v\nserialized:\n%s", err, out)
			}

			if len(back) != len(records) {
				t.Fatalf("round trip lost records: %d, want %d", len(back), len(records))
			}
			for i := range records {
				if back[i].ID != records[i].ID {
					t.Errorf("record %d id = %v, want %v", i, back[i].ID, records[i].ID)
				}
				if !strings.EqualFold(back[i].Seq, records[i].Seq) {
					t.Errorf("record %d seq = %v, want %v", i, back[i].Seq, records[i].Seq)
				}
			}
		})
	}
}

func TestWriteGuessRoundTrip(t *testing.T) {
	// serialized output must be recognized by the guesser without being
	// told what it wrote
	type args struct {
		format Format
	}
	tests := []struct {
		name string
		args args
		want Format
	}{
		{"fasta", args{format: FormatFasta}, FormatFasta},
		{"genbank", args{format: FormatGenbank}, FormatGenbank},
		{"nexus", args{format: FormatNexus}, FormatNexus},
		{"clustal", args{format: FormatClustal}, FormatClustal},
		{"stockholm", args{format: FormatStockholm}, FormatStockholm},
		{"seqxml", args{format: FormatSeqXML}, FormatSeqXML},
		{"strict phylip", args{format: FormatPhylip}, FormatPhylip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := WriteRecords(alignedRecords(), AlphabetDNA, tt.args.format)
			if err != nil {
				t.Fatalf("WriteRecords() error = %v", err)
			}

			got, err := GuessText(out, "raw input")
			if err != nil {
				t.Fatalf("GuessText() error = %v\nserialized:\n%s", err, out)
			}
			if got != tt.want {
				t.Errorf("GuessText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRawRoundTrip(t *testing.T) {
	records := []*Record{
		{ID: "anything", Seq: "ATGCTCGTAGCT"},
		{ID: "goes", Seq: "ATGCA"},
	}

	out, err := WriteRecords(records, AlphabetDNA, FormatRaw)
	if err != nil {
		t.Fatalf("WriteRecords() error = %v", err)
	}
	back, err := ReadRecords(out, FormatRaw)
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}

	// raw carries no ids, only the symbols survive
	if len(back) != 2 {
		t.Fatalf("round trip lost records: %d, want 2", len(back))
	}
	if back[0].ID != "raw_input" || back[1].ID != "raw_input_1" {
		t.Errorf("raw ids = %v, %v", back[0].ID, back[1].ID)
	}
	for i := range records {
		if back[i].Seq != records[i].Seq {
			t.Errorf("record %d seq = %v, want %v", i, back[i].Seq, records[i].Seq)
		}
	}
}

func TestWriteRecordsEmpty(t *testing.T) {
	_, err := WriteRecords(nil, AlphabetDNA, FormatFasta)
	if err == nil {
		t.Fatal("WriteRecords() expected an error for an empty set")
	}
	if !strings.Contains(err.Error(), "no sequences in object") {
		t.Errorf("WriteRecords() error = %v", err)
	}
}

func TestWriteRecordsRaggedAlignment(t *testing.T) {
	records := []*Record{
		{ID: "seq_1", Seq: "ATGCTC"},
		{ID: "seq_2", Seq: "ATG"},
	}

	for _, format := range []Format{FormatClustal, FormatPhylip, FormatNexus, FormatStockholm} {
		if _, err := WriteRecords(records, AlphabetDNA, format); err == nil {
			t.Errorf("WriteRecords(%v) expected an error for ragged records", format)
		}
	}
}

func TestWriteMultiBlockSingleAlignmentFormats(t *testing.T) {
	a := &AlignSet{
		Blocks: []*AlignmentBlock{
			{Records: []*Record{
				{ID: "seq_1", Seq: "ATGCTC"},
				{ID: "seq_2", Seq: "ATG--C"},
			}},
			{Records: []*Record{
				{ID: "seq_1", Seq: "GGGG"},
				{ID: "seq_2", Seq: "CCCC"},
			}},
		},
		Alphabet: AlphabetDNA,
	}

	for _, format := range []Format{FormatClustal, FormatNexus} {
		a.OutFormat = format
		_, err := a.String()
		if err == nil {
			t.Errorf("String(%v) expected an error for a multi-alignment set", format)
			continue
		}
		if _, ok := err.(*ValueError); !ok {
			t.Errorf("String(%v) error = %T, want *ValueError", format, err)
		}
		if !strings.Contains(err.Error(), "holds only one") {
			t.Errorf("String(%v) error = %v", format, err)
		}
	}

	// multi-alignment formats keep every block
	a.OutFormat = FormatStockholm
	out, err := a.String()
	if err != nil {
		t.Fatalf("String(stockholm) error = %v", err)
	}
	if !strings.Contains(out, "GGGG") || !strings.Contains(out, "CCCC") {
		t.Errorf("stockholm output lost the second alignment:\n%s", out)
	}
}

func TestFastaDescriptionRoundTrip(t *testing.T) {
	records := []*Record{
		{ID: "seq_1", Seq: "ATGC", Description: "a test record"},
	}

	out, err := WriteRecords(records, AlphabetDNA, FormatFasta)
	if err != nil {
		t.Fatalf("WriteRecords() error = %v", err)
	}
	back, err := ReadRecords(out, FormatFasta)
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if back[0].Description != "a test record" {
		t.Errorf("description = %q, want 'a test record'", back[0].Description)
	}
}
