package buddy

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// cdsSet builds a nucleotide set of n coding records with one CDS
// feature each.
func cdsSet(t *testing.T, n int) *SeqSet {
	t.Helper()

	records := make([]*Record, n)
	for i := range records {
		records[i] = &Record{
			ID:  fmt.Sprintf("rec_%d", i+1),
			Seq: strings.Repeat("ATGCTCGTA", 10), // 90 nt
			Features: []Feature{
				{Type: "CDS", Location: Span{Start: 12, End: 45}, Strand: StrandFwd,
					Qualifiers: []Qualifier{{Key: "gene", Value: fmt.Sprintf("g%d", i+1)}}},
			},
		}
	}

	set, err := NewSeqSet(records, FormatFasta)
	if err != nil {
		t.Fatal(err)
	}
	return set
}

// protSet builds the matching protein set, featureless.
func protSet(t *testing.T, n int) *SeqSet {
	t.Helper()

	records := make([]*Record, n)
	for i := range records {
		records[i] = &Record{
			ID:  fmt.Sprintf("rec_%d", i+1),
			Seq: strings.Repeat("MLVMLVMLVM", 3), // 30 aa
		}
	}

	set, err := NewSeqSet(records, FormatFasta)
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func TestMapFeaturesNucl2Prot(t *testing.T) {
	nucl := cdsSet(t, 13)
	prot := protSet(t, 13)

	mapped, err := MapFeaturesNucl2Prot(nucl, prot, MapModeKey)
	if err != nil {
		t.Fatalf("MapFeaturesNucl2Prot() error = %v", err)
	}

	for i, r := range mapped.Records {
		if len(r.Features) != 1 {
			t.Fatalf("record %d has %d features, want 1", i, len(r.Features))
		}
		f := r.Features[0]

		// every mapped start is floor(nucleotide start / 3)
		want := Span{Start: 12 / 3, End: 45 / 3}
		if f.Location != Location(want) {
			t.Errorf("record %d location = %v, want %v", i, f.Location, want)
		}
		if f.Strand != StrandFwd {
			t.Errorf("record %d strand = %v, want %v", i, f.Strand, StrandFwd)
		}
		wantQuals := []Qualifier{{Key: "gene", Value: fmt.Sprintf("g%d", i+1)}}
		if !reflect.DeepEqual(f.Qualifiers, wantQuals) {
			t.Errorf("record %d qualifiers = %v, want %v", i, f.Qualifiers, wantQuals)
		}
	}
}

func TestMapFeaturesPreservesTargetFeatures(t *testing.T) {
	nucl := cdsSet(t, 3)
	prot := protSet(t, 3)
	prot.Records[0].Features = []Feature{
		{Type: "domain", Location: Span{Start: 1, End: 5}},
	}

	mapped, err := MapFeaturesNucl2Prot(nucl, prot, MapModeKey)
	if err != nil {
		t.Fatalf("MapFeaturesNucl2Prot() error = %v", err)
	}

	if len(mapped.Records[0].Features) != 2 {
		t.Fatalf("features = %d, want the original plus the mapped one", len(mapped.Records[0].Features))
	}
	if mapped.Records[0].Features[0].Type != "domain" {
		t.Errorf("original target feature was not preserved first")
	}
}

func TestMapFeaturesRoundTrip(t *testing.T) {
	// a nucleotide span [a,b) mapped to protein and back contains
	// [3*(a/3), 3*(b/3)) - truncation at codon boundaries by design
	nucl := cdsSet(t, 1)
	nucl.Records[0].Features = []Feature{
		{Type: "misc", Location: Span{Start: 20, End: 40}},
	}
	prot := protSet(t, 1)

	if _, err := MapFeaturesNucl2Prot(nucl, prot, MapModeKey); err != nil {
		t.Fatalf("MapFeaturesNucl2Prot() error = %v", err)
	}

	prot.Alphabet = AlphabetProtein
	back := cdsSet(t, 1)
	back.Records[0].Features = nil
	if _, err := MapFeaturesProt2Nucl(prot, back, MapModeKey); err != nil {
		t.Fatalf("MapFeaturesProt2Nucl() error = %v", err)
	}

	want := Span{Start: 3 * (20 / 3), End: 3 * (40 / 3)}
	got := back.Records[0].Features[0].Location
	if got != Location(want) {
		t.Errorf("round-tripped location = %v, want %v", got, want)
	}
}

func TestMapFeaturesListModeMismatch(t *testing.T) {
	type args struct {
		nuclCount int
		protCount int
	}
	tests := []struct {
		name    string
		args    args
		wantErr string
	}{
		{
			"8 vs 13 records",
			args{nuclCount: 8, protCount: 13},
			"do not contain the same number of sequences (8 vs 13)",
		},
		{
			"13 vs 8 records",
			args{nuclCount: 13, protCount: 8},
			"do not contain the same number of sequences (13 vs 8)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapFeaturesNucl2Prot(cdsSet(t, tt.args.nuclCount), protSet(t, tt.args.protCount), MapModeList)
			if err == nil {
				t.Fatal("MapFeaturesNucl2Prot() expected a ValueError")
			}
			if _, ok := err.(*ValueError); !ok {
				t.Fatalf("MapFeaturesNucl2Prot() error = %T, want *ValueError", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestMapFeaturesBadMode(t *testing.T) {
	_, err := MapFeaturesNucl2Prot(cdsSet(t, 2), protSet(t, 2), "foo")
	if err == nil {
		t.Fatal("MapFeaturesNucl2Prot() expected a ValueError")
	}
	if !strings.Contains(err.Error(), "'mode' must be either 'key' or 'list'") {
		t.Errorf("error = %v", err)
	}
}

func TestMapFeaturesMalformedLocation(t *testing.T) {
	nucl := cdsSet(t, 1)
	nucl.Records[0].Features[0].Location = nil

	_, err := MapFeaturesNucl2Prot(nucl, protSet(t, 1), MapModeKey)
	if err == nil {
		t.Fatal("MapFeaturesNucl2Prot() expected a LocationError")
	}
	if _, ok := err.(*LocationError); !ok {
		t.Fatalf("error = %T, want *LocationError", err)
	}
	if !strings.Contains(err.Error(), "span or compound location") {
		t.Errorf("error = %v", err)
	}
}

func TestMapFeaturesCompoundLocation(t *testing.T) {
	nucl := cdsSet(t, 1)
	nucl.Records[0].Features[0].Location = Compound{
		{Start: 6, End: 21},
		{Start: 30, End: 45},
	}
	prot := protSet(t, 1)

	if _, err := MapFeaturesNucl2Prot(nucl, prot, MapModeKey); err != nil {
		t.Fatalf("MapFeaturesNucl2Prot() error = %v", err)
	}

	want := Compound{{Start: 2, End: 7}, {Start: 10, End: 15}}
	got := prot.Records[0].Features[0].Location
	if !reflect.DeepEqual(got, want) {
		t.Errorf("compound location = %v, want %v", got, want)
	}
}

func TestMapFeaturesOutOfRangeDropped(t *testing.T) {
	nucl := cdsSet(t, 1)
	nucl.Records[0].Features[0].Location = Span{Start: 300, End: 400} // past either sequence
	prot := protSet(t, 1)

	if _, err := MapFeaturesNucl2Prot(nucl, prot, MapModeKey); err != nil {
		t.Fatalf("MapFeaturesNucl2Prot() error = %v", err)
	}
	if len(prot.Records[0].Features) != 0 {
		t.Errorf("out-of-range feature should be dropped, got %v", prot.Records[0].Features)
	}
}

func TestMapFeaturesKeyModeSkipsMissingIDs(t *testing.T) {
	nucl := cdsSet(t, 2)
	nucl.Records[1].ID = "only_in_nucl"
	prot := protSet(t, 2)

	if _, err := MapFeaturesNucl2Prot(nucl, prot, MapModeKey); err != nil {
		t.Fatalf("MapFeaturesNucl2Prot() error = %v", err)
	}
	if len(prot.Records[0].Features) != 1 {
		t.Errorf("matched record has %d features, want 1", len(prot.Records[0].Features))
	}
	if len(prot.Records[1].Features) != 0 {
		t.Errorf("unmatched record has %d features, want 0", len(prot.Records[1].Features))
	}
}
