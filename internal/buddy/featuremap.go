package buddy

import "fmt"

// Mapping modes for the feature coordinate mappers. "key" pairs records
// by identical id; "list" pairs them by position and requires the two
// sets to hold the same number of records.
const (
	MapModeKey  = "key"
	MapModeList = "list"
)

// MapFeaturesNucl2Prot copies features from nucleotide records onto the
// matching protein records, dividing coordinates by three (truncating).
// The protein set is mutated in place and returned; its pre-existing
// features are kept alongside the mapped ones.
func MapFeaturesNucl2Prot(nucl, prot *SeqSet, mode string) (*SeqSet, error) {
	if !nucl.Alphabet.Nucleic() {
		return nil, &AlphabetError{Op: "feature mapping source", Alphabet: nucl.Alphabet}
	}

	err := mapFeatures(nucl, prot, mode, func(p int) int { return p / 3 })
	if err != nil {
		return nil, err
	}
	return prot, nil
}

// MapFeaturesProt2Nucl copies features from protein records onto the
// matching nucleotide records, multiplying coordinates by three.
func MapFeaturesProt2Nucl(prot, nucl *SeqSet, mode string) (*SeqSet, error) {
	if !nucl.Alphabet.Nucleic() {
		return nil, &AlphabetError{Op: "feature mapping target", Alphabet: nucl.Alphabet}
	}

	err := mapFeatures(prot, nucl, mode, func(p int) int { return p * 3 })
	if err != nil {
		return nil, err
	}
	return nucl, nil
}

func mapFeatures(source, target *SeqSet, mode string, scale func(int) int) error {
	pairs, err := matchRecords(source, target, mode)
	if err != nil {
		return err
	}

	for _, pair := range pairs {
		for _, f := range pair.source.Features {
			mapped, err := mapFeature(f, pair.target, scale)
			if err != nil {
				return err
			}
			if mapped != nil {
				pair.target.Features = append(pair.target.Features, *mapped)
			}
		}
	}
	return nil
}

type recordPair struct {
	source *Record
	target *Record
}

func matchRecords(source, target *SeqSet, mode string) ([]recordPair, error) {
	switch mode {
	case MapModeKey:
		var pairs []recordPair
		for _, s := range source.Records {
			if t, ok := target.Get(s.ID); ok {
				pairs = append(pairs, recordPair{source: s, target: t})
			}
		}
		return pairs, nil

	case MapModeList:
		if len(source.Records) != len(target.Records) {
			return nil, &ValueError{Reason: fmt.Sprintf(
				"the two input files do not contain the same number of sequences (%d vs %d)",
				len(source.Records), len(target.Records))}
		}
		pairs := make([]recordPair, len(source.Records))
		for i, s := range source.Records {
			pairs[i] = recordPair{source: s, target: target.Records[i]}
		}
		return pairs, nil
	}

	return nil, &ValueError{Reason: fmt.Sprintf("'mode' must be either 'key' or 'list', got '%s'", mode)}
}

// mapFeature transforms one feature's coordinates onto the target
// record. Spans are scaled then clipped to [0, len(target)]; a span
// left empty is dropped, and a feature with no surviving spans is
// dropped entirely with a warning. Strand and qualifiers carry over
// unchanged. A nil mapped feature means it was dropped.
func mapFeature(f Feature, target *Record, scale func(int) int) (*Feature, error) {
	spans, ok := spansOf(f.Location)
	if !ok {
		return nil, &LocationError{Reason: fmt.Sprintf(
			"feature mapping requires a feature with either a span or compound location, %s has neither", f.Type)}
	}

	var kept Compound
	for _, s := range spans {
		mapped := Span{
			Start: clipTo(scale(s.Start), target.Len()),
			End:   clipTo(scale(s.End), target.Len()),
		}
		if mapped.Start >= mapped.End {
			continue
		}
		kept = append(kept, mapped)
	}

	if len(kept) == 0 {
		stderr.Printf("Warning: feature %s maps outside %s, dropped\n", f.Type, target.ID)
		return nil, nil
	}

	mapped := f.Copy()
	if len(kept) == 1 {
		mapped.Location = kept[0]
	} else {
		mapped.Location = kept
	}
	return &mapped, nil
}

func clipTo(pos, max int) int {
	if pos < 0 {
		return 0
	}
	if pos > max {
		return max
	}
	return pos
}
