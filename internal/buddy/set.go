package buddy

import (
	"fmt"
	"log"
	"os"
)

// stderr is for diagnostics (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// SeqSet is an ordered list of unique-id records plus the format the
// set will be serialized back to.
type SeqSet struct {
	// Records in input order
	Records []*Record

	// Alphabet shared by the records, guessed at construction
	Alphabet Alphabet

	// OutFormat the set is serialized to
	OutFormat Format
}

// NewSeqSet builds a set from parsed records. Duplicate ids fail loudly
// rather than silently shadowing one another.
func NewSeqSet(records []*Record, format Format) (*SeqSet, error) {
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			return nil, &ValueError{Reason: fmt.Sprintf("duplicate record id '%s' in input", r.ID)}
		}
		seen[r.ID] = true
	}

	s := &SeqSet{
		Records:   records,
		Alphabet:  GuessAlphabet(records),
		OutFormat: format,
	}
	for _, r := range s.Records {
		r.Alphabet = s.Alphabet
	}
	return s, nil
}

// Copy returns a deep copy of the set. Callers that want to run an
// operation without mutating the original work on a copy.
func (s *SeqSet) Copy() *SeqSet {
	records := make([]*Record, len(s.Records))
	for i, r := range s.Records {
		records[i] = r.Copy()
	}
	return &SeqSet{
		Records:   records,
		Alphabet:  s.Alphabet,
		OutFormat: s.OutFormat,
	}
}

// Get returns the record with the passed id.
func (s *SeqSet) Get(id string) (*Record, bool) {
	for _, r := range s.Records {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// IDs returns the record ids in set order.
func (s *SeqSet) IDs() []string {
	ids := make([]string, len(s.Records))
	for i, r := range s.Records {
		ids[i] = r.ID
	}
	return ids
}
