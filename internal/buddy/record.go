package buddy

// Strand is the orientation of a feature on its sequence.
type Strand int8

const (
	// StrandNone is for features without an orientation (or proteins)
	StrandNone Strand = 0

	// StrandFwd is the forward (plus) strand
	StrandFwd Strand = 1

	// StrandRev is the reverse (minus) strand
	StrandRev Strand = -1
)

func (s Strand) String() string {
	switch s {
	case StrandFwd:
		return "+"
	case StrandRev:
		return "-"
	}
	return "."
}

// ParseStrand maps the strand notations seen in flat files to a Strand.
// The second return is false for unrecognized values, which callers
// default to StrandNone with a warning.
func ParseStrand(val string) (Strand, bool) {
	switch val {
	case "+", "1", "fwd", "plus":
		return StrandFwd, true
	case "-", "-1", "rev", "minus":
		return StrandRev, true
	case "", ".", "0", "none":
		return StrandNone, true
	}
	return StrandNone, false
}

// Span is one contiguous half-open interval [Start, End) on a sequence.
type Span struct {
	Start int
	End   int
}

func (Span) location() {}

// Compound is an ordered list of spans making up a spliced location.
type Compound []Span

func (Compound) location() {}

// Location is either a Span or a Compound. Anything else (including a
// nil location) is malformed and rejected with a LocationError by the
// operations that walk locations.
type Location interface {
	location()
}

// spansOf flattens a location to its list of spans. The bool is false
// for malformed locations.
func spansOf(loc Location) ([]Span, bool) {
	switch l := loc.(type) {
	case Span:
		return []Span{l}, true
	case Compound:
		return l, true
	}
	return nil, false
}

// Qualifier is a single key/value annotation on a feature. Keys are not
// unique: a feature may carry several qualifiers with the same key.
type Qualifier struct {
	Key   string
	Value string
}

// Feature is an annotated sub-region of a record.
type Feature struct {
	// Type is the feature's label, ex: "CDS", "misc_feature"
	Type string

	// Location is the feature's position(s) on the sequence
	Location Location

	// Strand the feature is on
	Strand Strand

	// Qualifiers are the feature's key/value annotations
	Qualifiers []Qualifier
}

// Copy returns a deep copy of the feature.
func (f Feature) Copy() Feature {
	c := f
	if comp, ok := f.Location.(Compound); ok {
		spans := make(Compound, len(comp))
		copy(spans, comp)
		c.Location = spans
	}
	if f.Qualifiers != nil {
		c.Qualifiers = make([]Qualifier, len(f.Qualifiers))
		copy(c.Qualifiers, f.Qualifiers)
	}
	return c
}

// Record is one named biological sequence plus its annotations.
type Record struct {
	// ID is the record's identifier, unique within a set
	ID string

	// Seq is the residue symbols (possibly gapped when aligned)
	Seq string

	// Alphabet the symbols are drawn from
	Alphabet Alphabet

	// Description is free text after the id in formats that carry one
	Description string

	// Features annotated on this record
	Features []Feature
}

// Len returns the number of symbols in the record, gaps included.
func (r *Record) Len() int {
	return len(r.Seq)
}

// Copy returns a deep copy of the record.
func (r *Record) Copy() *Record {
	c := *r
	if r.Features != nil {
		c.Features = make([]Feature, len(r.Features))
		for i, f := range r.Features {
			c.Features[i] = f.Copy()
		}
	}
	return &c
}
