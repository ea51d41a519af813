package buddy

import "fmt"

// AlignmentBlock is a set of same-length, column-aligned records.
type AlignmentBlock struct {
	Records []*Record
}

// Len returns the column count of the block (all records are guaranteed
// to share it).
func (b *AlignmentBlock) Len() int {
	if len(b.Records) == 0 {
		return 0
	}
	return b.Records[0].Len()
}

// Copy returns a deep copy of the block.
func (b *AlignmentBlock) Copy() *AlignmentBlock {
	records := make([]*Record, len(b.Records))
	for i, r := range b.Records {
		records[i] = r.Copy()
	}
	return &AlignmentBlock{Records: records}
}

// validate checks the equal-length invariant.
func (b *AlignmentBlock) validate() error {
	for _, r := range b.Records {
		if r.Len() != b.Len() {
			return &FormatError{Reason: fmt.Sprintf(
				"alignment records differ in length: %s is %d columns, expected %d",
				r.ID, r.Len(), b.Len(),
			)}
		}
	}
	return nil
}

// AlignSet is an ordered list of alignment blocks plus the format the
// set will be serialized back to.
type AlignSet struct {
	Blocks    []*AlignmentBlock
	Alphabet  Alphabet
	OutFormat Format
}

// NewAlignSet builds an alignment set from parsed blocks, enforcing the
// equal-length invariant within each block.
func NewAlignSet(blocks []*AlignmentBlock, format Format) (*AlignSet, error) {
	var all []*Record
	for _, b := range blocks {
		if err := b.validate(); err != nil {
			return nil, err
		}
		all = append(all, b.Records...)
	}

	a := &AlignSet{
		Blocks:    blocks,
		Alphabet:  GuessAlphabet(all),
		OutFormat: format,
	}
	for _, r := range all {
		r.Alphabet = a.Alphabet
	}
	return a, nil
}

// Copy returns a deep copy of the alignment set.
func (a *AlignSet) Copy() *AlignSet {
	blocks := make([]*AlignmentBlock, len(a.Blocks))
	for i, b := range a.Blocks {
		blocks[i] = b.Copy()
	}
	return &AlignSet{
		Blocks:    blocks,
		Alphabet:  a.Alphabet,
		OutFormat: a.OutFormat,
	}
}

// Records returns every record across all blocks, in order.
func (a *AlignSet) Records() []*Record {
	var all []*Record
	for _, b := range a.Blocks {
		all = append(all, b.Records...)
	}
	return all
}

// Lengths returns the column count of each block.
func (a *AlignSet) Lengths() []int {
	lengths := make([]int, len(a.Blocks))
	for i, b := range a.Blocks {
		lengths[i] = b.Len()
	}
	return lengths
}
