package buddy

import (
	"fmt"
	"io"
	"os"
)

// ReadRecords parses text in the passed format to a flat record list.
// Alignment formats are read too: their gaps are kept so the records
// can round-trip.
func ReadRecords(text string, format Format) ([]*Record, error) {
	switch format {
	case FormatFasta:
		return readFasta(text)
	case FormatGenbank:
		return readGenbank(text, false)
	case FormatEMBL:
		return readGenbank(text, true)
	case FormatSeqXML:
		return readSeqXML(text)
	case FormatRaw:
		return readRaw(text)
	case FormatNexus, FormatPhylip, FormatPhylipRelaxed, FormatPhylipSS,
		FormatPhylipSR, FormatClustal, FormatStockholm:
		blocks, err := ReadBlocks(text, format)
		if err != nil {
			return nil, err
		}
		var records []*Record
		for _, b := range blocks {
			records = append(records, b.Records...)
		}
		return records, nil
	}
	return nil, &FormatError{Reason: fmt.Sprintf("format type '%s' is not recognized/supported", format)}
}

// ReadBlocks parses text in an alignment format to alignment blocks.
// Unaligned formats are accepted when their records happen to share one
// length (an aligned FASTA, for example).
func ReadBlocks(text string, format Format) ([]*AlignmentBlock, error) {
	switch format {
	case FormatNexus:
		return readNexus(text)
	case FormatPhylip:
		return readPhylip(text, true, false)
	case FormatPhylipRelaxed:
		return readPhylip(text, false, false)
	case FormatPhylipSS:
		return readPhylip(text, true, true)
	case FormatPhylipSR:
		return readPhylip(text, false, true)
	case FormatClustal:
		return readClustal(text)
	case FormatStockholm:
		return readStockholm(text)
	}

	records, err := ReadRecords(text, format)
	if err != nil {
		return nil, err
	}
	block := &AlignmentBlock{Records: records}
	if err := block.validate(); err != nil {
		return nil, err
	}
	return []*AlignmentBlock{block}, nil
}

// NewSeqSetFrom resolves the input's format (unless one is forced) and
// parses it to a SeqSet. origin describes the input for error messages.
func NewSeqSetFrom(text, origin string, forced Format) (*SeqSet, error) {
	format := forced
	if format == "" {
		var err error
		if format, err = GuessText(text, origin); err != nil {
			return nil, err
		}
	}
	if format == FormatEmpty {
		return &SeqSet{OutFormat: FormatFasta}, nil
	}

	records, err := ReadRecords(text, format)
	if err != nil {
		return nil, err
	}
	return NewSeqSet(records, format)
}

// NewAlignSetFrom resolves the input's format (unless one is forced)
// and parses it to an AlignSet.
func NewAlignSetFrom(text, origin string, forced Format) (*AlignSet, error) {
	format := forced
	if format == "" {
		var err error
		if format, err = GuessText(text, origin); err != nil {
			return nil, err
		}
	}
	if format == FormatEmpty {
		return &AlignSet{OutFormat: FormatClustal}, nil
	}

	blocks, err := ReadBlocks(text, format)
	if err != nil {
		return nil, err
	}
	return NewAlignSet(blocks, format)
}

// ReadFile reads and parses a sequence file from the local fs.
func ReadFile(path string, forced Format) (*SeqSet, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %s", err)
	}
	return NewSeqSetFrom(string(dat), path, forced)
}

// ReadAlignFile reads and parses an alignment file from the local fs.
func ReadAlignFile(path string, forced Format) (*AlignSet, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %s", err)
	}
	return NewAlignSetFrom(string(dat), path, forced)
}

// ReadStream parses an open stream, rewinding it afterwards so the
// caller can re-read from the start.
func ReadStream(r io.ReadSeeker, forced Format) (*SeqSet, error) {
	dat, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input stream: %s", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind input stream: %s", err)
	}
	return NewSeqSetFrom(string(dat), "input file-like object", forced)
}
