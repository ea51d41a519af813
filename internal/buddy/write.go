package buddy

import (
	"fmt"
	"os"
)

// WriteRecords serializes records in the passed format. Alignment
// formats require the records to share one length.
func WriteRecords(records []*Record, alphabet Alphabet, format Format) (string, error) {
	if len(records) == 0 {
		return "", &ValueError{Reason: "no sequences in object"}
	}

	if format.Aligned() {
		block := &AlignmentBlock{Records: records}
		if err := block.validate(); err != nil {
			return "", &ValueError{Reason: fmt.Sprintf(
				"'%s' requires equal-length records: %s", format, err)}
		}
		return writeBlocks([]*AlignmentBlock{block}, alphabet, format)
	}

	switch format {
	case FormatFasta:
		return writeFasta(records), nil
	case FormatGenbank:
		return writeGenbank(records), nil
	case FormatEMBL:
		return writeEMBL(records), nil
	case FormatSeqXML:
		return writeSeqXML(records, alphabet), nil
	case FormatRaw:
		return writeRaw(records), nil
	}
	return "", &FormatError{Reason: fmt.Sprintf("format type '%s' is not recognized/supported", format)}
}

func writeBlocks(blocks []*AlignmentBlock, alphabet Alphabet, format Format) (string, error) {
	switch format {
	case FormatNexus:
		if len(blocks) > 1 {
			return "", &ValueError{Reason: fmt.Sprintf(
				"%d alignments in object, '%s' holds only one (concatenate or split them first)", len(blocks), format)}
		}
		return writeNexus(blocks[0], alphabet), nil
	case FormatPhylip:
		return writePhylip(blocks, true), nil
	case FormatPhylipSS:
		// sequential strict shares the strict writer: full sequences are
		// written on one line, which satisfies both grammars
		return writePhylip(blocks, true), nil
	case FormatPhylipRelaxed, FormatPhylipSR:
		return writePhylip(blocks, false), nil
	case FormatClustal:
		if len(blocks) > 1 {
			return "", &ValueError{Reason: fmt.Sprintf(
				"%d alignments in object, '%s' holds only one (concatenate or split them first)", len(blocks), format)}
		}
		return writeClustal(blocks[0]), nil
	case FormatStockholm:
		return writeStockholm(blocks), nil
	}
	return "", &FormatError{Reason: fmt.Sprintf("format type '%s' is not recognized/supported", format)}
}

// String serializes the set to its output format.
func (s *SeqSet) String() (string, error) {
	return WriteRecords(s.Records, s.Alphabet, s.OutFormat)
}

// WriteFile serializes the set to its output format at path.
func (s *SeqSet) WriteFile(path string) error {
	out, err := s.String()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, []byte(out), 0666); err != nil {
		return fmt.Errorf("failed to write the output: %v", err)
	}
	return nil
}

// String serializes the alignment set to its output format.
func (a *AlignSet) String() (string, error) {
	if len(a.Blocks) == 0 {
		return "", &ValueError{Reason: "no alignments in object"}
	}

	switch a.OutFormat {
	case FormatFasta, FormatGenbank, FormatEMBL, FormatSeqXML, FormatRaw:
		return WriteRecords(a.Records(), a.Alphabet, a.OutFormat)
	}
	return writeBlocks(a.Blocks, a.Alphabet, a.OutFormat)
}

// WriteFile serializes the alignment set to its output format at path.
func (a *AlignSet) WriteFile(path string) error {
	out, err := a.String()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, []byte(out), 0666); err != nil {
		return fmt.Errorf("failed to write the output: %v", err)
	}
	return nil
}
