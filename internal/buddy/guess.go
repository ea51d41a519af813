package buddy

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// GuessFile classifies the file at path, or returns a GuessError whose
// origin names the file.
func GuessFile(path string) (Format, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %s", err)
	}
	return GuessText(string(dat), path)
}

// GuessStream classifies an open stream. The stream is rewound to its
// origin after probing, whether or not classification succeeded, so the
// caller can re-read it from the start.
func GuessStream(r io.ReadSeeker) (format Format, err error) {
	defer func() {
		if _, serr := r.Seek(0, io.SeekStart); serr != nil && err == nil {
			err = fmt.Errorf("failed to rewind input stream: %s", serr)
		}
	}()

	dat, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input stream: %s", err)
	}
	return GuessText(string(dat), "input file-like object")
}

// GuessText classifies raw text as one of the supported formats, as
// FormatEmpty for blank input, or fails with a GuessError naming the
// origin. Each candidate's structural signature is probed in a fixed
// priority order and the winner is confirmed with a full parse; a clean
// parse that yields zero records classifies as an empty file.
func GuessText(text, origin string) (Format, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return FormatEmpty, nil
	}

	for _, f := range candidateFormats(trimmed) {
		records, err := ReadRecords(text, f)
		if err != nil {
			continue
		}
		if len(records) == 0 {
			return FormatEmpty, nil
		}
		return f, nil
	}

	return "", &GuessError{Origin: origin, Reason: "text matches no supported format"}
}

// candidateFormats returns the formats whose structural signature the
// text carries, in probe priority order.
func candidateFormats(trimmed string) []Format {
	switch {
	case strings.HasPrefix(trimmed, "#NEXUS"):
		return []Format{FormatNexus}

	case strings.HasPrefix(trimmed, "# STOCKHOLM"):
		return []Format{FormatStockholm}

	case strings.HasPrefix(strings.ToUpper(trimmed), "CLUSTAL"):
		return []Format{FormatClustal}

	case strings.HasPrefix(trimmed, "LOCUS"):
		return []Format{FormatGenbank}

	case strings.HasPrefix(trimmed, "ID "):
		return []Format{FormatEMBL}

	case strings.HasPrefix(trimmed, "<?xml") || strings.HasPrefix(trimmed, "<seqXML"):
		return []Format{FormatSeqXML}

	case phylipHeaderRegex.MatchString(firstLine(trimmed)):
		// the phylip variants share a header; try each grammar, strict
		// before relaxed, interleaved before sequential
		return []Format{FormatPhylip, FormatPhylipRelaxed, FormatPhylipSS, FormatPhylipSR}

	case strings.HasPrefix(trimmed, ">"):
		return []Format{FormatFasta}
	}

	return nil
}

func firstLine(text string) string {
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		return text[:nl]
	}
	return text
}
