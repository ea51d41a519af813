package buddy

import "fmt"

// GuessError is returned when an input's format cannot be determined.
// Origin describes where the input came from (file path, raw input, or
// a file-like stream) so the user knows what to fix.
type GuessError struct {
	Origin string
	Reason string
}

func (e *GuessError) Error() string {
	return fmt.Sprintf("GuessError: could not determine format from %s: %s\nTry explicitly setting the format with -f", e.Origin, e.Reason)
}

// AlphabetError is returned when an operation is applied to a sequence
// with the wrong alphabet (e.g. reverse-complement of a protein).
type AlphabetError struct {
	Op       string
	Alphabet Alphabet
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("AlphabetError: %s requires a nucleotide sequence, got %s", e.Op, e.Alphabet)
}

// FormatError is returned for unrecognized format names and for files
// that structurally match a format but violate its grammar.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "FormatError: " + e.Reason
}

// ValueError is returned when an argument value is outside the accepted
// set: an unknown mapping mode, mismatched record counts in list mode,
// an unknown trim heuristic, a range with end < start.
type ValueError struct {
	Reason string
}

func (e *ValueError) Error() string {
	return "ValueError: " + e.Reason
}

// LocationError is returned when a feature's location is structurally
// malformed (neither a span nor a compound list of spans).
type LocationError struct {
	Reason string
}

func (e *LocationError) Error() string {
	return "LocationError: " + e.Reason
}
