package buddy

import (
	"fmt"
	"strings"
)

// Format is one of the supported flat-text serialization formats.
type Format string

const (
	FormatFasta         Format = "fasta"
	FormatGenbank       Format = "genbank"
	FormatEMBL          Format = "embl"
	FormatNexus         Format = "nexus"
	FormatPhylip        Format = "phylip"         // strict, interleaved
	FormatPhylipRelaxed Format = "phylip-relaxed" // relaxed, interleaved
	FormatPhylipSS      Format = "phylipss"       // strict, sequential
	FormatPhylipSR      Format = "phylipsr"       // relaxed, sequential
	FormatClustal       Format = "clustal"
	FormatStockholm     Format = "stockholm"
	FormatSeqXML        Format = "seqxml"
	FormatRaw           Format = "raw"

	// FormatEmpty classifies blank input. It is a guess result, not a
	// serialization format, and is distinct from a GuessError.
	FormatEmpty Format = "empty file"
)

// formatAliases maps every recognized format name to its canonical tag.
var formatAliases = map[string]Format{
	"fasta": FormatFasta,
	"fa":    FormatFasta,

	"genbank": FormatGenbank,
	"gb":     FormatGenbank,

	"embl": FormatEMBL,

	"nexus": FormatNexus,
	"nex":   FormatNexus,

	"phylip":                    FormatPhylip,
	"phylipis":                  FormatPhylip,
	"phylip-strict":             FormatPhylip,
	"phylip-interleaved-strict": FormatPhylip,

	"phylipi":            FormatPhylipRelaxed,
	"phylipr":            FormatPhylipRelaxed,
	"phylip-relaxed":     FormatPhylipRelaxed,
	"phylip-interleaved": FormatPhylipRelaxed,

	"phylips":                   FormatPhylipSR,
	"phylipsr":                  FormatPhylipSR,
	"phylip-sequential":         FormatPhylipSR,
	"phylip-sequential-relaxed": FormatPhylipSR,

	"phylipss":                 FormatPhylipSS,
	"phylip-sequential-strict": FormatPhylipSS,

	"clustal": FormatClustal,
	"clust":   FormatClustal,

	"stockholm": FormatStockholm,
	"stklm":     FormatStockholm,

	"seqxml": FormatSeqXML,
	"raw":    FormatRaw,
}

// ParseFormat normalizes a format name or alias to its canonical tag.
func ParseFormat(name string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return "", &FormatError{Reason: fmt.Sprintf("format type '%s' is not recognized/supported", name)}
}

// Extension returns the conventional file extension for a format.
func Extension(f Format) string {
	switch f {
	case FormatFasta:
		return "fa"
	case FormatGenbank:
		return "gb"
	case FormatEMBL:
		return "embl"
	case FormatNexus:
		return "nex"
	case FormatPhylip, FormatPhylipSS:
		return "phy"
	case FormatPhylipRelaxed, FormatPhylipSR:
		return "phyr"
	case FormatClustal:
		return "clus"
	case FormatStockholm:
		return "stklm"
	case FormatSeqXML:
		return "xml"
	}
	return "txt"
}

// Aligned reports whether the format can only hold column-aligned,
// equal-length records.
func (f Format) Aligned() bool {
	switch f {
	case FormatNexus, FormatPhylip, FormatPhylipRelaxed, FormatPhylipSS,
		FormatPhylipSR, FormatClustal, FormatStockholm:
		return true
	}
	return false
}
