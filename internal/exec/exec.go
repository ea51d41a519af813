// Package exec wraps the external multiple-sequence-alignment binaries
// (mafft, muscle, clustalo). Each is invoked synchronously; a missing
// binary or a failed run surfaces as an error, never a retry.
package exec

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/etiology/BuddySuite/internal/buddy"
)

// aligner argument shapes: every tool reads a fasta file and emits an
// aligned fasta on stdout.
var alignerArgs = map[string]func(in string) []string{
	"mafft":    func(in string) []string { return []string{"--auto", "--quiet", in} },
	"muscle":   func(in string) []string { return []string{"-in", in, "-quiet"} },
	"clustalo": func(in string) []string { return []string{"-i", in, "--outfmt", "fasta"} },
}

// Align runs the named external aligner over the set's records and
// parses the emitted alignment.
func Align(tool string, set *buddy.SeqSet) (*buddy.AlignSet, error) {
	argsFor, known := alignerArgs[tool]
	if !known {
		return nil, &buddy.ValueError{Reason: fmt.Sprintf(
			"aligner must be one of mafft, muscle or clustalo, got '%s'", tool)}
	}

	path, err := exec.LookPath(tool)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s on the PATH: %v", tool, err)
	}

	in, err := os.CreateTemp("", "buddy-*.fa")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp input: %v", err)
	}
	defer os.Remove(in.Name())

	fasta, err := buddy.WriteRecords(set.Records, set.Alphabet, buddy.FormatFasta)
	if err != nil {
		return nil, err
	}
	if _, err = in.WriteString(fasta); err != nil {
		return nil, fmt.Errorf("failed to write temp input: %v", err)
	}
	in.Close()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path, argsFor(in.Name())...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err = cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s failed: %v: %s", tool, err, stderr.String())
	}

	aligned, err := buddy.NewAlignSetFrom(stdout.String(), tool+" output", buddy.FormatFasta)
	if err != nil {
		return nil, err
	}
	aligned.OutFormat = set.OutFormat
	if !aligned.OutFormat.Aligned() {
		aligned.OutFormat = buddy.FormatClustal
	}
	return aligned, nil
}
