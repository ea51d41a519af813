package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/etiology/BuddySuite/config"
	"github.com/etiology/BuddySuite/internal/buddy"
	"github.com/spf13/cobra"
)

// stderr is for diagnostics (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// inputParser contains methods for gathering input text and formats
// from a cobra command's flags and arguments.
type inputParser struct{}

// text returns the raw input plus an origin description for errors.
// Precedence: the --in flag, then a path argument, then a raw-sequence
// argument, then stdin.
func (p *inputParser) text(cmd *cobra.Command, args []string) (text, origin string, err error) {
	if in, _ := cmd.Flags().GetString("in"); in != "" {
		dat, err := os.ReadFile(in)
		if err != nil {
			return "", "", fmt.Errorf("failed to read input file: %s", err)
		}
		return string(dat), in, nil
	}

	if len(args) > 0 {
		if _, serr := os.Stat(args[0]); serr == nil {
			dat, err := os.ReadFile(args[0])
			if err != nil {
				return "", "", fmt.Errorf("failed to read input file: %s", err)
			}
			return string(dat), args[0], nil
		}
		return args[0], "raw input", nil
	}

	dat, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %s", err)
	}
	return string(dat), "stdin", nil
}

// forcedFormat resolves the --format flag, empty meaning "detect".
func (p *inputParser) forcedFormat(cmd *cobra.Command) (buddy.Format, error) {
	name, _ := cmd.Flags().GetString("format")
	if name == "" {
		return "", nil
	}
	return buddy.ParseFormat(name)
}

// outFormat resolves the output format: the --out-format flag, then the
// settings file, then the parsed input format.
func (p *inputParser) outFormat(cmd *cobra.Command, fallback buddy.Format) (buddy.Format, error) {
	name, _ := cmd.Flags().GetString("out-format")
	if name == "" {
		name = config.New().OutFormat
	}
	if name == "" {
		return fallback, nil
	}
	return buddy.ParseFormat(name)
}

// seqSet parses the command's input to a SeqSet.
func (p *inputParser) seqSet(cmd *cobra.Command, args []string) (*buddy.SeqSet, error) {
	text, origin, err := p.text(cmd, args)
	if err != nil {
		return nil, err
	}
	forced, err := p.forcedFormat(cmd)
	if err != nil {
		return nil, err
	}

	set, err := buddy.NewSeqSetFrom(text, origin, forced)
	if err != nil {
		return nil, err
	}
	if set.OutFormat, err = p.outFormat(cmd, set.OutFormat); err != nil {
		return nil, err
	}
	return set, nil
}

// alignSet parses the command's input to an AlignSet.
func (p *inputParser) alignSet(cmd *cobra.Command, args []string) (*buddy.AlignSet, error) {
	text, origin, err := p.text(cmd, args)
	if err != nil {
		return nil, err
	}
	forced, err := p.forcedFormat(cmd)
	if err != nil {
		return nil, err
	}

	set, err := buddy.NewAlignSetFrom(text, origin, forced)
	if err != nil {
		return nil, err
	}
	if set.OutFormat, err = p.outFormat(cmd, set.OutFormat); err != nil {
		return nil, err
	}
	return set, nil
}

// write sends serialized output to the --out file, or stdout.
func (p *inputParser) write(cmd *cobra.Command, output string) error {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := os.WriteFile(out, []byte(output), 0666); err != nil {
			return fmt.Errorf("failed to write the output: %v", err)
		}
		return nil
	}
	fmt.Print(output)
	return nil
}
