package cmd

import (
	"testing"

	"github.com/etiology/BuddySuite/internal/buddy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestOutFormatPrecedence(t *testing.T) {
	type args struct {
		flag     string
		setting  string
		fallback buddy.Format
	}
	tests := []struct {
		name    string
		args    args
		want    buddy.Format
		wantErr bool
	}{
		{
			"the flag wins over settings",
			args{flag: "gb", setting: "nexus", fallback: buddy.FormatFasta},
			buddy.FormatGenbank,
			false,
		},
		{
			"settings back an unset flag",
			args{setting: "phylipr", fallback: buddy.FormatFasta},
			buddy.FormatPhylipRelaxed,
			false,
		},
		{
			"the input format is the last fallback",
			args{fallback: buddy.FormatClustal},
			buddy.FormatClustal,
			false,
		},
		{
			"unrecognized format name",
			args{flag: "quux", fallback: buddy.FormatFasta},
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("out-format", tt.args.setting)
			defer viper.Set("out-format", "")

			testCmd := &cobra.Command{}
			testCmd.Flags().String("out-format", "", "")
			if tt.args.flag != "" {
				if err := testCmd.Flags().Set("out-format", tt.args.flag); err != nil {
					t.Fatal(err)
				}
			}

			p := inputParser{}
			got, err := p.outFormat(testCmd, tt.args.fallback)
			if (err != nil) != tt.wantErr {
				t.Errorf("outFormat() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("outFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForcedFormat(t *testing.T) {
	type args struct {
		flag string
	}
	tests := []struct {
		name    string
		args    args
		want    buddy.Format
		wantErr bool
	}{
		{"unset means detect", args{}, "", false},
		{"alias resolves", args{flag: "gb"}, buddy.FormatGenbank, false},
		{"unrecognized name", args{flag: "quux"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testCmd := &cobra.Command{}
			testCmd.Flags().String("format", "", "")
			if tt.args.flag != "" {
				if err := testCmd.Flags().Set("format", tt.args.flag); err != nil {
					t.Fatal(err)
				}
			}

			p := inputParser{}
			got, err := p.forcedFormat(testCmd)
			if (err != nil) != tt.wantErr {
				t.Errorf("forcedFormat() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("forcedFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}
