package buddy

import "testing"

func TestParseFormat(t *testing.T) {
	type args struct {
		name string
	}
	tests := []struct {
		name    string
		args    args
		want    Format
		wantErr bool
	}{
		{
			"strict phylip aliases",
			args{name: "phylipis"},
			FormatPhylip,
			false,
		},
		{
			"relaxed phylip aliases",
			args{name: "phylip-interleaved"},
			FormatPhylipRelaxed,
			false,
		},
		{
			"sequential relaxed phylip aliases",
			args{name: "phylips"},
			FormatPhylipSR,
			false,
		},
		{
			"sequential strict phylip aliases",
			args{name: "phylip-sequential-strict"},
			FormatPhylipSS,
			false,
		},
		{
			"genbank shorthand",
			args{name: "gb"},
			FormatGenbank,
			false,
		},
		{
			"case and space insensitive",
			args{name: " FASTA "},
			FormatFasta,
			false,
		},
		{
			"unrecognized alias",
			args{name: "foo"},
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.args.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormatGroups(t *testing.T) {
	groups := map[Format][]string{
		FormatPhylip:        {"phylip", "phylipis", "phylip-strict", "phylip-interleaved-strict"},
		FormatPhylipRelaxed: {"phylipi", "phylip-relaxed", "phylip-interleaved", "phylipr"},
		FormatPhylipSR:      {"phylips", "phylipsr", "phylip-sequential", "phylip-sequential-relaxed"},
		FormatPhylipSS:      {"phylipss", "phylip-sequential-strict"},
	}
	for want, aliases := range groups {
		for _, alias := range aliases {
			got, err := ParseFormat(alias)
			if err != nil {
				t.Errorf("ParseFormat(%q) error = %v", alias, err)
				continue
			}
			if got != want {
				t.Errorf("ParseFormat(%q) = %v, want %v", alias, got, want)
			}
		}
	}
}

func TestParseFormatError(t *testing.T) {
	_, err := ParseFormat("foo")
	if err == nil {
		t.Fatal("ParseFormat() expected an error for an unknown alias")
	}
	if _, ok := err.(*FormatError); !ok {
		t.Errorf("ParseFormat() error = %T, want *FormatError", err)
	}
}

func TestExtension(t *testing.T) {
	exts := map[Format]string{
		FormatFasta:         "fa",
		FormatGenbank:       "gb",
		FormatNexus:         "nex",
		FormatPhylip:        "phy",
		FormatPhylipRelaxed: "phyr",
		FormatStockholm:     "stklm",
	}
	for format, want := range exts {
		if got := Extension(format); got != want {
			t.Errorf("Extension(%v) = %v, want %v", format, got, want)
		}
	}
}
