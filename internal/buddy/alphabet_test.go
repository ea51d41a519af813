package buddy

import "testing"

func TestGuessAlphabet(t *testing.T) {
	type args struct {
		seqs []string
	}
	tests := []struct {
		name string
		args args
		want Alphabet
	}{
		{
			"dna",
			args{seqs: []string{"ATGCTCGTAGCT", "atgcatgc"}},
			AlphabetDNA,
		},
		{
			"rna",
			args{seqs: []string{"AUGCUCGUAGCU"}},
			AlphabetRNA,
		},
		{
			"protein",
			args{seqs: []string{"MLKPQRSEFLIWPPQ"}},
			AlphabetProtein,
		},
		{
			"gapped dna",
			args{seqs: []string{"ATG--CTC...GTA"}},
			AlphabetDNA,
		},
		{
			"ambiguity codes still read as dna",
			args{seqs: []string{"ATGCNNRYATGCATGC"}},
			AlphabetDNA,
		},
		{
			"empty",
			args{seqs: []string{""}},
			AlphabetUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]*Record, len(tt.args.seqs))
			for i, seq := range tt.args.seqs {
				records[i] = &Record{Seq: seq}
			}
			if got := GuessAlphabet(records); got != tt.want {
				t.Errorf("GuessAlphabet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAlphabet(t *testing.T) {
	type args struct {
		name string
	}
	tests := []struct {
		name string
		args args
		want Alphabet
	}{
		{"dna", args{name: "dna"}, AlphabetDNA},
		{"rna upper", args{name: " RNA "}, AlphabetRNA},
		{"protein long", args{name: "protein"}, AlphabetProtein},
		{"protein short", args{name: "pep"}, AlphabetProtein},
		{"unrecognized", args{name: "quaternary"}, AlphabetUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAlphabet(tt.args.name); got != tt.want {
				t.Errorf("ParseAlphabet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseStrand(t *testing.T) {
	type args struct {
		val string
	}
	tests := []struct {
		name      string
		args      args
		want      Strand
		wantKnown bool
	}{
		{"plus", args{val: "+"}, StrandFwd, true},
		{"minus one", args{val: "-1"}, StrandRev, true},
		{"empty", args{val: ""}, StrandNone, true},
		{"dot", args{val: "."}, StrandNone, true},
		{"garbage", args{val: "sideways"}, StrandNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := ParseStrand(tt.args.val)
			if got != tt.want || known != tt.wantKnown {
				t.Errorf("ParseStrand() = %v, %v, want %v, %v", got, known, tt.want, tt.wantKnown)
			}
		})
	}
}
