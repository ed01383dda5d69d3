package lexicon

import "testing"

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		terms map[string]string
		want  string
	}{
		{
			name:  "no terms",
			text:  "GST लागू है",
			terms: nil,
			want:  "GST लागू है",
		},
		{
			name:  "whole word",
			text:  "GST लागू है",
			terms: map[string]string{"GST": "जी एस टी"},
			want:  "जी एस टी लागू है",
		},
		{
			name:  "not inside a word",
			text:  "GSTIN और GST",
			terms: map[string]string{"GST": "जी एस टी"},
			want:  "GSTIN और जी एस टी",
		},
		{
			name:  "longest term first",
			text:  "New Delhi and New York",
			terms: map[string]string{"New": "Nyu", "New Delhi": "Nayi Dilli"},
			want:  "Nayi Dilli and Nyu York",
		},
		{
			name:  "punctuation boundary",
			text:  "(ISRO), ISRO.",
			terms: map[string]string{"ISRO": "इसरो"},
			want:  "(इसरो), इसरो.",
		},
		{
			name:  "combining marks stay in word",
			text:  "कचरा कचरे",
			terms: map[string]string{"कचर": "X"},
			want:  "कचरा कचरे",
		},
		{
			name:  "replacement not rescanned",
			text:  "AI",
			terms: map[string]string{"AI": "AI AI"},
			want:  "AI AI",
		},
		{
			name:  "empty term ignored",
			text:  "hello",
			terms: map[string]string{"": "x"},
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.text, tt.terms); got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}
