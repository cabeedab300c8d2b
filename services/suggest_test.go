package services

import "testing"

func TestSuggestPlanCode(t *testing.T) {
	known := []string{"CP", "MAP", "AP"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact match", "MAP", "MAP"},
		{"lowercase", "map", "MAP"},
		{"close typo", "CPP", "CP"},
		{"whitespace", " cp ", "CP"},
		{"no candidates", "xyzq", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestPlanCode(tt.input, known); got != tt.want {
				t.Errorf("SuggestPlanCode(%q) = %q, muốn %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSuggestPlanCodeEmptyKnown(t *testing.T) {
	if got := SuggestPlanCode("CP", nil); got != "" {
		t.Errorf("SuggestPlanCode với danh sách rỗng = %q, muốn rỗng", got)
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("calculateSimilarity của hai chuỗi rỗng = %v, muốn 1.0", got)
	}
	if got := calculateSimilarity("abc", "abc"); got != 1.0 {
		t.Errorf("calculateSimilarity của chuỗi giống nhau = %v, muốn 1.0", got)
	}
	if got := calculateSimilarity("abcd", "wxyz"); got != 0.0 {
		t.Errorf("calculateSimilarity của chuỗi khác hẳn = %v, muốn 0.0", got)
	}
}
