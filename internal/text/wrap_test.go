package text

import (
	"slices"
	"testing"
)

func TestWrapModeString(t *testing.T) {
	tests := []struct {
		mode WrapMode
		want string
	}{
		{WrapWordChar, "WordChar"},
		{WrapNone, "None"},
		{WrapWord, "Word"},
		{WrapChar, "Char"},
		{WrapMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("WrapMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

// breakIndexes returns the rune indexes before which a break is allowed.
func breakIndexes(s string, mode WrapMode) []int {
	var idx []int
	for i, ok := range breakOpportunities([]rune(s), mode) {
		if ok {
			idx = append(idx, i)
		}
	}
	return idx
}

func TestBreakOpportunities(t *testing.T) {
	tests := []struct {
		name string
		text string
		mode WrapMode
		want []int
	}{
		{"word spaces", "hello big world", WrapWord, []int{6, 10}},
		{"wordchar same as word", "hello big world", WrapWordChar, []int{6, 10}},
		{"double space", "a  b", WrapWord, []int{3}},
		{"hyphen breaks after", "well-known", WrapWord, []int{5}},
		{"sentence punctuation sticks", "yes, no.", WrapWord, []int{5}},
		{"slash splits", "and/or", WrapWord, []int{3}},
		{"no break after open", "(a b)", WrapWord, []int{3}},
		{"ideographs", "中文", WrapWord, []int{1}},
		{"char anywhere", "abc", WrapChar, []int{1, 2}},
		{"char respects brackets", "(a)", WrapChar, nil},
		{"zero width space", "ab\u200bcd", WrapWord, []int{3}},
		{"none", "hello world", WrapNone, nil},
		{"single rune", "a", WrapChar, nil},
		{"empty", "", WrapWord, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := breakIndexes(tt.text, tt.mode); !slices.Equal(got, tt.want) {
				t.Errorf("breakOpportunities(%q, %s) = %v, want %v", tt.text, tt.mode, got, tt.want)
			}
		})
	}
}
