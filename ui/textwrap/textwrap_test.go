package textwrap

import (
	"reflect"
	"testing"
)

// monospace measures every rune as 10 units wide.
func monospace(s string) float32 {
	return float32(len([]rune(s))) * 10
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float32
		want  []string
	}{
		{name: "empty", text: "", width: 100, want: nil},
		{name: "whitespace only", text: "   ", width: 100, want: nil},
		{name: "fits", text: "Josh", width: 200, want: []string{"Josh"}},
		{name: "exact fit", text: "ab cd", width: 50, want: []string{"ab cd"}},
		{name: "breaks at words", text: "one two three four", width: 90, want: []string{"one two", "three", "four"}},
		{name: "long word overflows", text: "github.com is here", width: 50, want: []string{"github.com", "is", "here"}},
		{name: "collapses spaces", text: "a   b\tc", width: 200, want: []string{"a b c"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.text, tc.width, monospace)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Wrap(%q, %v) = %q, want %q", tc.text, tc.width, got, tc.want)
			}
		})
	}
}

func TestWrapRespectsWidth(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	for _, line := range Wrap(text, 120, monospace) {
		if monospace(line) > 120 {
			t.Errorf("line %q is %v wide", line, monospace(line))
		}
	}
}

func TestWidest(t *testing.T) {
	if got := Widest([]string{"ab", "abcd", "a"}, monospace); got != 40 {
		t.Errorf("expected 40, got %v", got)
	}
	if got := Widest(nil, monospace); got != 0 {
		t.Errorf("expected 0 for no lines, got %v", got)
	}
}
