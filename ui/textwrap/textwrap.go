// Package textwrap breaks label text into lines that fit a box.
package textwrap

import "strings"

// Measure returns the drawn width of s.
type Measure func(s string) float32

// Wrap splits text at word boundaries into lines no wider than maxWidth.
// A single word wider than maxWidth gets a line of its own and overflows.
func Wrap(text string, maxWidth float32, measure Measure) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// Widest returns the largest measured width among lines.
func Widest(lines []string, measure Measure) float32 {
	var widest float32
	for _, l := range lines {
		if w := measure(l); w > widest {
			widest = w
		}
	}
	return widest
}
