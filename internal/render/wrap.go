// internal/render/wrap.go
package render

import "strings"

// wrapToWidth greedily wraps s into lines whose measured advance stays within
// maxWidth. Explicit newlines are preserved; a single word wider than the
// constraint gets a line of its own rather than being broken mid-word.
// maxWidth <= 0 disables wrapping.
func wrapToWidth(s string, maxWidth float64, measure func(string) float64) []string {
	if maxWidth <= 0 {
		return strings.Split(s, "\n")
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if measure(candidate) <= maxWidth {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}
