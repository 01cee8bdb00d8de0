package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// measureRunes counts runes so the tests stay font-independent.
func measureRunes(s string) float64 {
	return float64(len([]rune(s)))
}

func TestWrapToWidthDisabled(t *testing.T) {
	got := wrapToWidth("سطر أول\nسطر ثان", 0, measureRunes)
	assert.Equal(t, []string{"سطر أول", "سطر ثان"}, got)
}

func TestWrapToWidthGreedy(t *testing.T) {
	got := wrapToWidth("aa bb cc dd", 5, measureRunes)
	assert.Equal(t, []string{"aa bb", "cc dd"}, got)
}

func TestWrapToWidthKeepsExplicitNewlines(t *testing.T) {
	got := wrapToWidth("aa bb\n\ncc", 5, measureRunes)
	assert.Equal(t, []string{"aa bb", "", "cc"}, got)
}

func TestWrapToWidthOverlongWord(t *testing.T) {
	got := wrapToWidth("aa abcdefghij bb", 6, measureRunes)
	assert.Equal(t, []string{"aa", "abcdefghij", "bb"}, got)
}

func TestWrapToWidthArabic(t *testing.T) {
	text := "محاضرة عامة في أساسيات الذكاء الاصطناعي"
	got := wrapToWidth(text, 18, measureRunes)
	for _, line := range got {
		assert.LessOrEqual(t, measureRunes(line), 18.0)
	}
	assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(got, " "))
}
