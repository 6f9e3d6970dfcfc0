package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "", TruncateString("hello", 0), "expected empty string for zero width")
	assert.Equal(t, "hello", TruncateString("hello", 5), "expected no truncation when it fits")
	assert.Equal(t, "hello", TruncateString("hello", 10), "expected no truncation when shorter")
	assert.Equal(t, "..", TruncateString("hello", 2), "expected dots only for tiny width")
	assert.Equal(t, "hello w...", TruncateString("hello world", 10), "expected ellipsis truncation")
}

func TestTruncateString_WideRunes(t *testing.T) {
	// CJK runes occupy two display columns each.
	s := "日本語のテキスト"
	out := TruncateString(s, 8)
	assert.LessOrEqual(t, len([]rune(out)), len([]rune(s)), "expected output not longer than input")
	assert.Contains(t, out, "...", "expected ellipsis on truncated wide text")
}
