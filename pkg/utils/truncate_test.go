package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateSnippet(t *testing.T) {
	short := "short content"
	assert.Equal(t, short, TruncateSnippet(short, 150))

	long := strings.Repeat("a", 200)
	got := TruncateSnippet(long, 150)
	assert.Equal(t, strings.Repeat("a", 150)+"...", got)
}

func TestTruncateSnippetChinese(t *testing.T) {
	content := strings.Repeat("租", 10)
	got := TruncateSnippet(content, 4)
	assert.Equal(t, "租租租租...", got)
}
