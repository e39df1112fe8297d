package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renty-ai/renty-ai/pkg/types"
)

func TestDetectChinese(t *testing.T) {
	cases := []string{
		"租房需要什么文件？",
		"how much is 押金",
		"曼哈顿",
	}
	for _, text := range cases {
		assert.Equal(t, types.LANGUAGE_ZH_KEY, Detect(text), text)
	}
}

func TestDetectEnglish(t *testing.T) {
	cases := []string{
		"Hello",
		"What documents do I need to rent an apartment?",
		"",
		"12345 !?",
	}
	for _, text := range cases {
		assert.Equal(t, types.LANGUAGE_EN_KEY, Detect(text), text)
	}
}

func TestDetectNonCJKUnicode(t *testing.T) {
	// 非中文的非 ASCII 文本同样落回英文
	assert.Equal(t, types.LANGUAGE_EN_KEY, Detect("Привет"))
	assert.Equal(t, types.LANGUAGE_EN_KEY, Detect("café"))
}
