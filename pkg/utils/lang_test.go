package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatLang(t *testing.T) {
	en := WhatLang("The quick brown fox jumps over the lazy dog")
	zh := WhatLang("这是一段用来识别语言的中文文本")

	assert.Equal(t, "English", en)
	assert.Equal(t, "Mandarin", zh)
}

func TestParseAcceptLanguage(t *testing.T) {
	res := ParseAcceptLanguage("zh-CN,zh;q=0.9,en-US;q=0.8,en;q=0.7")
	assert.NotEmpty(t, res)
	assert.Contains(t, res[0].Tag, "zh")

	assert.Empty(t, ParseAcceptLanguage(""))
}