package nlp

import (
	"log/slog"

	"github.com/renty-ai/renty-ai/pkg/types"
	"github.com/renty-ai/renty-ai/pkg/utils"
)

// Detect 判定输入文本语言，出现任意 CJK 统一表意文字（U+4E00-U+9FFF）即视为中文
// 空文本和纯 ASCII 文本返回英文，不输出置信度
func Detect(text string) string {
	for _, r := range text {
		if r >= 0x4E00 && r <= 0x9FFF {
			return types.LANGUAGE_ZH_KEY
		}
	}
	return types.LANGUAGE_EN_KEY
}

// DetectWithLog 同 Detect，附带统计学识别结果做观测对比
func DetectWithLog(text string) string {
	lang := Detect(text)
	slog.Debug("language detected",
		slog.String("language", lang),
		slog.String("whatlang", utils.WhatLang(text)),
	)
	return lang
}
