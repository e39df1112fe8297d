package utils

import (
	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

var whatLangOpts = whatlanggo.Options{
	Whitelist: map[whatlanggo.Lang]bool{
		whatlanggo.Eng: true,
		whatlanggo.Cmn: true,
	},
}

// WhatLang 统计学语言识别结果，仅用于日志观测
// 业务侧的语言判定走 nlp.Detect，两者结论不要求一致
func WhatLang(query string) string {
	info := whatlanggo.DetectWithOptions(query, whatLangOpts)
	return info.Lang.String()
}

// Language Accept-Language 头里解析出的语言与权重
type Language struct {
	Tag    string
	Weight float32
}

// ParseAcceptLanguage 解析 Accept-Language 头，结果按权重从高到低排列
func ParseAcceptLanguage(header string) []Language {
	tags, weights, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	languages := make([]Language, 0, len(tags))
	for i, tag := range tags {
		languages = append(languages, Language{Tag: tag.String(), Weight: weights[i]})
	}
	return languages
}
