package types

const (
	LANGUAGE_EN_KEY   = "en"
	LANGUAGE_ZH_KEY   = "zh"
	LANGUAGE_AUTO_KEY = "auto"
)

// IsSupportedLanguage 判断语言代码是否受支持，"auto" 不算具体语言
func IsSupportedLanguage(lang string) bool {
	return lang == LANGUAGE_EN_KEY || lang == LANGUAGE_ZH_KEY
}

const (
	USER_ROLE_KEY      = "user"
	ASSISTANT_ROLE_KEY = "assistant"
)
