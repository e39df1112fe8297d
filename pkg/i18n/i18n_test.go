package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLang(t *testing.T) {
	l := NewLocalizer("zh-CN", "en")

	t.Log(l.Get("en", CHAT_GREETING))
	t.Log(l.Get("zh-CN", CHAT_GREETING))

	assert.NotEqual(t, CHAT_GREETING, l.Get("en", CHAT_GREETING))
	assert.NotEqual(t, l.Get("en", CHAT_GREETING), l.Get("zh-CN", CHAT_GREETING))
}

func TestUnknownLangFallsBackToKey(t *testing.T) {
	l := NewLocalizer("en")
	assert.Equal(t, CHAT_NO_RESULTS, l.Get("fr", CHAT_NO_RESULTS))
}
