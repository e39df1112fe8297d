package v1

import (
	"github.com/gin-gonic/gin"
)

const (
	LANGUAGE_KEY = "language"
)

// InjectLanguage 取中间件解析出的请求语言，没有则返回空串，由调用方决定兜底
func InjectLanguage(c *gin.Context) string {
	if v, ok := c.Get(LANGUAGE_KEY); ok {
		if lang, ok := v.(string); ok {
			return lang
		}
	}
	return ""
}
