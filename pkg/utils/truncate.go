package utils

import "strings"

// TruncateSnippet 按字符数截断引用摘要，超长时补省略号
// 中文内容按 rune 截断，避免截出半个字符
func TruncateSnippet(content string, maxLength int) string {
	runes := []rune(content)
	if len(runes) <= maxLength {
		return content
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}
