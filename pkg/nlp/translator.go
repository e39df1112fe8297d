package nlp

import "context"

// Translator 可选的翻译能力，知识库内容已预先双语维护
// 接入真实翻译服务时替换默认实现即可，编排层契约不变
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

type NoopTranslator struct{}

// Translate 返回空串表示无翻译可用，调用方继续使用预置的双语内容
func (NoopTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	return "", nil
}
