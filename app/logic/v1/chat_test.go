package v1

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renty-ai/renty-ai/app/core"
	"github.com/renty-ai/renty-ai/pkg/i18n"
	"github.com/renty-ai/renty-ai/pkg/testutils"
	"github.com/renty-ai/renty-ai/pkg/types"
)

var (
	testCoreOnce sync.Once
	testCore     *core.Core
)

// 指标注册只能执行一次，测试共享同一个 core
func newTestCore() *core.Core {
	testCoreOnce.Do(func() {
		testutils.LoadEnv()
		testCore = core.MustSetupCore(core.LoadBaseConfigFromENV())
	})
	return testCore
}

func TestProcessMessageGreeting(t *testing.T) {
	logic := NewChatLogic(context.Background(), newTestCore())

	resp := logic.ProcessMessage(types.ChatMessage{
		Message:  "Hello there!",
		Language: types.LANGUAGE_EN_KEY,
	})

	assert.Equal(t, localizer.Get("en", i18n.CHAT_GREETING), resp.Message)
	assert.Equal(t, types.LANGUAGE_EN_KEY, resp.Language)
	assert.Equal(t, greetingConfidence, resp.Confidence)
	assert.Empty(t, resp.Sources)
	assert.Len(t, resp.Suggestions, len(i18n.GreetingSuggestionKeys))
	for _, s := range resp.Suggestions {
		assert.Equal(t, suggestionIntentRental, s.Intent)
		assert.Equal(t, greetingSuggestionConfidence, s.Confidence)
	}
	assert.NotEmpty(t, resp.SessionID)

	session, ok := newTestCore().Sessions().Get(resp.SessionID)
	assert.True(t, ok)
	assert.Len(t, session.History, 2)
	assert.Equal(t, types.USER_ROLE_KEY, session.History[0].Role)
	assert.Equal(t, types.ASSISTANT_ROLE_KEY, session.History[1].Role)
}

func TestProcessMessageChineseAutoDetect(t *testing.T) {
	logic := NewChatLogic(context.Background(), newTestCore())

	resp := logic.ProcessMessage(types.ChatMessage{
		Message:  "你好",
		Language: types.LANGUAGE_AUTO_KEY,
	})

	assert.Equal(t, types.LANGUAGE_ZH_KEY, resp.Language)
	assert.Equal(t, localizer.Get("zh-CN", i18n.CHAT_GREETING), resp.Message)
}

func TestProcessMessageRentalQuestion(t *testing.T) {
	logic := NewChatLogic(context.Background(), newTestCore())

	resp := logic.ProcessMessage(types.ChatMessage{
		Message:  "What documents do I need to rent an apartment",
		Language: types.LANGUAGE_EN_KEY,
	})

	assert.Contains(t, resp.Message, "Proof of income")
	assert.Greater(t, resp.Confidence, 0.2)
	assert.NotEmpty(t, resp.Sources)
	assert.LessOrEqual(t, len(resp.Sources), newTestCore().Cfg().Chat.MaxSources)
	assert.Equal(t, "What documents do I need to rent an apartment in NYC?", resp.Sources[0].Title)
	assert.Len(t, resp.Suggestions, len(i18n.GeneralSuggestionKeys))
	for _, s := range resp.Suggestions {
		assert.Equal(t, suggestionIntentGeneral, s.Intent)
		assert.Equal(t, generalSuggestionConfidence, s.Confidence)
	}
}

func TestProcessMessageChineseAnswer(t *testing.T) {
	logic := NewChatLogic(context.Background(), newTestCore())

	resp := logic.ProcessMessage(types.ChatMessage{
		Message: "在纽约租房需要什么文件",
	})

	assert.Equal(t, types.LANGUAGE_ZH_KEY, resp.Language)
	assert.Contains(t, resp.Message, "收入证明")
}

func TestProcessMessageNoResults(t *testing.T) {
	logic := NewChatLogic(context.Background(), newTestCore())

	resp := logic.ProcessMessage(types.ChatMessage{
		Message:  "tell me about quantum physics",
		Language: types.LANGUAGE_EN_KEY,
	})

	assert.Equal(t, localizer.Get("en", i18n.CHAT_NO_RESULTS), resp.Message)
	assert.Equal(t, noResultsConfidence, resp.Confidence)
	assert.Empty(t, resp.Sources)
	assert.Len(t, resp.Suggestions, len(i18n.GeneralSuggestionKeys))
}

func TestProcessMessageSessionContinuity(t *testing.T) {
	logic := NewChatLogic(context.Background(), newTestCore())
	sessionID := "session-continuity-test"

	first := logic.ProcessMessage(types.ChatMessage{
		Message:   "Hello!",
		Language:  types.LANGUAGE_EN_KEY,
		SessionID: sessionID,
	})
	second := logic.ProcessMessage(types.ChatMessage{
		Message:   "How do I avoid rental scams?",
		Language:  types.LANGUAGE_EN_KEY,
		SessionID: sessionID,
	})

	assert.Equal(t, sessionID, first.SessionID)
	assert.Equal(t, sessionID, second.SessionID)

	session, ok := newTestCore().Sessions().Get(sessionID)
	assert.True(t, ok)
	assert.Len(t, session.History, 4)
}

func TestProcessMessageCachesSearchResults(t *testing.T) {
	c := newTestCore()
	logic := NewChatLogic(context.Background(), c)

	query := "How do I set up utilities in my new apartment"
	logic.ProcessMessage(types.ChatMessage{
		Message:  query,
		Language: types.LANGUAGE_EN_KEY,
	})

	cached, err := c.Cache().Get(context.Background(), fmt.Sprintf("search:%s:%s", types.LANGUAGE_EN_KEY, query))
	assert.NoError(t, err)
	assert.NotEmpty(t, cached)
}

func TestProcessMessageUnsupportedLanguage(t *testing.T) {
	logic := NewChatLogic(context.Background(), newTestCore())

	resp := logic.ProcessMessage(types.ChatMessage{
		Message:  "Hello",
		Language: "fr",
	})

	assert.Equal(t, types.LANGUAGE_EN_KEY, resp.Language)
}
