package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/renty-ai/renty-ai/app/core"
	"github.com/renty-ai/renty-ai/app/response"
	"github.com/renty-ai/renty-ai/pkg/i18n"
	"github.com/renty-ai/renty-ai/pkg/nlp"
	"github.com/renty-ai/renty-ai/pkg/types"
	"github.com/renty-ai/renty-ai/pkg/utils"
)

const (
	suggestionIntentRental  = "rental_question"
	suggestionIntentGeneral = "general_info"

	greetingSuggestionConfidence = 0.9
	generalSuggestionConfidence  = 0.7

	greetingConfidence  = 1.0
	noResultsConfidence = 0.1
)

var localizer = i18n.NewLocalizer("en", "zh-CN")

type ChatLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewChatLogic(ctx context.Context, core *core.Core) *ChatLogic {
	return &ChatLogic{
		ctx:  ctx,
		core: core,
	}
}

// ProcessMessage 处理一轮对话，任何内部错误都降级为兜底应答，不向调用方抛出
func (l *ChatLogic) ProcessMessage(msg types.ChatMessage) (result types.ChatResponse) {
	startTime := time.Now()

	sessionID := msg.SessionID
	if sessionID == "" {
		sessionID = utils.GenSessionID()
	}

	language := msg.Language
	if language == "" || language == types.LANGUAGE_AUTO_KEY {
		language = nlp.DetectWithLog(msg.Message)
	}
	if !types.IsSupportedLanguage(language) {
		language = types.LANGUAGE_EN_KEY
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("chat turn recovered", slog.Any("recover", r), slog.String("session_id", sessionID))
			result = l.errorResponse(language, sessionID, startTime)
		}
	}()

	resp, err := l.processTurn(msg.Message, language, sessionID, startTime)
	if err != nil {
		slog.Error("chat turn failed", slog.String("error", err.Error()), slog.String("session_id", sessionID))
		return l.errorResponse(language, sessionID, startTime)
	}

	elapsed := time.Since(startTime).Milliseconds()
	resp.ResponseTimeMs = elapsed
	resp.SessionID = sessionID
	l.core.Stats().RecordQuery(elapsed)
	return resp
}

func (l *ChatLogic) processTurn(text, language, sessionID string, startTime time.Time) (types.ChatResponse, error) {
	session, _ := l.core.Sessions().GetOrCreate(sessionID, language)
	session.History = append(session.History, types.ConversationTurn{
		Role:      types.USER_ROLE_KEY,
		Message:   text,
		Language:  language,
		Timestamp: startTime,
	})

	intent, err := l.core.Classifier().Classify(text, language)
	if err != nil {
		return types.ChatResponse{}, err
	}
	slog.Info("intent classified",
		slog.String("intent", intent.Kind.String()),
		slog.Float64("confidence", intent.Confidence),
		slog.String("session_id", sessionID),
	)
	l.core.Metrics().ChatIntentInc(intent.Kind.String(), language)

	var resp types.ChatResponse
	switch intent.Kind {
	case types.INTENT_GREETING:
		resp = l.handleGreeting(language)
	case types.INTENT_RENTAL_QUESTION:
		resp, err = l.handleRentalQuestion(text, language, intent)
	case types.INTENT_UNIVERSITY_INFO:
		resp, err = l.handleUniversityQuestion(text, language, intent)
	case types.INTENT_LOCATION_QUERY:
		resp, err = l.handleLocationQuestion(text, language, intent)
	case types.INTENT_GENERAL_QUERY:
		resp, err = l.handleGeneralQuery(text, language, intent)
	default:
		resp, err = l.handleGeneralQuery(text, language, intent)
	}
	if err != nil {
		return types.ChatResponse{}, err
	}

	session.History = append(session.History, types.ConversationTurn{
		Role:       types.ASSISTANT_ROLE_KEY,
		Message:    resp.Message,
		Language:   resp.Language,
		Confidence: resp.Confidence,
		Timestamp:  time.Now(),
	})
	session.LastActivity = time.Now()
	l.core.Sessions().Put(sessionID, session)
	l.core.Metrics().SetActiveSessions(l.core.Sessions().Count())

	return resp, nil
}

// handleGreeting 问候走模板，不做检索
func (l *ChatLogic) handleGreeting(language string) types.ChatResponse {
	locale := response.LangToLocale(language)
	return types.ChatResponse{
		Message:     localizer.Get(locale, i18n.CHAT_GREETING),
		Language:    language,
		Confidence:  greetingConfidence,
		Sources:     []types.Source{},
		Suggestions: l.buildSuggestions(locale, i18n.GreetingSuggestionKeys, suggestionIntentRental, greetingSuggestionConfidence),
	}
}

// 各专项意图目前共用知识检索路径，保留独立入口方便后续差异化
func (l *ChatLogic) handleRentalQuestion(text, language string, intent types.Intent) (types.ChatResponse, error) {
	return l.handleGeneralQuery(text, language, intent)
}

func (l *ChatLogic) handleUniversityQuestion(text, language string, intent types.Intent) (types.ChatResponse, error) {
	return l.handleGeneralQuery(text, language, intent)
}

func (l *ChatLogic) handleLocationQuestion(text, language string, intent types.Intent) (types.ChatResponse, error) {
	return l.handleGeneralQuery(text, language, intent)
}

func (l *ChatLogic) handleGeneralQuery(text, language string, intent types.Intent) (types.ChatResponse, error) {
	results, err := l.searchWithCache(text, language)
	if err != nil {
		return types.ChatResponse{}, err
	}
	l.core.Metrics().ObserveSearchResultSize(language, len(results))

	locale := response.LangToLocale(language)
	if len(results) == 0 {
		return types.ChatResponse{
			Message:     localizer.Get(locale, i18n.CHAT_NO_RESULTS),
			Language:    language,
			Confidence:  noResultsConfidence,
			Sources:     []types.Source{},
			Suggestions: l.buildSuggestions(locale, i18n.GeneralSuggestionKeys, suggestionIntentGeneral, generalSuggestionConfidence),
		}, nil
	}

	best := results[0]
	message := l.localizedContent(best, language)
	if message == "" {
		message = localizer.Get(locale, i18n.CHAT_CLARIFY)
	}

	maxSources := l.core.Cfg().Chat.MaxSources
	if maxSources > len(results) {
		maxSources = len(results)
	}
	sources := lo.Map(results[:maxSources], func(item types.SearchResult, _ int) types.Source {
		return types.Source{
			Title:          item.Title,
			TitleZH:        item.TitleZH,
			ContentSnippet: utils.TruncateSnippet(l.localizedContent(item, language), l.core.Cfg().Chat.SnippetLength),
			RelevanceScore: item.Score,
			DocumentType:   item.DocumentType,
			Topic:          item.Topic,
		}
	})

	return types.ChatResponse{
		Message:     message,
		Language:    language,
		Confidence:  best.Score,
		Sources:     sources,
		Suggestions: l.buildSuggestions(locale, i18n.GeneralSuggestionKeys, suggestionIntentGeneral, generalSuggestionConfidence),
	}, nil
}

// searchWithCache 检索结果按 (语言, 原文) 维度缓存
func (l *ChatLogic) searchWithCache(text, language string) ([]types.SearchResult, error) {
	cacheKey := fmt.Sprintf("search:%s:%s", language, text)
	if cached, err := l.core.Cache().Get(l.ctx, cacheKey); err == nil && cached != "" {
		var results []types.SearchResult
		if err := json.Unmarshal([]byte(cached), &results); err == nil {
			return results, nil
		}
	}

	results, err := l.core.FAQStore().Search(l.ctx, text, language, l.core.Cfg().Chat.MaxSearchResults, nil)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(results); err == nil {
		ttl := time.Duration(l.core.Cfg().Chat.CacheTTLSeconds) * time.Second
		if err := l.core.Cache().SetEx(l.ctx, cacheKey, string(raw), ttl); err != nil {
			slog.Warn("failed to cache search results", slog.String("error", err.Error()))
		}
	}
	return results, nil
}

// localizedContent 中文会话优先取中文答案，条目缺译文时尝试翻译，最后退回英文
func (l *ChatLogic) localizedContent(result types.SearchResult, language string) string {
	if language != types.LANGUAGE_ZH_KEY {
		return result.Content
	}
	if result.ContentZH != "" {
		return result.ContentZH
	}
	if translated, err := l.core.Translator().Translate(l.ctx, result.Content, language); err == nil && translated != "" {
		return translated
	}
	return result.Content
}

func (l *ChatLogic) buildSuggestions(locale string, keys []string, intentLabel string, confidence float64) []types.Suggestion {
	return lo.Map(keys, func(key string, _ int) types.Suggestion {
		return types.Suggestion{
			Text:       localizer.Get(locale, key),
			Intent:     intentLabel,
			Confidence: confidence,
		}
	})
}

func (l *ChatLogic) errorResponse(language, sessionID string, startTime time.Time) types.ChatResponse {
	locale := response.LangToLocale(language)
	return types.ChatResponse{
		Message:        localizer.Get(locale, i18n.CHAT_PROCESS_FAILED),
		Language:       language,
		Confidence:     0,
		Sources:        []types.Source{},
		Suggestions:    []types.Suggestion{},
		SessionID:      sessionID,
		ResponseTimeMs: time.Since(startTime).Milliseconds(),
	}
}
