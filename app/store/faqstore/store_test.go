package faqstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renty-ai/renty-ai/pkg/types"
)

var ctx = context.Background()

func TestSearchQuestionSubstring(t *testing.T) {
	s := MustSetup()

	results, err := s.Search(ctx, "documents do I need to rent", types.LANGUAGE_EN_KEY, 5, nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, results)
	assert.Equal(t, "faq_1", results[0].ID)
	assert.GreaterOrEqual(t, results[0].Score, 0.8)
	assert.Equal(t, types.DOCUMENT_TYPE_FAQ, results[0].DocumentType)
}

func TestSearchKeywordDirection(t *testing.T) {
	s := MustSetup()

	// 关键词方向是 keyword ⊂ query：查询包含多个关键词时逐个累加
	results, err := s.Search(ctx, "my income documents and guarantor for rent", types.LANGUAGE_EN_KEY, 5, nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, results)
	assert.Equal(t, "faq_1", results[0].ID)
	// documents/rent/income/guarantor 四个关键词，0.4 * 4
	assert.InDelta(t, 1.6, results[0].Score, 1e-9)
}

func TestSearchChineseScoring(t *testing.T) {
	s := MustSetup()

	results, err := s.Search(ctx, "租房需要什么文件", types.LANGUAGE_ZH_KEY, 5, nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, results)
	assert.Equal(t, "faq_1", results[0].ID)
	// 只有中文问题子串命中：恰好 +0.9，keywords_zh 不参与打分
	assert.InDelta(t, 0.9, results[0].Score, 1e-9)
}

func TestSearchChineseFieldIgnoredForEnglish(t *testing.T) {
	s := MustSetup()

	zhResults, err := s.Search(ctx, "隔断", types.LANGUAGE_ZH_KEY, 5, nil)
	assert.NoError(t, err)
	enResults, err := s.Search(ctx, "隔断", types.LANGUAGE_EN_KEY, 5, nil)
	assert.NoError(t, err)

	assert.NotEmpty(t, zhResults)
	assert.NotEmpty(t, enResults)
	// 中文查询在 zh 语境下额外拿到中文字段加分
	assert.Greater(t, zhResults[0].Score, enResults[0].Score)
}

func TestSearchNoMatch(t *testing.T) {
	s := MustSetup()

	results, err := s.Search(ctx, "quantum blockchain dinosaur", types.LANGUAGE_EN_KEY, 5, nil)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchMaxResults(t *testing.T) {
	s := MustSetup()

	// "rent" 是多个答案的子串
	results, err := s.Search(ctx, "rent", types.LANGUAGE_EN_KEY, 2, nil)
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(results), 2)

	none, err := s.Search(ctx, "rent", types.LANGUAGE_EN_KEY, 0, nil)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchOrderedByScore(t *testing.T) {
	s := MustSetup()

	results, err := s.Search(ctx, "rent", types.LANGUAGE_EN_KEY, 10, nil)
	assert.NoError(t, err)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearchIdempotent(t *testing.T) {
	s := MustSetup()

	first, err := s.Search(ctx, "apartment", types.LANGUAGE_EN_KEY, 5, nil)
	assert.NoError(t, err)
	second, err := s.Search(ctx, "apartment", types.LANGUAGE_EN_KEY, 5, nil)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSearchTopicFilter(t *testing.T) {
	s := MustSetup()

	results, err := s.Search(ctx, "rent", types.LANGUAGE_EN_KEY, 10, &SearchFilters{Topic: "utilities"})
	assert.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, "utilities", r.Topic)
	}
}

func TestSearchUninitialized(t *testing.T) {
	var s FAQStore

	_, err := s.Search(ctx, "rent", types.LANGUAGE_EN_KEY, 5, nil)
	assert.Error(t, err)
}

func TestGetTopics(t *testing.T) {
	s := MustSetup()

	topics := s.GetTopics()
	assert.NotEmpty(t, topics)

	total := 0
	for _, topic := range topics {
		assert.Greater(t, topic.EntryCount, 0)
		total += topic.EntryCount
	}
	assert.Equal(t, s.TotalEntries(), total)
}

func TestGetStats(t *testing.T) {
	s := MustSetup()

	stats := s.GetStats()
	assert.Equal(t, 6, stats.TotalEntries)
	assert.Equal(t, len(s.GetTopics()), stats.TotalTopics)
	assert.LessOrEqual(t, len(stats.TopTopics), 5)
	for i := 1; i < len(stats.TopTopics); i++ {
		assert.GreaterOrEqual(t, stats.TopTopics[i-1].Count, stats.TopTopics[i].Count)
	}
	// rental_process 种子条目最多，应排在最前
	assert.Equal(t, "Rental Process", stats.TopTopics[0].Name)
}
