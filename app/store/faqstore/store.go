package faqstore

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/renty-ai/renty-ai/pkg/errors"
	"github.com/renty-ai/renty-ai/pkg/i18n"
	"github.com/renty-ai/renty-ai/pkg/types"
)

const (
	questionScore   = 0.8
	answerScore     = 0.6
	keywordScore    = 0.4
	questionZHScore = 0.9
	answerZHScore   = 0.7

	minScoreThreshold = 0.2
)

// FAQStore 内存知识库，MustSetup 时从种子数据装载，运行期只读
// 条目顺序即装载顺序，检索打分持平时按该顺序输出
type FAQStore struct {
	entries     []types.KnowledgeEntry
	topics      map[string]types.TopicCategory
	topicOrder  []string
	initialized bool
}

func MustSetup() *FAQStore {
	s := &FAQStore{
		topics: make(map[string]types.TopicCategory),
	}
	s.entries = seedEntries()
	s.buildTopics()
	s.initialized = true

	slog.Info("faq store initialized",
		slog.Int("entries", len(s.entries)),
		slog.Int("topics", len(s.topics)),
	)
	return s
}

// SearchFilters 检索过滤条件，零值表示不过滤
type SearchFilters struct {
	Topic string
}

// Search 关键词重合度检索，得分降序返回，最多 maxResults 条
// 打分规则是累加的：
//   - 查询串是问题子串 +0.8，是答案子串 +0.6
//   - 条目关键词是查询串的子串，每个 +0.4（方向与上面相反，刻意保留）
//   - 中文查询额外比对中文问题 +0.9、中文答案 +0.7
//
// 关键词加分只看主关键词表，keywords_zh 是条目的展示数据，不参与打分
//
// 得分不超过 0.2 的条目丢弃。内部异常不向上抛，降级为空结果
func (s *FAQStore) Search(ctx context.Context, query, language string, maxResults int, filters *SearchFilters) (results []types.SearchResult, err error) {
	if !s.initialized {
		return nil, errors.New("faqstore.Search", i18n.ERROR_UNINITIALIZED, nil)
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("faq search recovered", slog.Any("recover", r), slog.String("query", query))
			results = nil
			err = nil
		}
	}()

	queryLower := strings.ToLower(query)

	for _, entry := range s.entries {
		if filters != nil && filters.Topic != "" && entry.Topic != filters.Topic {
			continue
		}

		score := 0.0
		if strings.Contains(strings.ToLower(entry.Question), queryLower) {
			score += questionScore
		}
		if strings.Contains(strings.ToLower(entry.Answer), queryLower) {
			score += answerScore
		}
		for _, keyword := range entry.Keywords {
			if strings.Contains(queryLower, strings.ToLower(keyword)) {
				score += keywordScore
			}
		}
		if language == types.LANGUAGE_ZH_KEY {
			if entry.QuestionZH != "" && strings.Contains(strings.ToLower(entry.QuestionZH), queryLower) {
				score += questionZHScore
			}
			if entry.AnswerZH != "" && strings.Contains(strings.ToLower(entry.AnswerZH), queryLower) {
				score += answerZHScore
			}
		}

		if score > minScoreThreshold {
			results = append(results, types.SearchResult{
				ID:           entry.ID,
				Title:        entry.Question,
				TitleZH:      entry.QuestionZH,
				Content:      entry.Answer,
				ContentZH:    entry.AnswerZH,
				Score:        score,
				Topic:        entry.Topic,
				DocumentType: types.DOCUMENT_TYPE_FAQ,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if maxResults < 0 {
		maxResults = 0
	}
	if maxResults < len(results) {
		results = results[:maxResults]
	}
	return results, nil
}

// GetTopics 返回派生出的主题聚合，顺序固定
func (s *FAQStore) GetTopics() []types.TopicCategory {
	result := make([]types.TopicCategory, 0, len(s.topicOrder))
	for _, name := range s.topicOrder {
		result = append(result, s.topics[name])
	}
	return result
}

// GetStats 知识库统计，top topics 按条目数降序取前 5
func (s *FAQStore) GetStats() types.KnowledgeStats {
	counts := make([]types.TopicCount, 0, len(s.topicOrder))
	for _, name := range s.topicOrder {
		counts = append(counts, types.TopicCount{
			Name:  s.topics[name].Name,
			Count: s.topics[name].EntryCount,
		})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > 5 {
		counts = counts[:5]
	}

	return types.KnowledgeStats{
		TotalEntries: len(s.entries),
		TotalTopics:  len(s.topics),
		TopTopics:    counts,
	}
}

func (s *FAQStore) TotalEntries() int {
	return len(s.entries)
}

// buildTopics 按条目的 topic 字段聚合主题，只有种子里出现过的主题会被建出
func (s *FAQStore) buildTopics() {
	counts := make(map[string]int)
	for _, entry := range s.entries {
		counts[entry.Topic]++
	}

	for _, def := range topicDefinitions() {
		count, ok := counts[def.key]
		if !ok {
			continue
		}
		category := def.category
		category.EntryCount = count
		s.topics[def.key] = category
		s.topicOrder = append(s.topicOrder, def.key)
	}
}
