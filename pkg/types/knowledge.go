package types

const DOCUMENT_TYPE_FAQ = "faq"

// KnowledgeEntry 知识库条目，启动时从种子数据加载，运行期只读
type KnowledgeEntry struct {
	ID         string            `json:"id"`
	Question   string            `json:"question"`
	QuestionZH string            `json:"question_zh,omitempty"`
	Answer     string            `json:"answer"`
	AnswerZH   string            `json:"answer_zh,omitempty"`
	Topic      string            `json:"topic"`
	Keywords   []string          `json:"keywords"`
	KeywordsZH []string          `json:"keywords_zh,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// TopicCategory 按 topic 聚合出的主题信息
type TopicCategory struct {
	Name          string   `json:"name"`
	NameZH        string   `json:"name_zh"`
	Description   string   `json:"description"`
	DescriptionZH string   `json:"description_zh"`
	Keywords      []string `json:"keywords"`
	EntryCount    int      `json:"entry_count"`
}

// SearchResult 单次检索的打分结果，score 只用于排序，不归一化
type SearchResult struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	TitleZH      string  `json:"title_zh,omitempty"`
	Content      string  `json:"content"`
	ContentZH    string  `json:"content_zh,omitempty"`
	Score        float64 `json:"score"`
	Topic        string  `json:"topic"`
	DocumentType string  `json:"document_type"`
}

type TopicCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// KnowledgeStats 知识库维度的统计信息
type KnowledgeStats struct {
	TotalEntries int          `json:"total_entries"`
	TotalTopics  int          `json:"total_topics"`
	TopTopics    []TopicCount `json:"top_topics"`
}
