package types

import "time"

// ChatMessage 用户发来的单条消息
type ChatMessage struct {
	Message   string            `json:"message"`
	Language  string            `json:"language"`
	SessionID string            `json:"session_id,omitempty"`
	Context   map[string]string `json:"context,omitempty"`
}

// Source 回答引用的知识来源
type Source struct {
	Title          string  `json:"title"`
	TitleZH        string  `json:"title_zh,omitempty"`
	ContentSnippet string  `json:"content_snippet"`
	RelevanceScore float64 `json:"relevance_score"`
	DocumentType   string  `json:"document_type"`
	Topic          string  `json:"topic"`
}

// Suggestion 追问建议
type Suggestion struct {
	Text       string  `json:"text"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// ChatResponse 一次对话轮次的完整应答
type ChatResponse struct {
	Message        string       `json:"message"`
	Language       string       `json:"language"`
	Confidence     float64      `json:"confidence"`
	Sources        []Source     `json:"sources"`
	Suggestions    []Suggestion `json:"suggestions"`
	SessionID      string       `json:"session_id,omitempty"`
	ResponseTimeMs int64        `json:"response_time_ms"`
}

// ConversationTurn 会话历史里的一条记录
type ConversationTurn struct {
	Role       string    `json:"role"`
	Message    string    `json:"message"`
	Language   string    `json:"language"`
	Confidence float64   `json:"confidence,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ConversationContext 按 session 维护的会话上下文
// 同一 session 的并发写采用 last-write-wins，不做额外加锁
type ConversationContext struct {
	SessionID    string             `json:"session_id"`
	UserLanguage string             `json:"user_language"`
	History      []ConversationTurn `json:"history"`
	CreatedAt    time.Time          `json:"created_at"`
	LastActivity time.Time          `json:"last_activity"`
}

// SystemStats 服务运行统计，计数由编排层维护
type SystemStats struct {
	TotalQueries        int64        `json:"total_queries"`
	QueriesToday        int64        `json:"queries_today"`
	AverageResponseTime float64      `json:"average_response_time"`
	KnowledgeBaseSize   int          `json:"knowledge_base_size"`
	ActiveSessions      int          `json:"active_sessions"`
	TopTopics           []TopicCount `json:"top_topics"`
}

// UserFeedback 用户反馈，当前仅记录日志
type UserFeedback struct {
	SessionID    string `json:"session_id"`
	MessageID    string `json:"message_id,omitempty"`
	Rating       int    `json:"rating"`
	FeedbackText string `json:"feedback_text,omitempty"`
	FeedbackType string `json:"feedback_type"`
}
