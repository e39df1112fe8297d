package v1

import (
	"context"
	"log/slog"

	"github.com/renty-ai/renty-ai/app/core"
	"github.com/renty-ai/renty-ai/pkg/errors"
	"github.com/renty-ai/renty-ai/pkg/i18n"
	"github.com/renty-ai/renty-ai/pkg/types"
)

type KnowledgeLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewKnowledgeLogic(ctx context.Context, core *core.Core) *KnowledgeLogic {
	return &KnowledgeLogic{
		ctx:  ctx,
		core: core,
	}
}

// ListTopics 返回知识库中实际有条目的主题，按种子声明顺序
func (l *KnowledgeLogic) ListTopics() []types.TopicCategory {
	return l.core.FAQStore().GetTopics()
}

// SystemStats 汇总编排层计数与知识库维度统计
func (l *KnowledgeLogic) SystemStats() types.SystemStats {
	totalQueries, queriesToday, avgMs := l.core.Stats().Snapshot()
	knowledgeStats := l.core.FAQStore().GetStats()

	return types.SystemStats{
		TotalQueries:        totalQueries,
		QueriesToday:        queriesToday,
		AverageResponseTime: avgMs,
		KnowledgeBaseSize:   knowledgeStats.TotalEntries,
		ActiveSessions:      l.core.Sessions().Count(),
		TopTopics:           knowledgeStats.TopTopics,
	}
}

// RecordFeedback 反馈目前只落日志，后续接入存储时再扩展
func (l *KnowledgeLogic) RecordFeedback(feedback types.UserFeedback) error {
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return errors.New("KnowledgeLogic.RecordFeedback", i18n.ERROR_INVALIDARGUMENT, nil).Code(400)
	}

	slog.Info("user feedback received",
		slog.String("session_id", feedback.SessionID),
		slog.Int("rating", feedback.Rating),
		slog.String("feedback_type", feedback.FeedbackType),
		slog.String("feedback_text", feedback.FeedbackText),
	)
	return nil
}
