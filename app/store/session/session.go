package session

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/renty-ai/renty-ai/pkg/types"
)

// Store 会话上下文存储，按 session id 维度隔离
// 同一 session 的并发写不做排序保证，last-write-wins
type Store struct {
	sessions cmap.ConcurrentMap[string, *types.ConversationContext]
}

func NewStore() *Store {
	return &Store{
		sessions: cmap.New[*types.ConversationContext](),
	}
}

// GetOrCreate 返回已有上下文，没有则以给定语言新建
func (s *Store) GetOrCreate(sessionID, language string) (*types.ConversationContext, bool) {
	if existing, ok := s.sessions.Get(sessionID); ok {
		return existing, false
	}

	now := time.Now()
	context := &types.ConversationContext{
		SessionID:    sessionID,
		UserLanguage: language,
		CreatedAt:    now,
		LastActivity: now,
	}
	// 并发首见同一 id 时 SetIfAbsent 保证只留一份
	if !s.sessions.SetIfAbsent(sessionID, context) {
		existing, _ := s.sessions.Get(sessionID)
		return existing, false
	}
	return context, true
}

func (s *Store) Put(sessionID string, context *types.ConversationContext) {
	s.sessions.Set(sessionID, context)
}

func (s *Store) Get(sessionID string) (*types.ConversationContext, bool) {
	return s.sessions.Get(sessionID)
}

func (s *Store) Count() int {
	return s.sessions.Count()
}

// EvictByAge 清理最后活跃时间早于 maxAge 的会话，返回清理数量
func (s *Store) EvictByAge(maxAge time.Duration) int {
	deadline := time.Now().Add(-maxAge)

	var expired []string
	s.sessions.IterCb(func(key string, context *types.ConversationContext) {
		if context.LastActivity.Before(deadline) {
			expired = append(expired, key)
		}
	})

	for _, key := range expired {
		s.sessions.Remove(key)
	}
	return len(expired)
}
