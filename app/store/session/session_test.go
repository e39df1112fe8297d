package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renty-ai/renty-ai/pkg/types"
)

func TestGetOrCreate(t *testing.T) {
	s := NewStore()

	first, created := s.GetOrCreate("abc", types.LANGUAGE_EN_KEY)
	assert.True(t, created)
	assert.Equal(t, "abc", first.SessionID)

	second, created := s.GetOrCreate("abc", types.LANGUAGE_ZH_KEY)
	assert.False(t, created)
	// 已存在的会话保留原语言
	assert.Equal(t, types.LANGUAGE_EN_KEY, second.UserLanguage)
	assert.Equal(t, 1, s.Count())
}

func TestEvictByAge(t *testing.T) {
	s := NewStore()

	stale, _ := s.GetOrCreate("stale", types.LANGUAGE_EN_KEY)
	stale.LastActivity = time.Now().Add(-2 * time.Hour)
	s.Put("stale", stale)
	s.GetOrCreate("fresh", types.LANGUAGE_EN_KEY)

	evicted := s.EvictByAge(time.Hour)
	assert.Equal(t, 1, evicted)

	_, ok := s.Get("stale")
	assert.False(t, ok)
	_, ok = s.Get("fresh")
	assert.True(t, ok)
}
