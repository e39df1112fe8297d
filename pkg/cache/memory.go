package cache

import (
	"context"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type item struct {
	value     string
	expiresAt time.Time
}

func (i item) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && now.After(i.expiresAt)
}

// MemoryCache 进程内 TTL 缓存，实现 types.Cache
// 过期条目读取时惰性剔除，另有 CleanupExpired 供定时任务全量清扫
type MemoryCache struct {
	items cmap.ConcurrentMap[string, item]
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: cmap.New[item](),
	}
}

// Get 未命中或已过期返回空串，不报错
func (c *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	entry, ok := c.items.Get(key)
	if !ok {
		return "", nil
	}
	if entry.expired(time.Now()) {
		c.items.Remove(key)
		return "", nil
	}
	return entry.value, nil
}

func (c *MemoryCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	c.items.Set(key, item{
		value:     value,
		expiresAt: time.Now().Add(expiresAt),
	})
	return nil
}

func (c *MemoryCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	entry, ok := c.items.Get(key)
	if !ok {
		return nil
	}
	entry.expiresAt = time.Now().Add(expiration)
	c.items.Set(key, entry)
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.items.Remove(key)
	return nil
}

// CleanupExpired 删除所有已过期条目，返回删除数量
func (c *MemoryCache) CleanupExpired() int {
	now := time.Now()

	var expired []string
	c.items.IterCb(func(key string, entry item) {
		if entry.expired(now) {
			expired = append(expired, key)
		}
	})

	for _, key := range expired {
		c.items.Remove(key)
	}
	return len(expired)
}
