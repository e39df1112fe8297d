package process

import (
	"log/slog"

	"github.com/renty-ai/renty-ai/pkg/cache"
	"github.com/renty-ai/renty-ai/pkg/register"
	"github.com/renty-ai/renty-ai/pkg/safe"
)

func init() {
	register.RegisterFunc(ProcessKey{}, func(provider *Process) {
		provider.Cron().AddFunc("*/10 * * * *", func() {
			safe.RunWithLog(func() {
				mc, ok := provider.Core().Cache().(*cache.MemoryCache)
				if !ok {
					return
				}
				if removed := mc.CleanupExpired(); removed > 0 {
					slog.Debug("cache cleanup", slog.Int("removed", removed))
				}
			}, "process.CacheCleanup")
		})
	})
}
