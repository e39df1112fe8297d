package process

import (
	"log/slog"
	"time"

	"github.com/renty-ai/renty-ai/app/core"
	"github.com/renty-ai/renty-ai/pkg/register"
	"github.com/renty-ai/renty-ai/pkg/safe"
)

type SessionCleanupProcess struct {
	core *core.Core
}

func NewSessionCleanupProcess(core *core.Core) *SessionCleanupProcess {
	return &SessionCleanupProcess{core: core}
}

// EvictStaleSessions 淘汰超过 TTL 未活跃的会话
func (p *SessionCleanupProcess) EvictStaleSessions() int {
	ttl := time.Duration(p.core.Cfg().Chat.SessionTTLHours) * time.Hour
	return p.core.Sessions().EvictByAge(ttl)
}

func init() {
	register.RegisterFunc(ProcessKey{}, func(provider *Process) {
		provider.Cron().AddFunc("0 * * * *", func() {
			safe.RunWithLog(func() {
				evicted := NewSessionCleanupProcess(provider.Core()).EvictStaleSessions()
				if evicted > 0 {
					slog.Info("evicted stale sessions", slog.Int("count", evicted))
				}
			}, "process.SessionCleanup")
		})
	})
}
