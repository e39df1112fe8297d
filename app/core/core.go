package core

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/renty-ai/renty-ai/app/store/faqstore"
	"github.com/renty-ai/renty-ai/app/store/session"
	"github.com/renty-ai/renty-ai/pkg/cache"
	"github.com/renty-ai/renty-ai/pkg/nlp"
	"github.com/renty-ai/renty-ai/pkg/types"
)

type Core struct {
	cfg CoreConfig

	httpEngine *gin.Engine
	metrics    *Metrics
	stats      *Stats

	faqStore   *faqstore.FAQStore
	sessions   *session.Store
	cache      types.Cache
	classifier *nlp.Classifier
	translator nlp.Translator

	ready bool
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,   //days
				Compress:   true, // disabled by default
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	core := &Core{
		cfg:        cfg,
		httpEngine: gin.New(),
		metrics:    NewMetrics("renty", "core"),
		stats:      NewStats(),
		faqStore:   faqstore.MustSetup(),
		sessions:   session.NewStore(),
		cache:      cache.NewMemoryCache(),
		classifier: nlp.NewClassifier(),
		translator: nlp.NoopTranslator{},
	}
	core.ready = true

	slog.Info("core initialized", slog.Int("knowledge_entries", core.faqStore.TotalEntries()))
	return core
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Stats() *Stats {
	return s.stats
}

func (s *Core) FAQStore() *faqstore.FAQStore {
	return s.faqStore
}

func (s *Core) Sessions() *session.Store {
	return s.sessions
}

func (s *Core) Cache() types.Cache {
	return s.cache
}

func (s *Core) Classifier() *nlp.Classifier {
	return s.classifier
}

func (s *Core) Translator() nlp.Translator {
	return s.translator
}

// SetTranslator 注入真实翻译实现，默认是 no-op
func (s *Core) SetTranslator(t nlp.Translator) {
	s.translator = t
}

func (s *Core) Ready() bool {
	return s.ready
}
