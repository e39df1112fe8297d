package service

import (
	"github.com/renty-ai/renty-ai/app/core"
	"github.com/renty-ai/renty-ai/app/response"
	"github.com/renty-ai/renty-ai/cmd/service/handler"
	"github.com/renty-ai/renty-ai/cmd/service/middleware"
	"github.com/renty-ai/renty-ai/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	// 运维端点不走统一响应封装
	s.Engine.GET("/", s.ServiceInfo)
	s.Engine.GET("/health", s.Health)
	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)
	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.Use(middleware.AcceptLanguage())
		apiV1.POST("/chat", s.Chat)
		apiV1.GET("/topics", s.ListTopics)
		apiV1.GET("/stats", s.GetStats)
		apiV1.POST("/feedback", s.SubmitFeedback)
	}
}
