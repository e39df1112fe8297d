package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "NYC Student Rental Assistant API"
	serviceVersion = "1.0.0"
)

// ServiceInfo 服务基本信息，注册在响应中间件之前，直接输出
func (s *HttpSrv) ServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": serviceName,
		"version": serviceVersion,
		"status":  "running",
	})
}

// Health 健康检查
func (s *HttpSrv) Health(c *gin.Context) {
	if !s.Core.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"knowledge_base_size": s.Core.FAQStore().TotalEntries(),
		"active_sessions":     s.Core.Sessions().Count(),
	})
}
