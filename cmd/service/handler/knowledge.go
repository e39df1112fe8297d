package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/renty-ai/renty-ai/app/logic/v1"
	"github.com/renty-ai/renty-ai/app/response"
	"github.com/renty-ai/renty-ai/pkg/types"
)

type ListTopicsResponse struct {
	Topics []types.TopicCategory `json:"topics"`
	Total  int                   `json:"total"`
}

// ListTopics 返回知识库主题列表
func (s *HttpSrv) ListTopics(c *gin.Context) {
	topics := v1.NewKnowledgeLogic(c, s.Core).ListTopics()
	response.APISuccess(c, ListTopicsResponse{
		Topics: topics,
		Total:  len(topics),
	})
}

// GetStats 返回服务运行统计
func (s *HttpSrv) GetStats(c *gin.Context) {
	response.APISuccess(c, v1.NewKnowledgeLogic(c, s.Core).SystemStats())
}
