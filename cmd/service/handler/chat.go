package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/renty-ai/renty-ai/app/logic/v1"
	"github.com/renty-ai/renty-ai/app/response"
	"github.com/renty-ai/renty-ai/pkg/errors"
	"github.com/renty-ai/renty-ai/pkg/i18n"
	"github.com/renty-ai/renty-ai/pkg/types"
	"github.com/renty-ai/renty-ai/pkg/utils"
)

// Chat 处理一轮对话
func (s *HttpSrv) Chat(c *gin.Context) {
	var req types.ChatMessage
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}
	if req.Message == "" {
		response.APIError(c, errors.New("HttpSrv.Chat", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest))
		return
	}
	// 请求体没带语言时退回 Accept-Language，再没有就交给自动识别
	if req.Language == "" {
		req.Language = v1.InjectLanguage(c)
	}

	timer := s.Core.Metrics().ApiResponseTimer("chat")
	defer timer.ObserveDuration()

	resp := v1.NewChatLogic(c, s.Core).ProcessMessage(req)
	response.APISuccess(c, resp)
}

// SubmitFeedback 接收用户对回答的评价
func (s *HttpSrv) SubmitFeedback(c *gin.Context) {
	var req types.UserFeedback
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err := v1.NewKnowledgeLogic(c, s.Core).RecordFeedback(req); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}
