package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=../processor/processor.go -destination=mocks_test.go -package=handler

import (
	"net/http"
	"time"

	"social-manager/internal/apierrors"
	"social-manager/internal/content/processor"
	"social-manager/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.ContentProcessor
	logger    *observability.Logger
}

func New(processor processor.ContentProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// AIComposeRequest represents the HTTP request for an AI composed campaign
type AIComposeRequest struct {
	Keywords            string     `json:"keywords" binding:"required,max=120"`
	Area                string     `json:"area" binding:"max=120"`
	BusinessPerspective string     `json:"business_perspective" binding:"max=250"`
	TaskMode            string     `json:"task_mode" binding:"omitempty,oneof=manual automated"`
	SendAt              *time.Time `json:"send_at"`
	AccountNames        []string   `json:"account_names" binding:"omitempty,dive,max=120"`
	Platforms           []string   `json:"platforms" binding:"omitempty,dive,oneof=x facebook instagram linkedin tiktok"`
	Autopost            bool       `json:"autopost"`
}

// HandleAIComposeCampaign drafts a campaign from news headlines and optionally posts it
func (h *Handler) HandleAIComposeCampaign(c *gin.Context) {
	var req AIComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.AIComposeCampaign(c.Request.Context(), processor.AIComposeRequest{
		Keywords:            req.Keywords,
		Area:                req.Area,
		BusinessPerspective: req.BusinessPerspective,
		TaskMode:            req.TaskMode,
		SendAt:              req.SendAt,
		AccountNames:        req.AccountNames,
		Platforms:           req.Platforms,
		Autopost:            req.Autopost,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	status := http.StatusCreated
	if req.Autopost {
		status = http.StatusOK
	}
	c.JSON(status, result)
}
