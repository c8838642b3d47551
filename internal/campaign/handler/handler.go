package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=../processor/processor.go -destination=mocks_test.go -package=handler

import (
	"net/http"
	"strconv"
	"time"

	"social-manager/internal/apierrors"
	"social-manager/internal/campaign/processor"
	"social-manager/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	TaskMode string     `json:"task_mode" binding:"omitempty,oneof=manual automated"`
	SendAt   *time.Time `json:"send_at"`
	ImageURL string     `json:"image_url" binding:"omitempty,url"`
}

type CreateCampaignResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// ComposeSendRequest represents the HTTP request for composing and sending in one step
type ComposeSendRequest struct {
	Title        string   `json:"title"`
	Message      string   `json:"message"`
	AccountNames []string `json:"account_names" binding:"omitempty,dive,max=120"`
	Platforms    []string `json:"platforms" binding:"omitempty,dive,oneof=x facebook instagram linkedin tiktok"`
}

// HandleCreateCampaign creates a draft or scheduled campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, processor.CreateCampaignParams{
		Title:    req.Title,
		Message:  req.Message,
		TaskMode: req.TaskMode,
		SendAt:   req.SendAt,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateCampaignResponse{ID: campaign.ID, Status: campaign.Status})
}

// HandleSendCampaign dispatches a stored campaign to every active account.
// Failed deliveries still answer 200; they are reported in the stats.
func (h *Handler) HandleSendCampaign(c *gin.Context) {
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "campaign_id", Value: campaignID})

	result, err := h.processor.SendCampaign(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleListDeliveries returns the delivery log of a campaign, newest first
func (h *Handler) HandleListDeliveries(c *gin.Context) {
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	logs, err := h.processor.ListDeliveries(c.Request.Context(), campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deliveries": logs})
}

// HandleComposeAndSend creates a campaign and dispatches it to the selected accounts
func (h *Handler) HandleComposeAndSend(c *gin.Context) {
	var req ComposeSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.ComposeAndSend(c.Request.Context(), processor.ComposeSendParams{
		Title:        req.Title,
		Message:      req.Message,
		AccountNames: req.AccountNames,
		Platforms:    req.Platforms,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleWizardAccounts lists active accounts grouped by name
func (h *Handler) HandleWizardAccounts(c *gin.Context) {
	grouped, err := h.processor.WizardAccounts(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": grouped})
}

func (h *Handler) campaignID(c *gin.Context) (int64, bool) {
	campaignID, err := strconv.ParseInt(c.Param("campaign_id"), 10, 64)
	if err != nil || campaignID <= 0 {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID"))
		return 0, false
	}
	return campaignID, true
}
