package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=../processor/processor.go -destination=mocks_test.go -package=handler

import (
	"net/http"
	"strconv"

	"social-manager/internal/accounts/processor"
	"social-manager/internal/apierrors"
	"social-manager/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.AccountProcessor
	logger    *observability.Logger
}

func New(processor processor.AccountProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateSocialAccountRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Platform    string `json:"platform" binding:"required"`
	Handle      string `json:"handle" binding:"required,max=120"`
	AccessToken string `json:"access_token"`
	IsActive    *bool  `json:"is_active"`
}

type CreateBusinessAccountRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	Slug         string `json:"slug" binding:"max=200"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	Description  string `json:"description"`
}

type CreateBusinessCredentialRequest struct {
	Label    string         `json:"label" binding:"required,max=120"`
	Username string         `json:"username"`
	Secret   string         `json:"secret"`
	Metadata map[string]any `json:"metadata"`
}

type CreateSocialAPICredentialRequest struct {
	Platform     string         `json:"platform" binding:"required"`
	AppName      string         `json:"app_name" binding:"required,max=120"`
	ClientID     string         `json:"client_id"`
	ClientSecret string         `json:"client_secret"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	APIBaseURL   string         `json:"api_base_url" binding:"omitempty,url"`
	Metadata     map[string]any `json:"metadata"`
}

// HandleCreateSocialAccount registers a platform account; new accounts are active unless is_active is false
func (h *Handler) HandleCreateSocialAccount(c *gin.Context) {
	var req CreateSocialAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	account, err := h.processor.CreateSocialAccount(c.Request.Context(), processor.CreateSocialAccountParams{
		Name:        req.Name,
		Platform:    req.Platform,
		Handle:      req.Handle,
		AccessToken: req.AccessToken,
		IsActive:    isActive,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *Handler) HandleListSocialAccounts(c *gin.Context) {
	accounts, err := h.processor.ListSocialAccounts(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

func (h *Handler) HandleCreateBusinessAccount(c *gin.Context) {
	var req CreateBusinessAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	business, err := h.processor.CreateBusinessAccount(c.Request.Context(), processor.CreateBusinessAccountParams{
		Name:         req.Name,
		Slug:         req.Slug,
		ContactEmail: req.ContactEmail,
		Description:  req.Description,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, business)
}

func (h *Handler) HandleListBusinessAccounts(c *gin.Context) {
	businesses, err := h.processor.ListBusinessAccounts(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// HandleCreateBusinessCredential stores a sealed credential for a business
func (h *Handler) HandleCreateBusinessCredential(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}

	var req CreateBusinessCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	credential, err := h.processor.CreateBusinessCredential(c.Request.Context(), processor.CreateBusinessCredentialParams{
		BusinessID: businessID,
		Label:      req.Label,
		Username:   req.Username,
		Secret:     req.Secret,
		Metadata:   req.Metadata,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, credential)
}

func (h *Handler) HandleListBusinessCredentials(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}

	credentials, err := h.processor.ListBusinessCredentials(c.Request.Context(), businessID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credentials": credentials})
}

func (h *Handler) HandleCreateSocialAPICredential(c *gin.Context) {
	var req CreateSocialAPICredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	credential, err := h.processor.CreateSocialAPICredential(c.Request.Context(), processor.CreateSocialAPICredentialParams{
		Platform:     req.Platform,
		AppName:      req.AppName,
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		APIBaseURL:   req.APIBaseURL,
		Metadata:     req.Metadata,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, credential)
}

func (h *Handler) HandleListSocialAPICredentials(c *gin.Context) {
	credentials, err := h.processor.ListSocialAPICredentials(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credentials": credentials})
}

func (h *Handler) businessID(c *gin.Context) (int64, bool) {
	businessID, err := strconv.ParseInt(c.Param("business_id"), 10, 64)
	if err != nil || businessID <= 0 {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid business ID"))
		return 0, false
	}
	return businessID, true
}
