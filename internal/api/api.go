package api

import (
	"net/http"
	"reflect"
	"strings"

	accountHandler "social-manager/internal/accounts/handler"
	campaignHandler "social-manager/internal/campaign/handler"
	contentHandler "social-manager/internal/content/handler"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const serviceName = "Social Manager API"

type API struct {
	router          *gin.RouterGroup
	campaignHandler campaignHandler.Handler
	contentHandler  contentHandler.Handler
	accountHandler  accountHandler.Handler
	metricsHandler  http.Handler
}

func New(
	router *gin.RouterGroup,
	campaignHandler campaignHandler.Handler,
	contentHandler contentHandler.Handler,
	accountHandler accountHandler.Handler,
	metricsHandler http.Handler,
) API {
	return API{
		router:          router,
		campaignHandler: campaignHandler,
		contentHandler:  contentHandler,
		accountHandler:  accountHandler,
		metricsHandler:  metricsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	if a.metricsHandler != nil {
		a.router.GET("/metrics", gin.WrapH(a.metricsHandler))
	}

	apiGroup := a.router.Group("/api")
	{
		campaignGroup := apiGroup.Group("/campaigns")
		campaignGroup.POST("", a.campaignHandler.HandleCreateCampaign)
		campaignGroup.POST("/compose-send", a.campaignHandler.HandleComposeAndSend)
		campaignGroup.POST("/ai-compose", a.contentHandler.HandleAIComposeCampaign)
		campaignGroup.POST("/:campaign_id/send", a.campaignHandler.HandleSendCampaign)
		campaignGroup.GET("/:campaign_id/deliveries", a.campaignHandler.HandleListDeliveries)
	}
	apiGroup.GET("/wizard/accounts", a.campaignHandler.HandleWizardAccounts)
	{
		apiGroup.POST("/social-accounts", a.accountHandler.HandleCreateSocialAccount)
		apiGroup.GET("/social-accounts", a.accountHandler.HandleListSocialAccounts)
		apiGroup.POST("/social-api-credentials", a.accountHandler.HandleCreateSocialAPICredential)
		apiGroup.GET("/social-api-credentials", a.accountHandler.HandleListSocialAPICredentials)
	}
	businessGroup := apiGroup.Group("/businesses")
	{
		businessGroup.POST("", a.accountHandler.HandleCreateBusinessAccount)
		businessGroup.GET("", a.accountHandler.HandleListBusinessAccounts)
		businessGroup.POST("/:business_id/credentials", a.accountHandler.HandleCreateBusinessCredential)
		businessGroup.GET("/:business_id/credentials", a.accountHandler.HandleListBusinessCredentials)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": serviceName, "status": "ok"})
	})
}

// UseJSONFieldNames makes binding errors name fields by their json tag.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
