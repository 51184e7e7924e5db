package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/routers/api/models"
	"go.uber.org/zap"
)

// APIV1Router is the router for v1 of the UI API backing live page behaviour
type APIV1Router interface {
	models.Router
	SuccessRate(*gin.Context)
	Validate(*gin.Context)
}

type apiV1Router struct {
	models.BaseRouter
	logger *zap.Logger
	cfg    *config.AppConfig
}

// NewAPIV1Router creates a APIV1Router
func NewAPIV1Router(logger *zap.Logger, cfg *config.AppConfig) APIV1Router {
	return &apiV1Router{
		logger: logger,
		cfg:    cfg,
	}
}

// RegisterRoutes registers all of the API's (v1) routes to the given router group
func (r *apiV1Router) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)
	routerGroup.GET("/success-rate", r.SuccessRate)
	routerGroup.POST("/validate", r.Validate)
}
