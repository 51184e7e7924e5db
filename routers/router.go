package routers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sedtender/tender_portal/routers/api/models"
	v1 "github.com/sedtender/tender_portal/routers/api/v1"
	"github.com/sedtender/tender_portal/routers/frontend"
	"github.com/sedtender/tender_portal/utils/metrics"
	"go.uber.org/zap"
)

// MainRouter is the router of the whole portal
type MainRouter interface {
	models.Router
}

type mainRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	metrics        *metrics.Metrics
	apiV1Router    v1.APIV1Router
	frontendRouter frontend.Router
}

// NewMainRouter creates a MainRouter
func NewMainRouter(logger *zap.Logger, m *metrics.Metrics, apiV1Router v1.APIV1Router, frontendRouter frontend.Router) MainRouter {
	return &mainRouter{
		logger:         logger,
		metrics:        m,
		apiV1Router:    apiV1Router,
		frontendRouter: frontendRouter,
	}
}

// RegisterRoutes registers the heartbeat, the metrics endpoint, the UI API and the pages
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.Use(r.observeRequest)

	routerGroup.GET("/", r.Heartbeat)
	routerGroup.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := routerGroup.Group("/api/ui/v1")
	r.apiV1Router.RegisterRoutes(apiV1)

	r.frontendRouter.RegisterRoutes(routerGroup)
}

const unmatchedRoute = "unmatched"

// observeRequest records the method, route and status of every request matching a route
func (r *mainRouter) observeRequest(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()

	r.metrics.ObserveRequest(ctx.Request.Method, routeTemplate(ctx), ctx.Writer.Status(), time.Since(start))
}

// routeTemplate rebuilds the pattern of the matched route from the request path and its params,
// "/profile/sections/cidb" becomes "/profile/sections/:section"
func routeTemplate(ctx *gin.Context) string {
	path := ctx.Request.URL.Path
	if len(ctx.Params) == 0 {
		return path
	}

	segments := strings.Split(path, "/")
	next := 0
	for _, param := range ctx.Params {
		if strings.HasPrefix(param.Value, "/") {
			prefix := strings.Join(segments, "/")
			if !strings.HasSuffix(prefix, param.Value) {
				return unmatchedRoute
			}
			return strings.TrimSuffix(prefix, param.Value) + "/*" + param.Key
		}

		found := false
		for ; next < len(segments); next++ {
			if segments[next] == param.Value {
				segments[next] = ":" + param.Key
				next++
				found = true
				break
			}
		}
		if !found {
			return unmatchedRoute
		}
	}
	return strings.Join(segments, "/")
}
