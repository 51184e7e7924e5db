package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/routers/api/models"
	"github.com/sedtender/tender_portal/services"
	"github.com/sedtender/tender_portal/services/profile"
	"github.com/sedtender/tender_portal/services/session"
	"github.com/sedtender/tender_portal/utils/validation"
	"go.uber.org/zap"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
	profilePath   = "/profile"
)

// Router is the router for the portal's pages
type Router interface {
	models.Router
	LoginPage(*gin.Context)
	Login(*gin.Context)
	RegisterPage(*gin.Context)
	Register(*gin.Context)
	Logout(*gin.Context)
	DashboardPage(*gin.Context)
	Search(*gin.Context)
	CreateTeam(*gin.Context)
	SavedTenders(*gin.Context)
	ProfilePage(*gin.Context)
	ProfileLogin(*gin.Context)
	SaveSection(*gin.Context)
	RecalculateScore(*gin.Context)
	ExportProfile(*gin.Context)
	ProfileLogout(*gin.Context)
}

type frontendRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	cfg            *config.AppConfig
	sessionStore   session.Store
	authService    services.AuthService
	teamService    services.TeamService
	searchService  services.SearchService
	profileManager *profile.Manager
}

// NewRouter creates a new Router for the portal's pages
func NewRouter(logger *zap.Logger, cfg *config.AppConfig, sessionStore session.Store, authService services.AuthService,
	teamService services.TeamService, searchService services.SearchService, profileManager *profile.Manager) (Router, error) {
	if err := validation.Register(); err != nil {
		return nil, errors.Wrap(err, "could not register form validators")
	}

	return &frontendRouter{
		logger:         logger,
		cfg:            cfg,
		sessionStore:   sessionStore,
		authService:    authService,
		teamService:    teamService,
		searchService:  searchService,
		profileManager: profileManager,
	}, nil
}

// RegisterRoutes registers the routes of the portal's pages to the given router group
func (r *frontendRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/login", r.LoginPage)
	routerGroup.POST("/login", r.Login)
	routerGroup.GET("/register", r.RegisterPage)
	routerGroup.POST("/register", r.Register)
	routerGroup.GET("/logout", r.Logout)

	dashboard := routerGroup.Group(dashboardPath, r.requireSession(loginPath))
	dashboard.GET("", r.DashboardPage)
	dashboard.POST("/search", r.Search)
	dashboard.POST("/team", r.CreateTeam)
	dashboard.GET("/saved", r.SavedTenders)

	routerGroup.GET(profilePath, r.ProfilePage)
	routerGroup.POST("/profile/login", r.ProfileLogin)
	routerGroup.GET("/profile/logout", r.ProfileLogout)

	profileActions := routerGroup.Group(profilePath, r.requireSession(profilePath))
	profileActions.POST("/sections/:section", r.SaveSection)
	profileActions.POST("/score", r.RecalculateScore)
	profileActions.GET("/export", r.ExportProfile)
}

// requireSession redirects requests without a session token to redirectTo
// before any request is sent to the API
func (r *frontendRouter) requireSession(redirectTo string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := r.token(ctx)
		if token == "" {
			ctx.Redirect(http.StatusSeeOther, redirectTo)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// token returns the session token of the request, an empty string when there is none
func (r *frontendRouter) token(ctx *gin.Context) string {
	token, err := r.sessionStore.GetToken(ctx)
	if err != nil {
		r.logger.Warn("could not read session token", zap.Error(err))
		return ""
	}
	return token
}

// clearSession drops the session token and the profile cached for it
func (r *frontendRouter) clearSession(ctx *gin.Context, token string) {
	if token != "" {
		if err := r.profileManager.Controller(ctx.Request.Context(), token).Logout(ctx.Request.Context()); err != nil {
			r.logger.Warn("could not drop cached profile", zap.Error(err))
		}
	}
	if err := r.sessionStore.ClearToken(ctx); err != nil {
		r.logger.Error("could not clear session token", zap.Error(err))
	}
}

// handleUnauthorized ends the session and sends the user to the login page
// when err was caused by the API rejecting the session token
func (r *frontendRouter) handleUnauthorized(ctx *gin.Context, token string, err error) bool {
	if errors.Cause(err) != services.ErrUnauthorized {
		return false
	}

	r.logger.Debug("session token rejected, logging out", zap.String("path", ctx.Request.URL.Path))
	r.clearSession(ctx, token)
	ctx.Redirect(http.StatusSeeOther, loginPath)
	ctx.Abort()
	return true
}
