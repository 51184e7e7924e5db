package frontend

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/services"
	"go.uber.org/zap"
)

const (
	searchModal = "search"
	teamModal   = "team"

	loadUserFailedMessage  = "Failed to load user information"
	searchRequiredMessage  = "Please enter search keywords"
	searchCompletedMessage = "Search completed! Results will be displayed here."
	teamRequiredMessage    = "Please enter a team name"
	savedTendersMessage    = "Saved tenders feature coming soon!"
	searchFailedFmt        = "Search failed: %s"
	teamCreatedFmt         = "Team \"%s\" created successfully!"
	teamFailedFmt          = "Failed to create team: %s"
)

func newDashboardPageData(modal string) dashboardPageDataModel {
	if modal != searchModal && modal != teamModal {
		modal = ""
	}
	return dashboardPageDataModel{
		Modal: modal,
		Team:  entities.Team{Plan: entities.FreePlan},
		Plans: entities.TeamPlans,
	}
}

// loadUser fetches the signed in user for the dashboard's navbar.
// It returns false when the request was already answered
func (r *frontendRouter) loadUser(ctx *gin.Context) bool {
	token := r.token(ctx)
	user, err := r.authService.GetCurrentUser(ctx.Request.Context(), token)
	if err != nil {
		if r.handleUnauthorized(ctx, token, err) {
			return false
		}

		r.logger.Error("could not load current user", zap.Error(err))
		r.clearSession(ctx, token)
		r.renderOK(ctx, loginPage, errorAlert(loadUserFailedMessage), newLoginPageData(loginTab))
		return false
	}

	ctx.Set(userCtxKey, user)
	return true
}

// GET: /dashboard
// Query: modal string
func (r *frontendRouter) DashboardPage(ctx *gin.Context) {
	if !r.loadUser(ctx) {
		return
	}

	r.renderOK(ctx, dashboardPage, nil, newDashboardPageData(ctx.Query("modal")))
}

// POST: /dashboard/search
// x-www-form-urlencoded
// Request:  keywords string
//           province string
//           budget   string
func (r *frontendRouter) Search(ctx *gin.Context) {
	if !r.loadUser(ctx) {
		return
	}

	var form searchForm
	data := newDashboardPageData(searchModal)
	if failed := bindForm(ctx, &form); failed != nil {
		data.Search = form.query()
		r.renderOK(ctx, dashboardPage, errorAlert(searchRequiredMessage), data)
		return
	}

	if err := r.searchService.Search(ctx.Request.Context(), form.query()); err != nil {
		r.logger.Warn("tender search failed", zap.Error(err))
		data.Search = form.query()
		r.renderOK(ctx, dashboardPage, errorAlert(fmt.Sprintf(searchFailedFmt, err.Error())), data)
		return
	}

	data.Modal = ""
	r.renderOK(ctx, dashboardPage, successAlert(searchCompletedMessage), data)
}

// POST: /dashboard/team
// x-www-form-urlencoded
// Request:  name        string
//           description string
//           plan        string
func (r *frontendRouter) CreateTeam(ctx *gin.Context) {
	if !r.loadUser(ctx) {
		return
	}

	var form teamForm
	data := newDashboardPageData(teamModal)
	if failed := bindForm(ctx, &form); failed != nil {
		data.Team = form.team()
		r.renderOK(ctx, dashboardPage, errorAlert(teamRequiredMessage), data)
		return
	}

	token := r.token(ctx)
	team, err := r.teamService.CreateTeam(ctx.Request.Context(), token, form.team())
	if err != nil {
		if r.handleUnauthorized(ctx, token, err) {
			return
		}
		r.logger.Warn("could not create team", zap.String("name", form.Name), zap.Error(err))
		data.Team = form.team()
		r.renderOK(ctx, dashboardPage, errorAlert(fmt.Sprintf(teamFailedFmt, services.UserMessage(err))), data)
		return
	}

	name := form.Name
	if team != nil && team.Name != "" {
		name = team.Name
	}

	data.Modal = ""
	r.renderOK(ctx, dashboardPage, successAlert(fmt.Sprintf(teamCreatedFmt, name)), data)
}

// GET: /dashboard/saved
func (r *frontendRouter) SavedTenders(ctx *gin.Context) {
	if !r.loadUser(ctx) {
		return
	}

	r.renderOK(ctx, dashboardPage, infoAlert(savedTendersMessage), newDashboardPageData(""))
}
