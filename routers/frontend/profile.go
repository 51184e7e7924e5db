package frontend

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/services"
	"github.com/sedtender/tender_portal/services/profile"
	"go.uber.org/zap"
)

const (
	profileLoginRequiredMessage = "Login required to access the profile system"
	scoreRecalculatedMessage    = "Score recalculated successfully!"
	sectionSavedFmt             = "%s information saved successfully!"
	saveFailedFmt               = "Error saving profile: %s"
	loadFailedFmt               = "Error loading profile: %s"
	recalculateFailedFmt        = "Error recalculating score: %s"
)

func newProfilePageData(view profile.View) profilePageDataModel {
	return profilePageDataModel{
		View:     view,
		Sections: profile.Sections,
	}
}

// renderProfile renders the profile page showing view
func (r *frontendRouter) renderProfile(ctx *gin.Context, status int, alert *alertDataModel, view profile.View) {
	ctx.Set(profileViewCtxKey, view)
	r.renderPage(ctx, profilePage, status, alert, newProfilePageData(view))
}

// renderProfileLogin renders the profile page with its login form open
func (r *frontendRouter) renderProfileLogin(ctx *gin.Context, alert *alertDataModel, email string) {
	data := newProfilePageData(profile.NewView(nil, r.cfg.Score.CircleRadius))
	data.LoginRequired = true
	data.LoginEmail = email
	r.renderOK(ctx, profilePage, alert, data)
}

// GET: /profile
func (r *frontendRouter) ProfilePage(ctx *gin.Context) {
	token := r.token(ctx)
	if token == "" {
		r.renderProfileLogin(ctx, nil, "")
		return
	}

	controller := r.profileManager.Controller(ctx.Request.Context(), token)
	if err := controller.Load(ctx.Request.Context()); err != nil {
		if r.handleUnauthorized(ctx, token, err) {
			return
		}
		r.logger.Error("could not load profile", zap.Error(err))
		r.renderProfile(ctx, http.StatusOK, errorAlert(fmt.Sprintf(loadFailedFmt, services.UserMessage(err))), controller.View())
		return
	}

	r.renderProfile(ctx, http.StatusOK, nil, controller.View())
}

// POST: /profile/login
// x-www-form-urlencoded
// Request:  email    string
//           password string
func (r *frontendRouter) ProfileLogin(ctx *gin.Context) {
	var form loginForm
	if failed := bindForm(ctx, &form); failed != nil {
		r.renderProfileLogin(ctx, errorAlert(profileLoginRequiredMessage), form.Email)
		return
	}

	token, err := r.authService.Login(ctx.Request.Context(), form.Email, form.Password)
	if err != nil {
		r.logger.Warn("profile login failed", zap.String("email", form.Email), zap.Error(err))
		r.renderProfileLogin(ctx, errorAlert(fmt.Sprintf(loginFailedMessageFmt, services.UserMessage(err))), form.Email)
		return
	}

	if err := r.sessionStore.SetToken(ctx, token); err != nil {
		r.logger.Error("could not store session token", zap.Error(err))
		r.renderProfileLogin(ctx, errorAlert(fmt.Sprintf(loginFailedMessageFmt, services.UserMessage(err))), form.Email)
		return
	}

	ctx.Redirect(http.StatusSeeOther, profilePath)
}

// POST: /profile/sections/:section
// x-www-form-urlencoded
// Request:  the fields of the section
func (r *frontendRouter) SaveSection(ctx *gin.Context) {
	token := r.token(ctx)
	controller := r.profileManager.Controller(ctx.Request.Context(), token)

	section, err := profile.ParseSection(ctx.Param("section"))
	if err != nil {
		r.logger.Warn("unknown profile section", zap.String("section", ctx.Param("section")))
		r.renderProfile(ctx, http.StatusNotFound, errorAlert(fmt.Sprintf(saveFailedFmt, err.Error())), controller.View())
		return
	}

	if err := ctx.Request.ParseForm(); err != nil {
		r.logger.Warn("could not parse profile form", zap.Error(err))
		r.renderProfile(ctx, http.StatusBadRequest, errorAlert(fmt.Sprintf(saveFailedFmt, services.UserMessage(err))), controller.View())
		return
	}
	form := ctx.Request.PostForm

	err = controller.SubmitSection(ctx.Request.Context(), section, form)
	if err != nil {
		if r.handleUnauthorized(ctx, token, err) {
			return
		}

		view := controller.View()
		view.KeepSubmitted(section, form)
		if errors.Cause(err) == services.ErrInvalidForm {
			r.logger.Warn("profile form invalid", zap.String("section", string(section)), zap.Error(err))
			r.renderProfile(ctx, http.StatusOK, errorAlert(services.UserMessage(err)), view)
			return
		}

		r.logger.Error("could not save profile section", zap.String("section", string(section)), zap.Error(err))
		r.renderProfile(ctx, http.StatusOK, errorAlert(fmt.Sprintf(saveFailedFmt, services.UserMessage(err))), view)
		return
	}

	r.renderProfile(ctx, http.StatusOK, successAlert(fmt.Sprintf(sectionSavedFmt, section.Title())), controller.View())
}

// POST: /profile/score
func (r *frontendRouter) RecalculateScore(ctx *gin.Context) {
	token := r.token(ctx)
	controller := r.profileManager.Controller(ctx.Request.Context(), token)

	if err := controller.Recalculate(ctx.Request.Context()); err != nil {
		if r.handleUnauthorized(ctx, token, err) {
			return
		}
		r.logger.Error("could not recalculate score", zap.Error(err))
		r.renderProfile(ctx, http.StatusOK, errorAlert(fmt.Sprintf(recalculateFailedFmt, services.UserMessage(err))), controller.View())
		return
	}

	r.renderProfile(ctx, http.StatusOK, successAlert(scoreRecalculatedMessage), controller.View())
}

// GET: /profile/export
func (r *frontendRouter) ExportProfile(ctx *gin.Context) {
	token := r.token(ctx)
	controller := r.profileManager.Controller(ctx.Request.Context(), token)

	data, fileName, err := controller.Export(ctx.Request.Context())
	if err != nil {
		if r.handleUnauthorized(ctx, token, err) {
			return
		}
		r.logger.Warn("could not export profile", zap.Error(err))
		r.renderProfile(ctx, http.StatusOK, errorAlert(services.UserMessage(err)), controller.View())
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	ctx.Data(http.StatusOK, "application/json", data)
}

// GET: /profile/logout
func (r *frontendRouter) ProfileLogout(ctx *gin.Context) {
	r.clearSession(ctx, r.token(ctx))
	ctx.Redirect(http.StatusSeeOther, profilePath)
}
