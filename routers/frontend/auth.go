package frontend

import (
	"fmt"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/sedtender/tender_portal/config/role"
	"github.com/sedtender/tender_portal/services"
	"github.com/sedtender/tender_portal/utils/validation"
	"go.uber.org/zap"
)

const (
	loginTab    = "login"
	registerTab = "register"

	fillAllFieldsMessage         = "Please fill in all fields"
	fillRequiredFieldsMessage    = "Please fill in all required fields"
	invalidEmailMessage          = "Please enter a valid email address"
	loginSuccessMessage          = "Login successful! Redirecting..."
	registrationSuccessMessage   = "Registration successful! Please login."
	passwordTooShortMessageFmt   = "Password must be at least %d characters long"
	loginFailedMessageFmt        = "Login failed: %s"
	registrationFailedMessageFmt = "Registration failed: %s"
)

func newLoginPageData(tab string) loginPageDataModel {
	if tab != registerTab {
		tab = loginTab
	}
	return loginPageDataModel{
		Tab:   tab,
		Role:  role.Default,
		Roles: role.Roles,
	}
}

// GET: /login
// Query: tab   string
//        email string
func (r *frontendRouter) LoginPage(ctx *gin.Context) {
	if token := r.token(ctx); token != "" {
		_, err := r.authService.GetCurrentUser(ctx.Request.Context(), token)
		if err == nil {
			ctx.Redirect(http.StatusSeeOther, dashboardPath)
			return
		}
		r.logger.Debug("stored session token is no longer valid", zap.Error(err))
		r.clearSession(ctx, token)
	}

	data := newLoginPageData(ctx.Query("tab"))
	data.Email = ctx.Query("email")
	r.renderOK(ctx, loginPage, nil, data)
}

// POST: /login
// x-www-form-urlencoded
// Request:  email    string
//           password string
func (r *frontendRouter) Login(ctx *gin.Context) {
	var form loginForm
	data := newLoginPageData(loginTab)
	if failed := bindForm(ctx, &form); failed != nil {
		data.Email = form.Email
		r.logger.Warn("login form incomplete", zap.Any("failed", failed))
		r.renderOK(ctx, loginPage, errorAlert(fillAllFieldsMessage), data)
		return
	}
	data.Email = form.Email

	token, err := r.authService.Login(ctx.Request.Context(), form.Email, form.Password)
	if err != nil {
		r.logger.Warn("login failed", zap.String("email", form.Email), zap.Error(err))
		r.renderOK(ctx, loginPage, errorAlert(fmt.Sprintf(loginFailedMessageFmt, services.UserMessage(err))), data)
		return
	}

	if err := r.sessionStore.SetToken(ctx, token); err != nil {
		r.logger.Error("could not store session token", zap.Error(err))
		r.renderOK(ctx, loginPage, errorAlert(fmt.Sprintf(loginFailedMessageFmt, services.UserMessage(err))), data)
		return
	}

	alert := successAlert(loginSuccessMessage)
	alert.RedirectTo = dashboardPath
	r.renderOK(ctx, loginPage, alert, data)
}

// GET: /register
func (r *frontendRouter) RegisterPage(ctx *gin.Context) {
	ctx.Redirect(http.StatusSeeOther, loginPath+"?tab="+registerTab)
}

// POST: /register
// x-www-form-urlencoded
// Request:  full_name string
//           email     string
//           password  string
//           role      string
func (r *frontendRouter) Register(ctx *gin.Context) {
	var form registerForm
	failed := bindForm(ctx, &form)

	data := newLoginPageData(registerTab)
	data.FullName = form.FullName
	data.Email = form.Email
	if form.Role != "" {
		data.Role = role.UserRole(form.Role)
	}

	for _, tag := range failed {
		if tag != validation.EmailTag {
			r.logger.Warn("registration form incomplete", zap.Any("failed", failed))
			r.renderOK(ctx, loginPage, errorAlert(fillRequiredFieldsMessage), data)
			return
		}
	}

	if utf8.RuneCountInString(form.Password) < r.cfg.Auth.PasswordMinLength {
		r.renderOK(ctx, loginPage, errorAlert(fmt.Sprintf(passwordTooShortMessageFmt, r.cfg.Auth.PasswordMinLength)), data)
		return
	}

	if len(failed) > 0 {
		r.logger.Warn("registration email invalid", zap.String("email", form.Email))
		r.renderOK(ctx, loginPage, errorAlert(invalidEmailMessage), data)
		return
	}

	err := r.authService.Register(ctx.Request.Context(), form.request())
	if err != nil {
		r.logger.Warn("registration failed", zap.String("email", form.Email), zap.Error(err))
		r.renderOK(ctx, loginPage, errorAlert(fmt.Sprintf(registrationFailedMessageFmt, services.UserMessage(err))), data)
		return
	}

	alert := successAlert(registrationSuccessMessage)
	alert.RedirectTo = fmt.Sprintf("%s?tab=%s&email=%s", loginPath, loginTab, url.QueryEscape(form.Email))
	r.renderOK(ctx, loginPage, alert, data)
}

// GET: /logout
func (r *frontendRouter) Logout(ctx *gin.Context) {
	r.clearSession(ctx, r.token(ctx))
	ctx.Redirect(http.StatusSeeOther, loginPath)
}
