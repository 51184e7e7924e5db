package frontend

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sedtender/tender_portal/config/role"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/utils/validation"
)

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	FullName string `form:"full_name" binding:"required"`
	Email    string `form:"email" binding:"required,portal_email"`
	Password string `form:"password" binding:"required"`
	Role     string `form:"role"`
}

func (f registerForm) request() entities.RegisterRequest {
	userRole := role.UserRole(strings.TrimSpace(f.Role))
	if userRole == "" {
		userRole = role.Default
	}

	return entities.RegisterRequest{
		FullName: f.FullName,
		Email:    f.Email,
		Password: f.Password,
		Role:     userRole,
	}
}

type searchForm struct {
	Keywords string `form:"keywords" binding:"required"`
	Province string `form:"province"`
	Budget   string `form:"budget"`
}

func (f searchForm) query() entities.SearchQuery {
	return entities.SearchQuery{
		Keywords: f.Keywords,
		Province: f.Province,
		Budget:   f.Budget,
	}
}

type teamForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	Plan        string `form:"plan"`
}

func (f teamForm) team() entities.Team {
	plan := entities.TeamPlan(strings.TrimSpace(f.Plan))
	if plan == "" {
		plan = entities.FreePlan
	}

	return entities.Team{
		Name:        f.Name,
		Description: f.Description,
		Plan:        plan,
	}
}

// bindForm trims the submitted values and validates them against the form's binding tags.
// The returned map holds the failed tag of each invalid field
func bindForm(ctx *gin.Context, form interface{ trim() }) map[string]string {
	// validation runs again once the values are trimmed
	if err := ctx.ShouldBindWith(form, binding.Form); err != nil && validation.FailedTags(err) == nil {
		return map[string]string{"": err.Error()}
	}

	form.trim()
	if err := binding.Validator.ValidateStruct(form); err != nil {
		if failed := validation.FailedTags(err); failed != nil {
			return failed
		}
		return map[string]string{"": err.Error()}
	}
	return nil
}

func (f *loginForm) trim() {
	f.Email = strings.TrimSpace(f.Email)
}

func (f *registerForm) trim() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
}

func (f *searchForm) trim() {
	f.Keywords = strings.TrimSpace(f.Keywords)
}

func (f *teamForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
}
