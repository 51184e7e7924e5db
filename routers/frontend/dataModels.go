package frontend

import (
	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/config/role"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/services/profile"
)

type alertType string

const (
	alertSuccess alertType = "success"
	alertError   alertType = "error"
	alertInfo    alertType = "info"
)

type pageDataModel struct {
	Cfg        *config.AppConfig
	Alert      *alertDataModel
	Components map[string]interface{}
	CustomPageData
}

type CustomPageData interface{}

// alertDataModel is a message shown at the top of a page.
// When RedirectTo is set the page navigates there once the redirect delay passed
type alertDataModel struct {
	Message    string
	Type       alertType
	RedirectTo string
}

type navbarDataModel struct {
	User       *entities.User
	RoleLabel  string
	BadgeClass string
}

type loginPageDataModel struct {
	Tab      string
	Email    string
	FullName string
	Role     role.UserRole
	Roles    []role.UserRole
}

type dashboardPageDataModel struct {
	Modal  string
	Search entities.SearchQuery
	Team   entities.Team
	Plans  []entities.TeamPlan
}

type profilePageDataModel struct {
	LoginRequired bool
	LoginEmail    string
	View          profile.View
	Sections      []profile.Section
}
