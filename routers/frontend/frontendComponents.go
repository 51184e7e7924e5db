package frontend

import (
	"github.com/gin-gonic/gin"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/services/profile"
)

const (
	userCtxKey        = "current_user"
	profileViewCtxKey = "profile_view"
)

var (
	navbar = frontendComponent{
		name:         "Navbar",
		dataProvider: navbarDataProvider,
	}

	profileOverviewPanel = frontendComponent{
		name:         "ProfileOverview",
		dataProvider: profileOverviewDataProvider,
	}

	scorePanel = frontendComponent{
		name:         "ScorePanel",
		dataProvider: scorePanelDataProvider,
	}
)

func navbarDataProvider(ctx *gin.Context, _ *frontendRouter) (interface{}, error) {
	user := currentUser(ctx)
	if user == nil {
		return navbarDataModel{}, nil
	}

	return navbarDataModel{
		User:       user,
		RoleLabel:  user.Role.Label(),
		BadgeClass: user.Role.BadgeClass(),
	}, nil
}

func profileOverviewDataProvider(ctx *gin.Context, r *frontendRouter) (interface{}, error) {
	return currentProfileView(ctx, r).Overview, nil
}

func scorePanelDataProvider(ctx *gin.Context, r *frontendRouter) (interface{}, error) {
	return currentProfileView(ctx, r).Score, nil
}

func currentUser(ctx *gin.Context) *entities.User {
	value, exists := ctx.Get(userCtxKey)
	if !exists {
		return nil
	}
	user, _ := value.(*entities.User)
	return user
}

func currentProfileView(ctx *gin.Context, r *frontendRouter) profile.View {
	if value, exists := ctx.Get(profileViewCtxKey); exists {
		if view, ok := value.(profile.View); ok {
			return view
		}
	}
	return profile.NewView(nil, r.cfg.Score.CircleRadius)
}

type frontendComponent struct {
	name         string
	dataProvider frontendComponentDataProvider
}

type frontendComponents []frontendComponent

type frontendComponentDataProvider func(*gin.Context, *frontendRouter) (interface{}, error)
