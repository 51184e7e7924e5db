package frontend

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	loginPage, _ = newFrontendPage("LoginPage", "login.gohtml", nil)

	dashboardPage, _ = newFrontendPage("DashboardPage", "dashboard.gohtml",
		frontendComponents{
			navbar,
		})

	profilePage, _ = newFrontendPage("ProfilePage", "profile.gohtml",
		frontendComponents{
			profileOverviewPanel,
			scorePanel,
		})
)

func newFrontendPage(pageName, templatePath string, components frontendComponents) (frontendPage, error) {
	seen := make(map[string]bool, len(components))
	for _, component := range components {
		if component.name == "" {
			return frontendPage{}, errors.New(fmt.Sprintf("component of page %s has no name", pageName))
		}
		if seen[component.name] {
			return frontendPage{}, errors.New(fmt.Sprintf("component %s is used twice on page %s", component.name, pageName))
		}
		seen[component.name] = true
	}

	return frontendPage{
		pageName,
		templatePath,
		components,
	}, nil
}

type frontendPage struct {
	name         string
	templateName string
	components   frontendComponents
}

// componentsData runs the data providers of all of the page's components
func (p frontendPage) componentsData(ctx *gin.Context, r *frontendRouter) (map[string]interface{}, error) {
	data := make(map[string]interface{}, len(p.components))
	for _, component := range p.components {
		componentData, err := component.dataProvider(ctx, r)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("could not get data for component %s", component.name))
		}
		data[component.name] = componentData
	}
	return data, nil
}

// renderPage renders page with the given alert and page data.
// A component that fails to provide its data is logged and rendered empty
func (r *frontendRouter) renderPage(ctx *gin.Context, page frontendPage, status int, alert *alertDataModel, data CustomPageData) {
	components, err := page.componentsData(ctx, r)
	if err != nil {
		r.logger.Error("could not render page components", zap.String("page", page.name), zap.Error(err))
		components = map[string]interface{}{}
	}

	ctx.HTML(status, page.templateName, pageDataModel{
		Cfg:            r.cfg,
		Alert:          alert,
		Components:     components,
		CustomPageData: data,
	})
}

func (r *frontendRouter) renderOK(ctx *gin.Context, page frontendPage, alert *alertDataModel, data CustomPageData) {
	r.renderPage(ctx, page, http.StatusOK, alert, data)
}

func successAlert(message string) *alertDataModel {
	return &alertDataModel{Message: message, Type: alertSuccess}
}

func errorAlert(message string) *alertDataModel {
	return &alertDataModel{Message: message, Type: alertError}
}

func infoAlert(message string) *alertDataModel {
	return &alertDataModel{Message: message, Type: alertInfo}
}
