//+build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/environment"
	"github.com/sedtender/tender_portal/routers"
	v1 "github.com/sedtender/tender_portal/routers/api/v1"
	"github.com/sedtender/tender_portal/routers/frontend"
	"github.com/sedtender/tender_portal/services/api"
	"github.com/sedtender/tender_portal/services/multiplexers"
	"github.com/sedtender/tender_portal/services/profile"
	"github.com/sedtender/tender_portal/services/search"
	"github.com/sedtender/tender_portal/utils"
	"github.com/sedtender/tender_portal/utils/metrics"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		v1.NewAPIV1Router,
		profile.NewManager,
		multiplexers.NewSessionStore,
		multiplexers.NewProfileCache,
		multiplexers.NewConnections,
		search.NewPlaceholderSearchService,
		api.NewAPIAuthService,
		api.NewAPITeamService,
		api.NewAPIProfileService,
		api.NewClient,
		metrics.NewMetrics,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}
