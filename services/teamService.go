package services

import (
	"context"

	"github.com/sedtender/tender_portal/entities"
)

// TeamService is the service for interactions with the API's team endpoints
type TeamService interface {
	CreateTeam(ctx context.Context, token string, team entities.Team) (*entities.Team, error)
}
