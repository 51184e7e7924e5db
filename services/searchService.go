package services

import (
	"context"

	"github.com/sedtender/tender_portal/entities"
)

// SearchService is the service for tender searches
type SearchService interface {
	Search(ctx context.Context, query entities.SearchQuery) error
}
