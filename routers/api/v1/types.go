package v1

import (
	"github.com/sedtender/tender_portal/routers/api/models"
)

type successRateRes struct {
	models.Response
	SuccessRate int `json:"success_rate"`
}

type validateRes struct {
	models.Response
	Valid bool `json:"valid"`
}
