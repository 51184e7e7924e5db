package v1

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/sedtender/tender_portal/routers/api/models"
	"github.com/sedtender/tender_portal/services"
	"github.com/sedtender/tender_portal/services/profile"
	"github.com/sedtender/tender_portal/utils/validation"
	"go.uber.org/zap"
)

const invalidEmailMessage = "Please enter a valid email address"

// GET: /api/ui/v1/success-rate
// Query:    wins int
//           applications int
// Response: success_rate int
//           status int
//           error string
func (r *apiV1Router) SuccessRate(ctx *gin.Context) {
	wins := profile.ParseInt(ctx.Query("wins"))
	applications := profile.ParseInt(ctx.Query("applications"))

	ctx.JSON(http.StatusOK, successRateRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		SuccessRate: profile.SuccessRate(wins, applications),
	})
}

// POST: /api/ui/v1/validate
// x-www-form-urlencoded
// Request:  field string
//           value string
// Response: valid bool
//           error string
//           status int
func (r *apiV1Router) Validate(ctx *gin.Context) {
	field := ctx.PostForm("field")
	value := ctx.PostForm("value")

	var message string
	switch {
	case field == "email":
		if !validation.ValidEmail(value) {
			message = invalidEmailMessage
		}
	case field == "password":
		if utf8.RuneCountInString(value) < r.cfg.Auth.PasswordMinLength {
			message = fmt.Sprintf("Password must be at least %d characters long", r.cfg.Auth.PasswordMinLength)
		}
	case profile.IsPercentageField(field):
		if err := profile.ValidatePercentage(field, value); err != nil {
			message = services.UserMessage(err)
		}
	default:
		r.logger.Warn("validation requested for unknown field", zap.String("field", field))
		models.SendAPIError(ctx, http.StatusBadRequest, fmt.Sprintf("field %s cannot be validated", field))
		return
	}

	ctx.JSON(http.StatusOK, validateRes{
		Response: models.Response{
			Status: http.StatusOK,
			Err:    message,
		},
		Valid: message == "",
	})
}
