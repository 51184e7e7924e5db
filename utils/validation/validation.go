package validation

import (
	"reflect"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"
	validator "gopkg.in/go-playground/validator.v8"
)

// EmailTag is the binding tag that checks a field holds an e-mail address
const EmailTag = "portal_email"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	registerOnce sync.Once
	registerErr  error
)

// ValidEmail reports whether s looks like an e-mail address
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Register adds the portal's validators to gin's binding validator.
// It is safe to call more than once
func Register() error {
	registerOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("binding validator is not validator.v8")
			return
		}
		registerErr = engine.RegisterValidation(EmailTag, emailValidator)
	})
	return registerErr
}

func emailValidator(_ *validator.Validate, _ reflect.Value, _ reflect.Value, field reflect.Value, _ reflect.Type, fieldKind reflect.Kind, _ string) bool {
	if fieldKind != reflect.String {
		return false
	}
	// empty values are reported by the required tag
	return field.String() == "" || ValidEmail(field.String())
}

// FailedTags returns the validation tags that failed for each struct field in err
func FailedTags(err error) map[string]string {
	validationErrs, ok := errors.Cause(err).(validator.ValidationErrors)
	if !ok {
		return nil
	}

	failed := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		failed[fieldErr.Field] = fieldErr.Tag
	}
	return failed
}
