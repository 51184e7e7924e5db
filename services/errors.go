package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is the error returned by services when
	// the API rejects the session token
	ErrUnauthorized = errors.New("session token was rejected by the API")
	// ErrNoProfile is the error returned when an operation needs
	// a loaded profile but none is available
	ErrNoProfile = errors.New("no profile data available")
	// ErrInvalidSection is the error returned when a profile section
	// does not exist
	ErrInvalidSection = errors.New("profile section does not exist")
	// ErrInvalidForm is the error returned when submitted form data
	// fails client side validation
	ErrInvalidForm = errors.New("form data is invalid")
	// ErrUnknownProvider is the error returned when the configured
	// storage provider is not supported
	ErrUnknownProvider = errors.New("storage provider is not supported")
)

const (
	// NetworkErrorMessage is shown when the API could not be reached
	// or its error payload could not be read
	NetworkErrorMessage = "Network error"
	somethingWentWrong  = "something went wrong"
)

// APIError is the error returned by services when the API
// responds with a non-success status
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("api request failed (%d): %s", e.Status, e.Message)
}

// UnauthorizedError is the error returned by services when the API responds with 401.
// errors.Cause unwraps it to ErrUnauthorized
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnauthorized.Error(), e.Message)
}

func (e *UnauthorizedError) Cause() error {
	return ErrUnauthorized
}

// ValidationError is the error returned when form data fails client side validation.
// Its message is safe to show to the user
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Cause lets errors.Cause unwrap validation errors to ErrInvalidForm
func (e *ValidationError) Cause() error {
	return ErrInvalidForm
}

// UserMessage returns the message that should be shown to the user for err
func UserMessage(err error) string {
	for err != nil {
		switch e := err.(type) {
		case *APIError:
			return e.Message
		case *UnauthorizedError:
			return e.Message
		case *ValidationError:
			return e.Message
		}
		if err == ErrNoProfile {
			return "No profile data to export"
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return somethingWentWrong
}
