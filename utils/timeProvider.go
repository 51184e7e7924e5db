package utils

import "time"

// TimeProvider wraps time.Now so handlers that stamp dates can be tested
type TimeProvider interface {
	Now() time.Time
}

func NewTimeProvider() TimeProvider {
	return &timeProvider{}
}

type timeProvider struct{}

func (*timeProvider) Now() time.Time {
	return time.Now().UTC()
}
