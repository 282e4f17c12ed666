package service

import (
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

// TelemetryService is the external observability collaborator: it records the
// current actor and reports exceptions. Best-effort only; it never blocks or
// alters control flow.
type TelemetryService interface {
	SetActor(id uuid.UUID, email, name string)
	ClearActor()
	CaptureException(err error)
}

type sentryTelemetry struct{}

func NewTelemetryService() TelemetryService {
	return &sentryTelemetry{}
}

func (s *sentryTelemetry) SetActor(id uuid.UUID, email, name string) {
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetUser(sentry.User{
			ID:       id.String(),
			Email:    email,
			Username: name,
		})
	})
}

func (s *sentryTelemetry) ClearActor() {
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetUser(sentry.User{})
	})
}

func (s *sentryTelemetry) CaptureException(err error) {
	if err == nil {
		return
	}
	sentry.CaptureException(err)
}
