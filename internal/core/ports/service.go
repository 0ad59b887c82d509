package ports

import "context"

// CapturingService is an oracle a rule may consult while executing.
// Every consultation is recorded so later runs can ask whether the observed
// answer still holds.
//
//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type CapturingService interface {
	// Name identifies the service across processes.
	Name() string

	// Provide answers a consultation.
	Provide(ctx context.Context, input any) (any, error)

	// IsUpToDate reports whether Provide would still return output for input.
	IsUpToDate(ctx context.Context, input, output any) (bool, error)
}

// ServiceLocator resolves capturing services by name.
type ServiceLocator interface {
	// Find returns the service registered under name.
	Find(name string) (CapturingService, bool)
}
