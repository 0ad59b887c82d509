package capture

import (
	"context"
	"fmt"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Services is the capability a rule uses to consult capturing services.
// Every successful consultation is appended to the recorder, if any.
type Services struct {
	locator  ports.ServiceLocator
	recorder *Recorder
}

// NewServices creates a Services that records into recorder.
// A nil recorder reaches the same services without recording anything.
func NewServices(locator ports.ServiceLocator, recorder *Recorder) *Services {
	return &Services{locator: locator, recorder: recorder}
}

// Call consults the named service with input and returns its output.
func (s *Services) Call(ctx context.Context, name string, input any) (any, error) {
	svc, ok := s.locator.Find(name)
	if !ok {
		return nil, zerr.With(domain.ErrServiceNotFound, "service", name)
	}

	output, err := svc.Provide(ctx, input)
	if err != nil {
		return nil, zerr.With(err, "service", name)
	}

	if s.recorder != nil {
		s.recorder.Register(name, domain.ImplicitInputRecord{Input: input, Output: output})
	}
	return output, nil
}

// Call consults the named service and asserts its output type.
// A nil output yields the zero value of Out.
func Call[In, Out any](ctx context.Context, s *Services, name string, input In) (Out, error) {
	var zero Out
	output, err := s.Call(ctx, name, input)
	if err != nil {
		return zero, err
	}
	if output == nil {
		return zero, nil
	}
	typed, ok := output.(Out)
	if !ok {
		return zero, zerr.With(zerr.With(domain.ErrServiceTypeMismatch, "service", name), "type", fmt.Sprintf("%T", output))
	}
	return typed, nil
}
