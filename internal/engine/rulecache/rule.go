// Package rulecache memoizes rule executions across processes.
package rulecache

import (
	"context"
	"reflect"
	"slices"

	"go.trai.ch/rulecache/internal/engine/capture"
)

// Action is the implementation of a rule. It fills details and may consult
// capturing services through services; those consultations become the
// implicit inputs of the cached result.
type Action[D any] interface {
	Execute(ctx context.Context, details D, services *capture.Services) error
}

// ActionFunc adapts a function to Action.
type ActionFunc[D any] func(ctx context.Context, details D, services *capture.Services) error

// Execute calls f.
func (f ActionFunc[D]) Execute(ctx context.Context, details D, services *capture.Services) error {
	return f(ctx, details, services)
}

// Rule identifies a transformation: an implementation identity, ordered
// parameters and whether its results may be cached. A Rule is immutable.
type Rule[D any] struct {
	identity  string
	params    []any
	cacheable bool
	action    Action[D]
}

// NewRule creates a cacheable rule running action.
// The identity is the qualified name of the action's type.
func NewRule[D any](action Action[D], params ...any) *Rule[D] {
	return &Rule[D]{
		identity:  identityOf(action),
		params:    slices.Clone(params),
		cacheable: true,
		action:    action,
	}
}

// WithIdentity returns a copy of r with another identity. Rules built from
// an ActionFunc need one, since all of them share the same type.
func (r *Rule[D]) WithIdentity(identity string) *Rule[D] {
	c := *r
	c.identity = identity
	return &c
}

// NotCacheable returns a copy of r whose executions bypass the cache.
func (r *Rule[D]) NotCacheable() *Rule[D] {
	c := *r
	c.cacheable = false
	return &c
}

// Identity returns the implementation identity.
func (r *Rule[D]) Identity() string {
	return r.identity
}

// Params returns a copy of the parameters.
func (r *Rule[D]) Params() []any {
	return slices.Clone(r.params)
}

// Cacheable reports whether results of r may be cached.
func (r *Rule[D]) Cacheable() bool {
	return r.cacheable
}

func identityOf(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
