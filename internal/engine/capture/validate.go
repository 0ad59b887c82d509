package capture

import (
	"context"
	"fmt"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
)

// UpToDate reports whether every record in implicits still holds.
//
// Services are resolved by name. A service that cannot be resolved, a record
// reported stale and a predicate that fails all make the whole set stale; the
// returned reason says which. There is no partial reuse.
func UpToDate(ctx context.Context, locator ports.ServiceLocator, implicits domain.Implicits) (bool, string) {
	for name, records := range implicits.All() {
		svc, ok := locator.Find(name)
		if !ok {
			return false, fmt.Sprintf("service %q is not available", name)
		}
		for i, r := range records {
			current, err := svc.IsUpToDate(ctx, r.Input, r.Output)
			if err != nil {
				return false, fmt.Sprintf("service %q failed to check record %d: %v", name, i, err)
			}
			if !current {
				return false, fmt.Sprintf("service %q reports record %d as stale", name, i)
			}
		}
	}
	return true, ""
}
