package ports

import "time"

// Clock provides the timestamp recorded on new cache entries.
//
//go:generate go run go.uber.org/mock/mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	Now() time.Time
}
