package ports

//go:generate mockgen -source=health.go -destination=mocks/mock_health.go -package=mocks

import "context"

// HealthChecker checks an external dependency.
type HealthChecker interface {
	// Ping returns nil when the dependency is reachable.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis", "wallet-bridge").
	Name() string
}
