package health

import "context"

// StorePinger checks storage availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker checks that the catalog can serve snapshots.
type CatalogChecker interface {
	HealthCheck(ctx context.Context) error
}
