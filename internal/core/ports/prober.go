package ports

import (
	"context"

	"go.trai.ch/mvnconf/internal/core/domain"
)

// RepositoryProber checks that remote repositories are reachable with the configured proxies.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type RepositoryProber interface {
	// Probe returns one result per remote repository, in lookup order.
	// Unreachable repositories are reported in the results, not as an error.
	Probe(ctx context.Context, opts *domain.ResolverOptions) ([]domain.ProbeResult, error)
}
