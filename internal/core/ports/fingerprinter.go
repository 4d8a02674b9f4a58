package ports

import "go.trai.ch/mvnconf/internal/core/domain"

// Fingerprinter computes a stable digest of effective resolver options.
//
//go:generate mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a digest that changes whenever any effective option changes.
	Fingerprint(opts *domain.ResolverOptions) string
}
