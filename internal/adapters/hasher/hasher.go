// Package hasher computes fingerprints of resolver options.
package hasher

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mvnconf/internal/core/domain"
)

// Hasher implements ports.Fingerprinter using xxhash64.
type Hasher struct{}

// New creates a new Hasher.
func New() *Hasher {
	return &Hasher{}
}

// Fingerprint returns 16 hex characters digesting the effective options.
// Every field is written as a length-prefixed record so that adjacent values
// cannot run into each other, and the remote repositories keep their order.
func (h *Hasher) Fingerprint(opts *domain.ResolverOptions) string {
	d := xxhash.New()

	writeField(d, "localRepository", opts.LocalRepository())
	for _, repo := range opts.RemoteRepositories() {
		writeField(d, "remoteRepository", repo)
	}
	if proxy, ok := opts.HTTPProxy(); ok {
		writeField(d, "httpProxy", proxy)
	}
	if proxy, ok := opts.HTTPSProxy(); ok {
		writeField(d, "httpsProxy", proxy)
	}
	writeField(d, "remoteSnapshotPolicy", opts.RemoteSnapshotPolicy())

	return fmt.Sprintf("%016x", d.Sum64())
}

func writeField(d *xxhash.Digest, name, value string) {
	_, _ = d.WriteString(name)
	_, _ = d.WriteString(":")
	_, _ = d.WriteString(strconv.Itoa(len(value)))
	_, _ = d.WriteString(":")
	_, _ = d.WriteString(value)
	_, _ = d.WriteString("\n")
}
