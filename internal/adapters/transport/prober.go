package transport

import (
	"context"
	"net/http"

	"go.trai.ch/mvnconf/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

const defaultProbeConcurrency = 4

// Prober implements ports.RepositoryProber with HEAD requests.
type Prober struct {
	concurrency int
}

// NewProber creates a Prober that checks a few repositories at a time.
func NewProber() *Prober {
	return &Prober{concurrency: defaultProbeConcurrency}
}

// Probe sends a HEAD request to every remote repository through the configured
// proxies. Results keep the lookup order of the repositories.
func (p *Prober) Probe(ctx context.Context, opts *domain.ResolverOptions) ([]domain.ProbeResult, error) {
	client, err := NewClient(opts)
	if err != nil {
		return nil, err
	}
	proxy, err := NewProxyFunc(opts)
	if err != nil {
		return nil, err
	}

	repos := opts.RemoteRepositories()
	results := make([]domain.ProbeResult, len(repos))

	var g errgroup.Group
	g.SetLimit(max(p.concurrency, 1))

	for i, repo := range repos {
		g.Go(func() error {
			results[i] = probeOne(ctx, client, proxy, repo)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func probeOne(ctx context.Context, client *http.Client, proxy ProxyFunc, repo string) domain.ProbeResult {
	result := domain.ProbeResult{Repository: repo}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, repo, http.NoBody)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	if u, _ := proxy(req); u != nil {
		result.Proxy = u.Redacted()
	}

	resp, err := client.Do(req)
	if err != nil {
		result.Err = err.Error()
		return result
	}
	_ = resp.Body.Close()

	result.StatusCode = resp.StatusCode
	return result
}
