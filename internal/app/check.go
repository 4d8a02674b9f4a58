package app

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"go.trai.ch/mvnconf/internal/adapters/transport" //nolint:depguard // Proxy parsing is shared with the prober
	"go.trai.ch/mvnconf/internal/core/domain"
	"go.trai.ch/mvnconf/internal/ui/output"
	"go.trai.ch/mvnconf/internal/ui/style"
	"go.trai.ch/zerr"
)

// Finding is the outcome of validating one option.
type Finding struct {
	Subject string
	Value   string
	Err     error
}

// OK reports whether the option passed validation.
func (f Finding) OK() bool {
	return f.Err == nil
}

// Validate checks that the options can drive a resolver: the snapshot policy
// parses, every remote repository is an absolute http(s) URL and both proxies
// are usable addresses.
func Validate(opts *domain.ResolverOptions) []Finding {
	policy := opts.RemoteSnapshotPolicy()
	_, err := domain.ParseSnapshotPolicy(policy)
	findings := []Finding{{Subject: domain.RemoteSnapshotPolicyKey, Value: policy, Err: err}}

	for _, repo := range opts.RemoteRepositories() {
		findings = append(findings, Finding{
			Subject: domain.RemoteReposKey,
			Value:   repo,
			Err:     validateRepositoryURL(repo),
		})
	}

	if addr, ok := opts.HTTPProxy(); ok {
		_, err := transport.ParseProxy(addr)
		findings = append(findings, Finding{Subject: domain.HTTPProxyKey, Value: addr, Err: err})
	}
	if addr, ok := opts.HTTPSProxy(); ok {
		_, err := transport.ParseProxy(addr)
		findings = append(findings, Finding{Subject: domain.HTTPSProxyKey, Value: addr, Err: err})
	}

	return findings
}

func validateRepositoryURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidRepositoryURL.Error()), "url", raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return zerr.With(domain.ErrInvalidRepositoryURL, "url", raw)
	}
	return nil
}

// Check validates the effective options, optionally probes every remote
// repository, and writes one line per finding to w.
func (a *App) Check(ctx context.Context, w io.Writer, req Request, probe bool) error {
	opts, err := a.Options(ctx, req)
	if err != nil {
		return err
	}

	out := output.New(w)
	failures := 0

	if len(opts.RemoteRepositories()) == 0 {
		a.logger.Warn("no remote repositories configured, resolution is limited to " + opts.LocalRepository())
	}

	for _, f := range Validate(opts) {
		if f.OK() {
			_, _ = fmt.Fprintf(w, "%s %s %s\n", output.Paint(out, style.Check, style.Green), f.Subject, f.Value)
			continue
		}
		failures++
		_, _ = fmt.Fprintf(w, "%s %s %q: %v\n", output.Paint(out, style.Cross, style.Red), f.Subject, f.Value, f.Err)
	}

	// Probing with a broken proxy would only repeat the validation failure.
	if probe && failures == 0 {
		results, err := a.prober.Probe(ctx, opts)
		if err != nil {
			return zerr.Wrap(err, "failed to probe remote repositories")
		}
		for _, r := range results {
			via := ""
			if r.Proxy != "" {
				via = fmt.Sprintf(" %s %s", style.Arrow, r.Proxy)
			}
			if r.Reachable() {
				_, _ = fmt.Fprintf(w, "%s %s %d%s\n", output.Paint(out, style.Check, style.Green), r.Repository, r.StatusCode, via)
				continue
			}
			failures++
			reason := r.Err
			if reason == "" {
				reason = fmt.Sprintf("status %d", r.StatusCode)
			}
			_, _ = fmt.Fprintf(w, "%s %s%s: %s\n", output.Paint(out, style.Cross, style.Red), r.Repository, via, reason)
		}
	}

	if failures > 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidOptions, "check failed"), "failures", failures)
	}

	a.logger.Info("resolver options are valid")
	return nil
}
