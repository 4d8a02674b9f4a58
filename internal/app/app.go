// Package app implements the application layer for mvnconf.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.trai.ch/mvnconf/internal/core/domain"
	"go.trai.ch/mvnconf/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Show.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// App represents the main application logic.
type App struct {
	loader      ports.EnvironmentLoader
	logger      ports.Logger
	fingerprint ports.Fingerprinter
	prober      ports.RepositoryProber
	getwd       func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.EnvironmentLoader,
	log ports.Logger,
	fingerprint ports.Fingerprinter,
	prober ports.RepositoryProber,
) *App {
	return &App{
		loader:      loader,
		logger:      log,
		fingerprint: fingerprint,
		prober:      prober,
		getwd:       os.Getwd,
	}
}

// WithWorkingDir makes the App resolve the config file relative to dir instead
// of the process working directory.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// Overrides are explicit option values applied through the setters after the
// defaults have been derived. Nil fields leave the default untouched.
type Overrides struct {
	LocalRepository    *string
	RemoteRepositories []string
	HTTPProxy          *string
	HTTPSProxy         *string
	SnapshotPolicy     *string
	// NoRemote clears the remote repositories and disables their re-derivation.
	NoRemote bool
}

// Request describes where resolver options come from.
type Request struct {
	// ConfigPath is an explicit config file; empty searches the working directory upwards.
	ConfigPath string
	// Defines are raw key=value property definitions.
	Defines   []string
	Overrides Overrides
}

// Options derives the resolver options for req.
func (a *App) Options(_ context.Context, req Request) (*domain.ResolverOptions, error) {
	defines, err := ParseDefines(req.Defines)
	if err != nil {
		return nil, err
	}

	cwd, err := a.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	env, err := a.loader.Load(cwd, req.ConfigPath, defines)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load resolver environment")
	}

	return req.Overrides.apply(domain.NewResolverOptions(env)), nil
}

func (o Overrides) apply(opts *domain.ResolverOptions) *domain.ResolverOptions {
	if o.LocalRepository != nil {
		opts.SetLocalRepository(*o.LocalRepository)
	}
	if o.RemoteRepositories != nil {
		opts.SetRemoteRepositories(o.RemoteRepositories)
	}
	if o.NoRemote {
		opts.SetRemoteRepositories(nil).SetRederiveEmptyRemotes(false)
	}
	if o.HTTPProxy != nil {
		opts.SetHTTPProxy(*o.HTTPProxy)
	}
	if o.HTTPSProxy != nil {
		opts.SetHTTPSProxy(*o.HTTPSProxy)
	}
	if o.SnapshotPolicy != nil {
		opts.SetRemoteSnapshotPolicy(*o.SnapshotPolicy)
	}
	return opts
}

// optionsView is the rendered form of resolver options. Absent proxies render as null.
type optionsView struct {
	LocalRepository      string   `json:"localRepository"      yaml:"localRepository"`
	RemoteRepositories   []string `json:"remoteRepositories"   yaml:"remoteRepositories"`
	HTTPProxy            *string  `json:"httpProxy"            yaml:"httpProxy"`
	HTTPSProxy           *string  `json:"httpsProxy"           yaml:"httpsProxy"`
	RemoteSnapshotPolicy string   `json:"remoteSnapshotPolicy" yaml:"remoteSnapshotPolicy"`
	RederiveEmptyRemotes bool     `json:"rederiveEmptyRemotes" yaml:"rederiveEmptyRemotes"`
	Fingerprint          string   `json:"fingerprint"          yaml:"fingerprint"`
}

func (a *App) view(opts *domain.ResolverOptions) optionsView {
	v := optionsView{
		LocalRepository:      opts.LocalRepository(),
		RemoteRepositories:   opts.RemoteRepositories(),
		RemoteSnapshotPolicy: opts.RemoteSnapshotPolicy(),
		RederiveEmptyRemotes: opts.RederivesEmptyRemotes(),
		Fingerprint:          a.fingerprint.Fingerprint(opts),
	}
	if p, ok := opts.HTTPProxy(); ok {
		v.HTTPProxy = &p
	}
	if p, ok := opts.HTTPSProxy(); ok {
		v.HTTPSProxy = &p
	}
	return v
}

// Show writes the effective resolver options to w in the given format.
func (a *App) Show(ctx context.Context, w io.Writer, req Request, format string) error {
	if format == "" {
		format = FormatYAML
	}
	if format != FormatYAML && format != FormatJSON {
		return zerr.With(domain.ErrUnknownFormat, "format", format)
	}

	opts, err := a.Options(ctx, req)
	if err != nil {
		return err
	}

	v := a.view(opts)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, domain.ErrRenderFailed.Error())
		}
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, domain.ErrRenderFailed.Error())
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, domain.ErrRenderFailed.Error())
		}
	}

	a.logger.Info(fmt.Sprintf("%d remote repositories, snapshot policy %s",
		len(v.RemoteRepositories), v.RemoteSnapshotPolicy))
	return nil
}
