package domain

import "slices"

// ResolverOptions configures a Maven-layout dependency resolver.
//
// Defaults are taken from an Environment snapshot when the options are built.
// Setters never validate and return the receiver so calls can be chained:
//
//	opts := domain.NewResolverOptions(env).
//		SetHTTPProxy("http://proxy:3128").
//		SetRemoteSnapshotPolicy("interval:30")
//
// ResolverOptions is not safe for concurrent mutation. Configure it on one
// goroutine, then share it read-only or hand each worker a Clone.
type ResolverOptions struct {
	env Environment

	localRepository    string
	remoteRepositories []string

	httpProxy     string
	hasHTTPProxy  bool
	httpsProxy    string
	hasHTTPSProxy bool

	remoteSnapshotPolicy string

	rederiveEmptyRemotes bool
}

// NewResolverOptions creates options whose defaults come from env.
// Re-derivation of an empty remote repository list is enabled.
func NewResolverOptions(env Environment) *ResolverOptions {
	o := &ResolverOptions{
		env:                  env,
		localRepository:      env.Get(LocalRepoKey, DefaultLocalRepository(env.UserHome)),
		remoteRepositories:   env.DefaultRemoteRepositories(),
		remoteSnapshotPolicy: env.Get(RemoteSnapshotPolicyKey, DefaultRemoteSnapshotPolicy),
		rederiveEmptyRemotes: true,
	}
	o.httpProxy, o.hasHTTPProxy = env.Lookup(HTTPProxyKey)
	o.httpsProxy, o.hasHTTPSProxy = env.Lookup(HTTPSProxyKey)
	return o
}

// Environment returns the snapshot the defaults were derived from.
func (o *ResolverOptions) Environment() Environment {
	return o.env
}

// LocalRepository returns the path of the local repository.
// By default it is <home>/.m2/repository.
func (o *ResolverOptions) LocalRepository() string {
	return o.localRepository
}

// SetLocalRepository sets the path of the local repository.
func (o *ResolverOptions) SetLocalRepository(path string) *ResolverOptions {
	o.localRepository = path
	return o
}

// RemoteRepositories returns the remote repositories in lookup order.
//
// When the stored list is empty and re-derivation is enabled, the list is
// derived again from the environment snapshot. The result is never nil and is
// a copy that callers may modify.
func (o *ResolverOptions) RemoteRepositories() []string {
	if len(o.remoteRepositories) == 0 {
		if o.rederiveEmptyRemotes {
			return o.env.DefaultRemoteRepositories()
		}
		return []string{}
	}
	return slices.Clone(o.remoteRepositories)
}

// SetRemoteRepositories replaces the remote repositories. The repositories must
// use the Maven 2 layout. An empty list is stored as is; whether it survives the
// next read depends on SetRederiveEmptyRemotes.
func (o *ResolverOptions) SetRemoteRepositories(repos []string) *ResolverOptions {
	o.remoteRepositories = slices.Clone(repos)
	return o
}

// RederivesEmptyRemotes reports whether an empty remote list is replaced by the
// environment default on read.
func (o *ResolverOptions) RederivesEmptyRemotes() bool {
	return o.rederiveEmptyRemotes
}

// SetRederiveEmptyRemotes controls re-derivation of an empty remote list.
// Disable it to resolve from the local repository only.
func (o *ResolverOptions) SetRederiveEmptyRemotes(enable bool) *ResolverOptions {
	o.rederiveEmptyRemotes = enable
	return o
}

// HTTPProxy returns the proxy address for HTTP requests and whether one is set.
func (o *ResolverOptions) HTTPProxy() (string, bool) {
	return o.httpProxy, o.hasHTTPProxy
}

// SetHTTPProxy sets the proxy address for HTTP requests.
func (o *ResolverOptions) SetHTTPProxy(addr string) *ResolverOptions {
	o.httpProxy, o.hasHTTPProxy = addr, true
	return o
}

// ClearHTTPProxy removes the HTTP proxy.
func (o *ResolverOptions) ClearHTTPProxy() *ResolverOptions {
	o.httpProxy, o.hasHTTPProxy = "", false
	return o
}

// HTTPSProxy returns the proxy address for HTTPS requests and whether one is set.
func (o *ResolverOptions) HTTPSProxy() (string, bool) {
	return o.httpsProxy, o.hasHTTPSProxy
}

// SetHTTPSProxy sets the proxy address for HTTPS requests.
func (o *ResolverOptions) SetHTTPSProxy(addr string) *ResolverOptions {
	o.httpsProxy, o.hasHTTPSProxy = addr, true
	return o
}

// ClearHTTPSProxy removes the HTTPS proxy.
func (o *ResolverOptions) ClearHTTPSProxy() *ResolverOptions {
	o.httpsProxy, o.hasHTTPSProxy = "", false
	return o
}

// RemoteSnapshotPolicy returns the remote snapshot policy ("daily" by default).
func (o *ResolverOptions) RemoteSnapshotPolicy() string {
	return o.remoteSnapshotPolicy
}

// SetRemoteSnapshotPolicy sets the remote snapshot policy. Meaningful values are
// daily, never, always and interval:X where X is the number of minutes between
// two checks. The value is not validated; see ParseSnapshotPolicy.
func (o *ResolverOptions) SetRemoteSnapshotPolicy(policy string) *ResolverOptions {
	o.remoteSnapshotPolicy = policy
	return o
}

// Clone returns a deep copy of the options.
func (o *ResolverOptions) Clone() *ResolverOptions {
	c := *o
	c.remoteRepositories = slices.Clone(o.remoteRepositories)
	c.env = NewEnvironment(o.env.Properties, o.env.UserHome)
	return &c
}
