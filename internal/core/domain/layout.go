package domain

import "path/filepath"

// Property keys consulted when deriving default resolver options.
const (
	// LocalRepoKey overrides the local repository path.
	LocalRepoKey = "vertx.maven.localRepo"

	// RemoteReposKey overrides the remote repository list (space-delimited URLs).
	RemoteReposKey = "vertx.maven.remoteRepos"

	// HTTPProxyKey sets the proxy used for HTTP requests.
	HTTPProxyKey = "vertx.maven.httpProxy"

	// HTTPSProxyKey sets the proxy used for HTTPS requests.
	HTTPSProxyKey = "vertx.maven.httpsProxy"

	// RemoteSnapshotPolicyKey overrides the remote snapshot policy.
	RemoteSnapshotPolicyKey = "vertx.maven.remoteSnapshotPolicy"
)

const (
	// DefaultRemoteRepos is the space-delimited list of remote repositories used when none is configured.
	DefaultRemoteRepos = "http://central.maven.org/maven2/ https://s01.oss.sonatype.org/content/repositories/snapshots/"

	// DefaultRemoteSnapshotPolicy is the snapshot policy used when none is configured.
	DefaultRemoteSnapshotPolicy = "daily"

	// M2DirName is the name of the per-user Maven directory.
	M2DirName = ".m2"

	// RepositoryDirName is the name of the local repository directory inside M2DirName.
	RepositoryDirName = "repository"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "mvnconf.yaml"
)

// KnownKeys lists every property key understood by ResolverOptions, in a fixed order.
func KnownKeys() []string {
	return []string{
		LocalRepoKey,
		RemoteReposKey,
		HTTPProxyKey,
		HTTPSProxyKey,
		RemoteSnapshotPolicyKey,
	}
}

// IsKnownKey reports whether key is one of the resolver property keys.
func IsKnownKey(key string) bool {
	switch key {
	case LocalRepoKey, RemoteReposKey, HTTPProxyKey, HTTPSProxyKey, RemoteSnapshotPolicyKey:
		return true
	default:
		return false
	}
}

// DefaultLocalRepository returns <home>/.m2/repository.
// An empty home yields the relative path .m2/repository.
func DefaultLocalRepository(home string) string {
	return filepath.Join(home, M2DirName, RepositoryDirName)
}
