package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mvnconf/internal/core/domain"
)

var defaultRemotes = []string{
	"http://central.maven.org/maven2/",
	"https://s01.oss.sonatype.org/content/repositories/snapshots/",
}

func TestNewResolverOptions_Defaults(t *testing.T) {
	t.Parallel()

	home := filepath.Join("home", "alice")
	opts := domain.NewResolverOptions(domain.NewEnvironment(nil, home))

	assert.Equal(t, filepath.Join(home, ".m2", "repository"), opts.LocalRepository())
	assert.Equal(t, defaultRemotes, opts.RemoteRepositories())

	_, ok := opts.HTTPProxy()
	assert.False(t, ok)
	_, ok = opts.HTTPSProxy()
	assert.False(t, ok)

	assert.Equal(t, "daily", opts.RemoteSnapshotPolicy())
	assert.True(t, opts.RederivesEmptyRemotes())
}

func TestNewResolverOptions_Overrides(t *testing.T) {
	t.Parallel()

	env := domain.NewEnvironment(map[string]string{
		domain.LocalRepoKey:            "/srv/m2",
		domain.RemoteReposKey:          "https://a.example/ https://b.example/",
		domain.HTTPProxyKey:            "http://proxy:3128",
		domain.HTTPSProxyKey:           "http://secure-proxy:3129",
		domain.RemoteSnapshotPolicyKey: "interval:15",
	}, "/home/alice")

	opts := domain.NewResolverOptions(env)

	assert.Equal(t, "/srv/m2", opts.LocalRepository())
	assert.Equal(t, []string{"https://a.example/", "https://b.example/"}, opts.RemoteRepositories())

	proxy, ok := opts.HTTPProxy()
	assert.True(t, ok)
	assert.Equal(t, "http://proxy:3128", proxy)

	proxy, ok = opts.HTTPSProxy()
	assert.True(t, ok)
	assert.Equal(t, "http://secure-proxy:3129", proxy)

	assert.Equal(t, "interval:15", opts.RemoteSnapshotPolicy())
}

func TestNewResolverOptions_RemoteReposSplitting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "single repository",
			value: "https://a.example/",
			want:  []string{"https://a.example/"},
		},
		{
			name:  "inner empty segments are kept",
			value: "https://a.example/  https://b.example/",
			want:  []string{"https://a.example/", "", "https://b.example/"},
		},
		{
			name:  "leading empty segment is kept",
			value: " https://a.example/",
			want:  []string{"", "https://a.example/"},
		},
		{
			name:  "trailing empty segments are dropped",
			value: "https://a.example/ https://b.example/  ",
			want:  []string{"https://a.example/", "https://b.example/"},
		},
		{
			name:  "empty value yields one empty entry",
			value: "",
			want:  []string{""},
		},
		{
			name:  "only spaces yields no entries",
			value: "   ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := domain.NewEnvironment(map[string]string{domain.RemoteReposKey: tt.value}, "")
			assert.Equal(t, tt.want, domain.NewResolverOptions(env).RemoteRepositories())
		})
	}
}

func TestNewResolverOptions_AbsentRemoteReposUsesBuiltIn(t *testing.T) {
	t.Parallel()

	env := domain.NewEnvironment(map[string]string{domain.LocalRepoKey: "/srv/m2"}, "")
	assert.Equal(t, defaultRemotes, domain.NewResolverOptions(env).RemoteRepositories())
}

func TestResolverOptions_RoundTrip(t *testing.T) {
	t.Parallel()

	values := []string{"", "/tmp/repo", "not a path", "C:\\m2\\repo", "weekly", "interval:abc"}

	for _, v := range values {
		opts := domain.NewResolverOptions(domain.Environment{})

		assert.Equal(t, v, opts.SetLocalRepository(v).LocalRepository())
		assert.Equal(t, v, opts.SetRemoteSnapshotPolicy(v).RemoteSnapshotPolicy())

		got, ok := opts.SetHTTPProxy(v).HTTPProxy()
		assert.True(t, ok)
		assert.Equal(t, v, got)

		got, ok = opts.SetHTTPSProxy(v).HTTPSProxy()
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestResolverOptions_SetRemoteRepositories(t *testing.T) {
	t.Parallel()

	repos := []string{"https://z.example/", "https://a.example/", "https://m.example/"}
	opts := domain.NewResolverOptions(domain.Environment{}).SetRemoteRepositories(repos)

	assert.Equal(t, repos, opts.RemoteRepositories())

	// The stored list is independent of the caller's slice.
	repos[0] = "mutated"
	assert.Equal(t, "https://z.example/", opts.RemoteRepositories()[0])

	// So is the returned one.
	got := opts.RemoteRepositories()
	got[1] = "mutated"
	assert.Equal(t, "https://a.example/", opts.RemoteRepositories()[1])
}

func TestResolverOptions_EmptyRemotesAreRederived(t *testing.T) {
	t.Parallel()

	t.Run("from built-in defaults", func(t *testing.T) {
		t.Parallel()
		opts := domain.NewResolverOptions(domain.Environment{}).SetRemoteRepositories([]string{})
		assert.Equal(t, defaultRemotes, opts.RemoteRepositories())
	})

	t.Run("from nil", func(t *testing.T) {
		t.Parallel()
		opts := domain.NewResolverOptions(domain.Environment{}).SetRemoteRepositories(nil)
		assert.Equal(t, defaultRemotes, opts.RemoteRepositories())
	})

	t.Run("from environment override", func(t *testing.T) {
		t.Parallel()
		env := domain.NewEnvironment(map[string]string{domain.RemoteReposKey: "https://mirror.example/"}, "")
		opts := domain.NewResolverOptions(env).
			SetRemoteRepositories([]string{"https://other.example/"}).
			SetRemoteRepositories([]string{})
		assert.Equal(t, []string{"https://mirror.example/"}, opts.RemoteRepositories())
	})
}

func TestResolverOptions_EmptyRemotesWithoutRederivation(t *testing.T) {
	t.Parallel()

	opts := domain.NewResolverOptions(domain.Environment{}).
		SetRederiveEmptyRemotes(false).
		SetRemoteRepositories(nil)

	got := opts.RemoteRepositories()
	require.NotNil(t, got)
	assert.Empty(t, got)

	var zero domain.ResolverOptions
	assert.False(t, zero.RederivesEmptyRemotes())
	assert.NotNil(t, zero.RemoteRepositories())
}

func TestResolverOptions_FluentChaining(t *testing.T) {
	t.Parallel()

	opts := domain.NewResolverOptions(domain.Environment{})
	chained := opts.
		SetHTTPProxy("http://proxy:8080").
		SetRemoteSnapshotPolicy("always").
		SetLocalRepository("/repo")

	assert.Same(t, opts, chained)

	proxy, ok := opts.HTTPProxy()
	assert.True(t, ok)
	assert.Equal(t, "http://proxy:8080", proxy)
	assert.Equal(t, "always", opts.RemoteSnapshotPolicy())
	assert.Equal(t, "/repo", opts.LocalRepository())
}

func TestResolverOptions_ClearProxies(t *testing.T) {
	t.Parallel()

	env := domain.NewEnvironment(map[string]string{
		domain.HTTPProxyKey:  "http://proxy:3128",
		domain.HTTPSProxyKey: "http://proxy:3129",
	}, "")

	opts := domain.NewResolverOptions(env).ClearHTTPProxy().ClearHTTPSProxy()

	_, ok := opts.HTTPProxy()
	assert.False(t, ok)
	_, ok = opts.HTTPSProxy()
	assert.False(t, ok)
}

func TestResolverOptions_Clone(t *testing.T) {
	t.Parallel()

	env := domain.NewEnvironment(map[string]string{domain.LocalRepoKey: "/repo"}, "/home")
	orig := domain.NewResolverOptions(env).
		SetRemoteRepositories([]string{"https://a.example/"}).
		SetHTTPSProxy("http://proxy:3129")

	clone := orig.Clone()
	clone.SetRemoteRepositories([]string{"https://b.example/"}).
		ClearHTTPSProxy().
		SetLocalRepository("/other")
	clone.Environment().Properties[domain.LocalRepoKey] = "/mutated"

	assert.Equal(t, []string{"https://a.example/"}, orig.RemoteRepositories())
	assert.Equal(t, "/repo", orig.LocalRepository())
	_, ok := orig.HTTPSProxy()
	assert.True(t, ok)
	assert.Equal(t, "/repo", orig.Environment().Properties[domain.LocalRepoKey])
}

func TestEnvironment_SnapshotIsCopied(t *testing.T) {
	t.Parallel()

	props := map[string]string{domain.RemoteSnapshotPolicyKey: "never"}
	env := domain.NewEnvironment(props, "")
	props[domain.RemoteSnapshotPolicyKey] = "always"

	assert.Equal(t, "never", domain.NewResolverOptions(env).RemoteSnapshotPolicy())
}

func TestKnownKeys(t *testing.T) {
	t.Parallel()

	for _, k := range domain.KnownKeys() {
		assert.True(t, domain.IsKnownKey(k), k)
	}
	assert.False(t, domain.IsKnownKey("vertx.maven.unknown"))
}
