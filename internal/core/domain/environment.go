package domain

import (
	"maps"
	"strings"
)

// Environment is a snapshot of the process-wide configuration that resolver
// options derive their defaults from. It is taken once and never consults the
// live process state afterwards.
type Environment struct {
	// Properties maps property keys (e.g. "vertx.maven.localRepo") to values.
	Properties map[string]string

	// UserHome is the home directory used for the default local repository.
	UserHome string
}

// NewEnvironment creates a snapshot from the given properties and home directory.
// The properties map is copied.
func NewEnvironment(props map[string]string, home string) Environment {
	return Environment{
		Properties: maps.Clone(props),
		UserHome:   home,
	}
}

// Lookup returns the value for key and whether it was present.
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e.Properties[key]
	return v, ok
}

// Get returns the value for key, or fallback when the key is absent.
func (e Environment) Get(key, fallback string) string {
	if v, ok := e.Lookup(key); ok {
		return v
	}
	return fallback
}

// DefaultRemoteRepositories derives the remote repository list from the
// snapshot. The built-in list applies only when the key is absent; a present
// value is split on single spaces with nothing dropped but trailing empty
// segments, so an empty value yields one empty entry.
func (e Environment) DefaultRemoteRepositories() []string {
	return splitRepositories(e.Get(RemoteReposKey, DefaultRemoteRepos))
}

func splitRepositories(s string) []string {
	parts := strings.Split(s, " ")
	if len(parts) == 1 {
		return parts
	}

	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return parts[:end:end]
}
