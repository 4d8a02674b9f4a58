// Package config provides the environment loader for mvnconf.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/mvnconf/internal/core/domain"
	"go.trai.ch/mvnconf/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.EnvironmentLoader on top of a YAML file and the
// process environment.
type Loader struct {
	Logger    ports.Logger
	FS        FileSystem
	LookupEnv func(key string) (string, bool)
	UserHome  func() (string, error)
}

// NewLoader creates a Loader backed by the real filesystem and process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:    logger,
		FS:        NewOSFS(),
		LookupEnv: os.LookupEnv,
		UserHome:  os.UserHomeDir,
	}
}

// EnvVarName returns the environment variable spelling of a property key,
// e.g. vertx.maven.localRepo becomes VERTX_MAVEN_LOCALREPO.
func EnvVarName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Load merges the config file, the process environment and defines, in
// increasing order of precedence.
func (l *Loader) Load(cwd, configPath string, defines map[string]string) (domain.Environment, error) {
	props := make(map[string]string)

	path, err := l.findConfiguration(cwd, configPath)
	if err != nil {
		return domain.Environment{}, err
	}

	if path != "" {
		file, err := l.readFile(path)
		if err != nil {
			return domain.Environment{}, err
		}
		for _, key := range slices.Sorted(maps.Keys(file.Properties)) {
			l.warnUnknown(key, path)
			props[key] = string(file.Properties[key])
		}
	}

	for _, key := range domain.KnownKeys() {
		if v, ok := l.lookupEnv(key); ok {
			props[key] = v
		}
	}

	for _, key := range slices.Sorted(maps.Keys(defines)) {
		l.warnUnknown(key, "-D")
		props[key] = defines[key]
	}

	home, err := l.userHome()
	if err != nil {
		l.Logger.Warn(fmt.Sprintf("could not determine home directory, using a relative local repository: %v", err))
		home = ""
	}

	return domain.NewEnvironment(props, home), nil
}

// lookupEnv prefers the upper-case variable and falls back to the literal key.
func (l *Loader) lookupEnv(key string) (string, bool) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvVarName(key)); ok {
		return v, true
	}
	return lookup(key)
}

func (l *Loader) userHome() (string, error) {
	if l.UserHome == nil {
		return os.UserHomeDir()
	}
	return l.UserHome()
}

func (l *Loader) fs() FileSystem {
	if l.FS == nil {
		return NewOSFS()
	}
	return l.FS
}

func (l *Loader) warnUnknown(key, source string) {
	if !domain.IsKnownKey(key) {
		l.Logger.Warn(fmt.Sprintf("property %q from %s has no effect", key, source))
	}
}

// findConfiguration returns the config file to read, or "" when there is none.
// An explicit path must exist; otherwise cwd and its parents are searched.
func (l *Loader) findConfiguration(cwd, configPath string) (string, error) {
	if configPath != "" {
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(cwd, configPath)
		}
		if _, err := l.fs().Stat(configPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", zerr.With(domain.ErrConfigNotFound, "path", configPath)
			}
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
		}
		return configPath, nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := l.fs().Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) readFile(path string) (*File, error) {
	data, err := l.fs().ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return &file, nil
}
