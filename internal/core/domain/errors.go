package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDefine is returned when a -D property definition is not of the form key=value.
	ErrInvalidDefine = zerr.New("invalid property definition, expected format: key=value")

	// ErrInvalidSnapshotPolicy is returned when a snapshot policy is not one of the accepted shapes.
	ErrInvalidSnapshotPolicy = zerr.New(
		"invalid snapshot policy, expected 'daily', 'never', 'always' or 'interval:<minutes>'",
	)

	// ErrInvalidProxy is returned when a proxy address cannot be parsed as a URL.
	ErrInvalidProxy = zerr.New("invalid proxy address")

	// ErrInvalidRepositoryURL is returned when a remote repository is not an absolute http(s) URL.
	ErrInvalidRepositoryURL = zerr.New("invalid remote repository URL")

	// ErrInvalidOptions is returned when one or more resolver options fail validation.
	ErrInvalidOptions = zerr.New("resolver options failed validation")

	// ErrUnknownFormat is returned when an unsupported output format is requested.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'yaml' or 'json'")

	// ErrRenderFailed is returned when the options cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render resolver options")
)
