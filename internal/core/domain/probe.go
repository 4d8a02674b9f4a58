package domain

// ProbeResult is the outcome of a reachability check against one remote repository.
type ProbeResult struct {
	// Repository is the remote repository URL as configured.
	Repository string `json:"repository" yaml:"repository"`

	// StatusCode is the HTTP status returned, or 0 when no response was received.
	StatusCode int `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`

	// Proxy is the proxy the request was routed through, empty for a direct connection.
	Proxy string `json:"proxy,omitempty" yaml:"proxy,omitempty"`

	// Err holds the failure message when the repository could not be reached.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Reachable reports whether the repository answered with a non-server-error status.
func (r ProbeResult) Reachable() bool {
	return r.Err == "" && r.StatusCode > 0 && r.StatusCode < 500
}
