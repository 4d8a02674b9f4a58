package app

import (
	"strings"

	"go.trai.ch/mvnconf/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParseDefines turns key=value definitions into a property map. The value may
// be empty or contain further '=' characters; later definitions win.
func ParseDefines(defines []string) (map[string]string, error) {
	props := make(map[string]string, len(defines))
	for _, d := range defines {
		key, value, ok := strings.Cut(d, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, zerr.With(domain.ErrInvalidDefine, "define", d)
		}
		props[key] = value
	}
	return props, nil
}
