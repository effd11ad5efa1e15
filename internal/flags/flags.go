// Package flags provides feature flags read from the config file.
package flags

import (
	"maps"

	"github.com/zjrosen/vedit/internal/log"
)

const (
	// FlagExternalDiff adds a "+N -M" line summary to the external change warning.
	FlagExternalDiff = "external-diff"

	// FlagRenderCache caches rendered text rows between frames.
	FlagRenderCache = "render-cache"
)

// defaults applies to known flags missing from the config.
var defaults = map[string]bool{
	FlagExternalDiff: true,
	FlagRenderCache:  true,
}

// Registry holds feature flag state. It is read-only after New.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from the config's flags map. nil is allowed.
func New(flags map[string]bool) *Registry {
	r := &Registry{flags: make(map[string]bool, len(flags))}
	maps.Copy(r.flags, flags)
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(flags), "flags", r.All())
	return r
}

// Enabled reports whether the named flag is on.
// Unset known flags use their default; unknown flags and a nil registry are off.
func (r *Registry) Enabled(name string) bool {
	if r != nil {
		if value, ok := r.flags[name]; ok {
			return value
		}
	}
	value, known := defaults[name]
	if !known {
		log.Debug(log.CatConfig, "Unknown flag accessed", "flag", name)
	}
	return value
}

// All returns a copy of the explicitly configured flags.
func (r *Registry) All() map[string]bool {
	result := make(map[string]bool)
	if r != nil {
		maps.Copy(result, r.flags)
	}
	return result
}
