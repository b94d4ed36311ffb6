// Package flags gates optional behaviour behind named feature flags.
package flags

import (
	"maps"

	"github.com/zjrosen/quill/internal/log"
)

const (
	// FlagFoldSnapshots persists fold levels to SQLite so a reopened file
	// starts with its previous fold state.
	FlagFoldSnapshots = "fold-snapshots"

	// FlagSearchCache memoises search results per (pattern, flags, revision).
	// Off means every search recompiles and rescans.
	FlagSearchCache = "search-cache"

	// FlagLiveReload watches the source file and re-lexes on change.
	FlagLiveReload = "live-reload"
)

// Registry answers flag lookups. The flag set is fixed at construction;
// unknown flags and nil registries both read as disabled.
type Registry struct {
	flags map[string]bool
}

// New builds a Registry from a config map. A nil map yields a registry
// with every flag off.
func New(flags map[string]bool) *Registry {
	if flags == nil {
		flags = make(map[string]bool)
	}
	r := &Registry{flags: flags}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(flags), "flags", r.All())
	return r
}

// Enabled reports whether the named flag is on.
func (r *Registry) Enabled(name string) bool {
	if r == nil || r.flags == nil {
		return false
	}
	value, known := r.flags[name]
	if !known {
		log.Debug(log.CatConfig, "Unknown flag accessed", "flag", name, "result", false)
	}
	return value
}

// All returns a copy of the flag map.
func (r *Registry) All() map[string]bool {
	if r == nil || r.flags == nil {
		return make(map[string]bool)
	}
	result := make(map[string]bool, len(r.flags))
	maps.Copy(result, r.flags)
	return result
}
