package fixturekit

import (
	"maps"
	"slices"

	gocache "github.com/patrickmn/go-cache"
)

// Registry is a named template store shared between builders. Entries never
// expire, and a later Define under the same name silently replaces the
// earlier one. The zero value is not usable; construct with NewRegistry.
//
// Most code goes through the package-level DefaultRegistry via DefinePreset
// and Builder.Preset. Tests that need isolation construct their own registry
// and attach it with Builder.UseRegistry, or call Reset between runs.
type Registry struct {
	cache *gocache.Cache
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cache: gocache.New(gocache.NoExpiration, 0)}
}

// Define stores t under name, replacing any previous definition.
func (r *Registry) Define(name string, t Template) {
	r.cache.Set(name, t, gocache.NoExpiration)
}

// Lookup returns the template registered under name.
func (r *Registry) Lookup(name string) (Template, bool) {
	v, found := r.cache.Get(name)
	if !found {
		return nil, false
	}
	t, ok := v.(Template)
	if !ok {
		return nil, false
	}
	return t, true
}

// Reset removes every definition. Intended for teardown between test suites
// that reuse preset names.
func (r *Registry) Reset() {
	r.cache.Flush()
}

// Names returns every defined preset name in ascending order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.cache.Items()))
}

// Len reports how many presets are defined.
func (r *Registry) Len() int {
	return r.cache.ItemCount()
}

// DefaultRegistry is the process-wide registry builders consult unless one is
// attached with UseRegistry. It lives for the process lifetime and is never
// cleared automatically.
var DefaultRegistry = NewRegistry()

// DefinePreset stores t under name in DefaultRegistry, replacing any previous
// definition.
func DefinePreset(name string, t Template) {
	DefaultRegistry.Define(name, t)
}

// ResetPresets clears DefaultRegistry.
func ResetPresets() {
	DefaultRegistry.Reset()
}
