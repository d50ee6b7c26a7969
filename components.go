package compinject

import (
	"slices"

	"github.com/alnah/go-compinject/internal/manifest"
)

// Component is a named bundle of asset paths, loaded together in order.
type Component struct {
	Name   string   `yaml:"name"`
	Assets []string `yaml:"assets"`
}

// Registry maps component names to their assets.
// A Registry is immutable once built and safe for concurrent use.
type Registry struct {
	order  []string
	assets map[string][]string
}

// NewRegistry builds a registry from components. A later component with the
// same name replaces an earlier one but keeps its position.
func NewRegistry(components ...Component) *Registry {
	r := &Registry{assets: make(map[string][]string, len(components))}
	r.add(components)
	return r
}

// DefaultRegistry returns the built-in "syntax" and "wdatepicker" bundles.
func DefaultRegistry() *Registry {
	entries := manifest.Builtin()
	components := make([]Component, len(entries))
	for i, e := range entries {
		components[i] = Component{Name: e.Name, Assets: e.Assets}
	}
	return NewRegistry(components...)
}

// With returns a new registry holding r's components plus the given ones.
// Components whose names already exist replace the existing assets.
func (r *Registry) With(components ...Component) *Registry {
	out := &Registry{
		order:  slices.Clone(r.order),
		assets: make(map[string][]string, len(r.assets)+len(components)),
	}
	for name, assets := range r.assets {
		out.assets[name] = assets
	}
	out.add(components)
	return out
}

func (r *Registry) add(components []Component) {
	for _, c := range components {
		if _, exists := r.assets[c.Name]; !exists {
			r.order = append(r.order, c.Name)
		}
		r.assets[c.Name] = slices.Clone(c.Assets)
	}
}

// Lookup returns a copy of the asset paths for name. Names match exactly.
func (r *Registry) Lookup(name string) ([]string, bool) {
	assets, ok := r.assets[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(assets), true
}

// Names returns the registered component names, sorted.
func (r *Registry) Names() []string {
	names := slices.Clone(r.order)
	slices.Sort(names)
	return names
}

// Components returns every component in registration order.
func (r *Registry) Components() []Component {
	out := make([]Component, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Component{Name: name, Assets: slices.Clone(r.assets[name])})
	}
	return out
}
