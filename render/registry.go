package render

import (
	"errors"
	"fmt"
	"sort"
)

// ErrRegistryPanic is returned if a registry lookup panics internally.
var ErrRegistryPanic = errors.New("render: panic during Resolve")

// ErrUnknownFormat is returned by Lookup for names nothing was provided under.
var ErrUnknownFormat = errors.New("render: unknown format")

// Registry maps format names to renderers.
// It is filled once at start and only read afterwards.
type Registry struct {
	items map[string]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[string]Renderer{}}
}

// Default returns a registry holding the text, json and yaml renderers.
func Default() *Registry {
	return NewRegistry().
		Provide(FormatText, Text).
		Provide(FormatJSON, JSON).
		Provide(FormatYAML, YAML)
}

// Provide stores a renderer under name and returns the registry for chaining.
func (r *Registry) Provide(name string, rd Renderer) *Registry {
	r.items[name] = rd
	return r
}

// Resolve returns the renderer for name and converts internal panics into errors.
func (r *Registry) Resolve(name string) (rd Renderer, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			rd = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	rd, ok = r.items[name]
	return rd, ok, nil
}

// Lookup is Resolve with a missing name reported as ErrUnknownFormat.
func (r *Registry) Lookup(name string) (Renderer, error) {
	rd, ok, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownFormat, name, r.Names())
	}
	return rd, nil
}

// MustGet returns the renderer or panics with a helpful message.
func (r *Registry) MustGet(name string) Renderer {
	rd, ok := r.items[name]
	if !ok {
		panic(fmt.Errorf("render: registry missing format %q", name))
	}
	return rd
}

// Names returns the registered format names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
