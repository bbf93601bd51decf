package lines

import (
	"fmt"
)

// A Registry creates wires that share a factory, a config and options, and
// keeps track of them so they can be looked up by name and released
// together.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	factory Factory
	cfg     Config
	opts    []Option

	named map[string]*Wire
	wires map[*Wire]struct{}
	seq   int
}

// NewRegistry returns a registry creating renderables with f. Options are
// applied to every wire after the registry's factory and config.
func NewRegistry(f Factory, cfg Config, opts ...Option) (*Registry, error) {
	if f == nil {
		return nil, fmt.Errorf("registry without factory: %w", ErrMissingResource)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Registry{
		factory: f,
		cfg:     cfg,
		opts:    opts,
		named:   make(map[string]*Wire),
		wires:   make(map[*Wire]struct{}),
	}, nil
}

// Config returns the registry's config.
func (reg *Registry) Config() Config { return reg.cfg }

// NewWire returns a new anonymous wire.
func (reg *Registry) NewWire() (*Wire, error) {
	reg.seq++
	return reg.newWire(fmt.Sprintf("wire%d", reg.seq))
}

func (reg *Registry) newWire(name string) (*Wire, error) {
	r, err := reg.factory.NewRenderable()
	if err != nil {
		return nil, fmt.Errorf("creating wire %q: %w", name, err)
	}
	opts := append([]Option{WithName(name), WithConfig(reg.cfg), WithFactory(reg.factory)}, reg.opts...)
	w := NewWire(r, opts...)
	reg.wires[w] = struct{}{}
	return w, nil
}

// Make returns the wire named name, creating it if it doesn't exist yet.
func (reg *Registry) Make(name string) (*Wire, error) {
	if w, ok := reg.named[name]; ok {
		return w, nil
	}
	w, err := reg.newWire(name)
	if err != nil {
		return nil, err
	}
	reg.named[name] = w
	return w, nil
}

// Get returns the wire named name, if there is one.
func (reg *Registry) Get(name string) (*Wire, bool) {
	w, ok := reg.named[name]
	return w, ok
}

// Len returns the number of live wires, not counting children.
func (reg *Registry) Len() int { return len(reg.wires) }

// Release releases w and its children. Wires not created by reg are ignored.
func (reg *Registry) Release(w *Wire) {
	if _, ok := reg.wires[w]; !ok {
		return
	}
	delete(reg.wires, w)
	if reg.named[w.name] == w {
		delete(reg.named, w.name)
	}
	w.release()
}

// Close releases every wire.
func (reg *Registry) Close() {
	for w := range reg.wires {
		w.release()
	}
	clear(reg.wires)
	clear(reg.named)
}
