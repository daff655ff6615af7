package jsonmap

import (
	"fmt"
	"reflect"
	"sync"

	"mapping-builder/member"
)

// Registry associates target types with their builders and serves finalized
// descriptors to serialization engines. Types without a registered builder,
// and registered builders with no field configuration, get the
// auto-generated default: one mapping per declared member.
//
// The registry is the multi-consumer boundary, so it synchronizes; builders
// themselves stay single-owner.
type Registry struct {
	mu       sync.RWMutex
	builders map[reflect.Type]TypeBuilder
	cache    map[reflect.Type]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: map[reflect.Type]TypeBuilder{},
		cache:    map[reflect.Type]*Descriptor{},
	}
}

// Register hands a builder over to the registry. Registration is one-shot
// per target type; the registry owns the builder afterwards.
func (r *Registry) Register(b TypeBuilder) error {
	t := b.TargetType()
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v is not a struct type", member.ErrInvalidAccessor, t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.builders[t]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, t)
	}

	r.builders[t] = b

	// An implicit auto-generated descriptor may already be cached for t;
	// drop it so the builder's configuration is served from now on.
	delete(r.cache, t)

	return nil
}

// DescriptorFor returns the finalized descriptor for t, auto-generating the
// default mapping when the caller configured none. Descriptors are cached
// per type.
func (r *Registry) DescriptorFor(t reflect.Type) (*Descriptor, error) {
	r.mu.RLock()
	d, ok := r.cache[t]
	r.mu.RUnlock()

	if ok {
		return d, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.cache[t]; ok {
		return d, nil
	}

	d, err := r.buildLocked(t)
	if err != nil {
		return nil, err
	}

	r.cache[t] = d

	return d, nil
}

func (r *Registry) buildLocked(t reflect.Type) (*Descriptor, error) {
	if b, ok := r.builders[t]; ok {
		if err := b.AutoGenerate(); err != nil {
			return nil, err
		}

		return b.Descriptor()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v is not a struct type", member.ErrInvalidAccessor, t)
	}

	tm := newTypeMapping(t)
	if err := tm.allFields(); err != nil {
		return nil, err
	}

	return tm.descriptor(), nil
}

// Types returns the registered target types, in no particular order.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reflect.Type, 0, len(r.builders))
	for t := range r.builders {
		out = append(out, t)
	}

	return out
}

// Len returns the number of registered builders.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.builders)
}
