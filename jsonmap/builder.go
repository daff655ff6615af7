package jsonmap

import (
	"reflect"

	"mapping-builder/member"
)

// Accessor names one member of T by returning its address on a probe
// instance: func(o *Order) any { return &o.ID }.
type Accessor[T any] func(*T) any

// TypeBuilder is the type-erased builder surface consumed by registries and
// declarative configuration: duplicate, auto-generate, name-based
// configuration, and the descriptor read-out.
type TypeBuilder interface {
	TargetType() reflect.Type
	AutoGenerate() error
	Duplicate() TypeBuilder
	Descriptor() (*Descriptor, error)
	IncludeField(memberName, jsonName string) error
	ExcludeField(memberName string) error
	SetReferencing(enabled bool)
}

// Builder is the chainable configuration surface over a single target struct
// type. A builder is a single-owner object: it is mutated during a
// configuration phase by one goroutine, then read (or cloned for reuse)
// afterwards.
//
// Fluent operations return the builder itself. The first failure is recorded
// and turns every later fluent call into a no-op; Err and Descriptor report
// it.
type Builder[T any] struct {
	tm  *typeMapping
	err error
}

// New creates an empty builder for T: referencing disabled, empty mapping
// table, empty exclusion set.
func New[T any]() *Builder[T] {
	return &Builder[T]{tm: newTypeMapping(reflect.TypeFor[T]())}
}

// TargetType returns the struct type the builder configures.
func (b *Builder[T]) TargetType() reflect.Type { return b.tm.target }

// Err returns the first recorded configuration error, if any.
func (b *Builder[T]) Err() error { return b.err }

func (b *Builder[T]) fail(err error) *Builder[T] {
	if b.err == nil {
		b.err = err
	}

	return b
}

// UseReferencing toggles shared-instance reference tracking for the target
// type. The tracking itself is implemented by the consuming engine.
func (b *Builder[T]) UseReferencing(enabled bool) *Builder[T] {
	if b.err != nil {
		return b
	}

	b.tm.referencing = enabled

	return b
}

// AllFields adds a default mapping for every declared field and property of
// T, each under its default JSON name. Previously excluded members are
// silently skipped.
func (b *Builder[T]) AllFields() *Builder[T] {
	if b.err != nil {
		return b
	}

	if err := b.tm.allFields(); err != nil {
		return b.fail(err)
	}

	return b
}

// Field maps the accessed member under its default JSON name.
func (b *Builder[T]) Field(accessor Accessor[T]) *Builder[T] {
	return b.FieldWith(accessor, nil)
}

// FieldTo maps the accessed member under the given JSON field name.
func (b *Builder[T]) FieldTo(accessor Accessor[T], jsonName string) *Builder[T] {
	return b.FieldWith(accessor, func(f *FieldMapping) { f.Rename(jsonName) })
}

// FieldWith maps the accessed member, invoking configure on the new mapping
// before it is added. The configure step may rename the field or attach a
// converter.
func (b *Builder[T]) FieldWith(accessor Accessor[T], configure func(*FieldMapping)) *Builder[T] {
	if b.err != nil {
		return b
	}

	id, err := member.Resolve(accessor)
	if err != nil {
		return b.fail(err)
	}

	fm := newFieldMapping(id, "")
	if configure != nil {
		configure(fm)
	}

	b.tm.configured = true

	if err := b.tm.add(fm); err != nil {
		return b.fail(err)
	}

	return b
}

// ExceptField forbids the accessed member for the life of the builder,
// removing its mapping if one exists. Exclusion is order-independent: it
// undoes earlier inclusion and silently suppresses later inclusion attempts.
// Excluding the same member twice fails.
func (b *Builder[T]) ExceptField(accessor Accessor[T]) *Builder[T] {
	if b.err != nil {
		return b
	}

	id, err := member.Resolve(accessor)
	if err != nil {
		return b.fail(err)
	}

	if err := b.tm.exclude(id); err != nil {
		return b.fail(err)
	}

	return b
}

// IncludeField maps a member resolved by its Go name, under jsonName or the
// default name when jsonName is empty. It is the name-based counterpart of
// Field/FieldTo used by declarative configuration sources.
func (b *Builder[T]) IncludeField(memberName, jsonName string) error {
	if b.err != nil {
		return b.err
	}

	id, err := member.LookupMember(b.tm.target, memberName)
	if err != nil {
		b.fail(err)
		return err
	}

	b.tm.configured = true

	if err := b.tm.add(newFieldMapping(id, jsonName)); err != nil {
		b.fail(err)
		return err
	}

	return nil
}

// ExcludeField is the name-based counterpart of ExceptField.
func (b *Builder[T]) ExcludeField(memberName string) error {
	if b.err != nil {
		return b.err
	}

	id, err := member.LookupMember(b.tm.target, memberName)
	if err != nil {
		b.fail(err)
		return err
	}

	if err := b.tm.exclude(id); err != nil {
		b.fail(err)
		return err
	}

	return nil
}

// SetReferencing is the non-fluent form of UseReferencing.
func (b *Builder[T]) SetReferencing(enabled bool) {
	b.UseReferencing(enabled)
}

// AutoGenerate applies the default mapping if the caller configured no
// fields: one mapping per declared member. Builders that already received a
// field-level operation are left unchanged.
func (b *Builder[T]) AutoGenerate() error {
	if b.err != nil {
		return b.err
	}

	if b.tm.configured {
		return nil
	}

	return b.AllFields().Err()
}

// Clone returns a fully independent duplicate: same referencing flag, a
// duplicated mapping per table entry, the same exclusion set contents. The
// original and the clone share no mutable state and may be mutated
// independently.
func (b *Builder[T]) Clone() *Builder[T] {
	return &Builder[T]{tm: b.tm.clone(), err: b.err}
}

// Duplicate is Clone behind the TypeBuilder surface.
func (b *Builder[T]) Duplicate() TypeBuilder { return b.Clone() }

// Descriptor returns the read-only snapshot consumed by the external
// serialization engine, or the first recorded configuration error.
func (b *Builder[T]) Descriptor() (*Descriptor, error) {
	if b.err != nil {
		return nil, b.err
	}

	return b.tm.descriptor(), nil
}
