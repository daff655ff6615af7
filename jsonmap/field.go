package jsonmap

import "mapping-builder/member"

// Converter transforms a member value before the external serializer writes
// it. Converters are declared here and executed by the consuming engine.
type Converter func(value any) (any, error)

// FieldMapping binds one member identity to the JSON field name it maps to,
// plus optional per-field customization. Handles are mutable only inside a
// FieldWith configuration step; once added to a builder they are treated as
// immutable and cloned on every boundary crossing.
type FieldMapping struct {
	member   member.Identity
	name     string
	convert  Converter
	included bool
}

func newFieldMapping(id member.Identity, name string) *FieldMapping {
	if name == "" {
		name = member.DefaultName(id)
	}

	return &FieldMapping{member: id, name: name, included: true}
}

// Member returns the identity of the mapped member.
func (f *FieldMapping) Member() member.Identity { return f.member }

// Name returns the JSON field name.
func (f *FieldMapping) Name() string { return f.name }

// Rename changes the JSON field name. Empty names are ignored.
func (f *FieldMapping) Rename(name string) *FieldMapping {
	if name != "" {
		f.name = name
	}

	return f
}

// Convert attaches a value converter.
func (f *FieldMapping) Convert(fn Converter) *FieldMapping {
	f.convert = fn
	return f
}

// Converter returns the attached converter, or nil.
func (f *FieldMapping) Converter() Converter { return f.convert }

// SetIncluded toggles whether the consuming engine serializes the field.
func (f *FieldMapping) SetIncluded(included bool) *FieldMapping {
	f.included = included
	return f
}

// Included reports whether the field takes part in serialization.
func (f *FieldMapping) Included() bool { return f.included }

// Clone returns a value-independent copy. The converter function is shared;
// it carries no mutable state.
func (f *FieldMapping) Clone() *FieldMapping {
	c := *f
	return &c
}
