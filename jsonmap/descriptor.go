package jsonmap

import (
	"reflect"
	"slices"
	"strings"
)

// Descriptor is the outbound mapping descriptor: the finalized, read-only
// view of one type's configuration handed to the external serialization
// engine. Entries are cloned out of the builder, so a descriptor never
// aliases builder state.
type Descriptor struct {
	target      reflect.Type
	referencing bool
	fields      []*FieldMapping
	byName      map[string]*FieldMapping
}

// descriptor snapshots the current table, sorted by JSON field name.
func (tm *typeMapping) descriptor() *Descriptor {
	d := &Descriptor{
		target:      tm.target,
		referencing: tm.referencing,
		byName:      make(map[string]*FieldMapping, len(tm.fields)),
	}

	for _, fm := range tm.fields {
		c := fm.Clone()
		d.fields = append(d.fields, c)
		d.byName[c.Name()] = c
	}

	slices.SortFunc(d.fields, func(a, b *FieldMapping) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return d
}

// TargetType returns the described struct type.
func (d *Descriptor) TargetType() reflect.Type { return d.target }

// Referencing reports whether the engine should track shared-instance
// references for this type.
func (d *Descriptor) Referencing() bool { return d.referencing }

// Fields returns the field mappings sorted by JSON field name.
func (d *Descriptor) Fields() []*FieldMapping {
	return slices.Clone(d.fields)
}

// Lookup returns the mapping bound under the given JSON field name.
func (d *Descriptor) Lookup(jsonName string) (*FieldMapping, bool) {
	fm, ok := d.byName[jsonName]
	return fm, ok
}

// Len returns the number of mapped fields.
func (d *Descriptor) Len() int { return len(d.fields) }
