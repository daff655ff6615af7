package jsonmap

import (
	"fmt"
	"reflect"

	"mapping-builder/member"
)

// typeMapping is the state a builder holds for one target type: the mapping
// table keyed by JSON field name, a secondary index from member identity to
// the name it is currently bound under, and the exclusion set. The secondary
// index is updated by every table mutation so that re-mapping never iterates
// the table.
type typeMapping struct {
	target      reflect.Type
	referencing bool
	fields      map[string]*FieldMapping
	byMember    map[member.Identity]string
	excluded    ExclusionSet

	// configured is set by the first field-level inclusion; it arms the
	// auto-generation default until then.
	configured bool
}

func newTypeMapping(target reflect.Type) *typeMapping {
	return &typeMapping{
		target:   target,
		fields:   map[string]*FieldMapping{},
		byMember: map[member.Identity]string{},
		excluded: ExclusionSet{},
	}
}

// add applies the add-field policy:
//  1. excluded members are discarded silently;
//  2. a name bound to a different member is a conflict;
//  3. a member already bound under another name is re-bound (rename);
//  4. the candidate is inserted under its name.
func (tm *typeMapping) add(fm *FieldMapping) error {
	id := fm.Member()

	if tm.excluded.Has(id) {
		return nil
	}

	if existing, ok := tm.fields[fm.Name()]; ok && !existing.Member().Same(id) {
		return fmt.Errorf("%w: %q is bound to %s, cannot bind %s",
			ErrFieldNameConflict, fm.Name(), existing.Member(), id)
	}

	if prev, ok := tm.byMember[id]; ok {
		delete(tm.fields, prev)
	}

	tm.fields[fm.Name()] = fm
	tm.byMember[id] = fm.Name()

	return nil
}

// exclude forbids id for the rest of the builder's life, removing its table
// entry if one exists. A second exclusion of the same member fails.
func (tm *typeMapping) exclude(id member.Identity) error {
	if tm.excluded.Has(id) {
		return fmt.Errorf("%w: %s", ErrAlreadyExcluded, id)
	}

	tm.excluded[id] = struct{}{}

	if name, ok := tm.byMember[id]; ok {
		delete(tm.fields, name)
		delete(tm.byMember, id)
	}

	return nil
}

// allFields adds a default mapping for every declared member of the target
// type. Excluded members are skipped by the add policy.
func (tm *typeMapping) allFields() error {
	tm.configured = true

	for _, id := range member.Members(tm.target) {
		if err := tm.add(newFieldMapping(id, "")); err != nil {
			return err
		}
	}

	return nil
}

// clone returns a fully independent copy: every table entry is duplicated,
// the exclusion set is copied, no mutable state is shared.
func (tm *typeMapping) clone() *typeMapping {
	c := newTypeMapping(tm.target)
	c.referencing = tm.referencing
	c.configured = tm.configured

	for name, fm := range tm.fields {
		c.fields[name] = fm.Clone()
	}

	for id, name := range tm.byMember {
		c.byMember[id] = name
	}

	c.excluded = tm.excluded.Clone()

	return c
}
