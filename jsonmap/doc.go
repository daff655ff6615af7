// Package jsonmap builds mapping descriptors: declarative tables describing
// how the members of a struct type correspond to named fields of a JSON
// object. The descriptors are consumed by an external
// serialization/deserialization engine; this package performs no encoding
// and executes no converters.
//
// # Builder
//
// Configuration is chainable and single-owner:
//
//	b := jsonmap.New[store.Order]().
//		UseReferencing(true).
//		AllFields().
//		FieldTo(func(o *store.Order) any { return &o.TotalCents }, "total").
//		ExceptField(func(o *store.Order) any { return &o.Items })
//
//	desc, err := b.Descriptor()
//
// The mapping table keys are JSON field names and stay unique. Re-mapping a
// member acts as a rename: the old entry is removed, the new one inserted.
// Binding a name that already belongs to a different member fails with
// ErrFieldNameConflict. Exclusion is order-independent: ExceptField undoes a
// prior inclusion and suppresses later ones, and a member is never present
// in both the table and the exclusion set.
//
// Fluent calls record the first failure and turn later calls into no-ops;
// Err and Descriptor surface it.
//
// # Reuse
//
// A builder is not safe for concurrent mutation. To share a base
// configuration, Clone it: clones duplicate every table entry and the
// exclusion set, so original and copy can be mutated independently.
//
// # Registry
//
// Registry serves finalized descriptors to engines, auto-generating the
// default mapping (every declared member under its default name) for types
// whose callers configured no fields.
package jsonmap
