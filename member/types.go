package member

import (
	"reflect"
	"strings"
)

// Kind distinguishes the two member flavors.
type Kind int

const (
	// KindField - an exported struct field.
	KindField Kind = iota
	// KindProperty - an exported getter method, optionally paired with a setter.
	KindProperty
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Identity is the canonical reference to one declared member of a struct
// type. It is an immutable value; two identities denote the same member when
// their owner types and names are equal.
type Identity struct {
	// Owner is the struct type declaring the member.
	Owner reflect.Type
	// Name is the Go name of the field or getter.
	Name string
	// Kind tells whether the member is a field or a property.
	Kind Kind
	// CanRead reports whether the member value can be read.
	CanRead bool
	// CanWrite reports whether the member value can be written.
	CanWrite bool
}

// String returns "pkg.Type.Name".
func (id Identity) String() string {
	if id.Owner == nil {
		return id.Name
	}

	return id.Owner.String() + "." + id.Name
}

// Same reports whether two identities denote the same member.
func (id Identity) Same(other Identity) bool {
	return id.Owner == other.Owner && id.Name == other.Name
}

// DefaultName returns the JSON field name a member maps to when the caller
// supplies none: the json tag name for tagged fields, the member name
// otherwise.
func DefaultName(id Identity) string {
	if id.Kind == KindField && id.Owner != nil {
		if f, ok := id.Owner.FieldByName(id.Name); ok {
			if tag := jsonTagName(f); tag != "" {
				return tag
			}
		}
	}

	return id.Name
}

// jsonTagName extracts the name part of a json struct tag.
// "-" and empty tags yield "".
func jsonTagName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}

	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}

	return tag
}
