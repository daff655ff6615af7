package member

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidAccessor reports that the supplied accessor or name does not
// denote a readable field or property of the target type.
var ErrInvalidAccessor = errors.New("invalid accessor")

// Resolve maps a probe accessor to the identity of the member it addresses.
// The accessor must return the address of a member on the probe instance,
// e.g. func(o *Order) any { return &o.ID }. Zero-size members have no
// address of their own and must be resolved by name via LookupMember.
func Resolve[T any](accessor func(*T) any) (Identity, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return Identity{}, fmt.Errorf("%w: target type %s is not a struct", ErrInvalidAccessor, t)
	}

	if accessor == nil {
		return Identity{}, fmt.Errorf("%w: nil accessor for %s", ErrInvalidAccessor, t)
	}

	probe := new(T)

	out := accessor(probe)
	if out == nil {
		return Identity{}, fmt.Errorf("%w: accessor on %s returned nil", ErrInvalidAccessor, t)
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return Identity{}, fmt.Errorf("%w: accessor on %s returned a %s value, want the address of a field",
			ErrInvalidAccessor, t, rv.Kind())
	}

	base := reflect.ValueOf(probe).Pointer()
	addr := rv.Pointer()

	if addr < base || addr >= base+t.Size() {
		// Not storage of the probe: method call result, local variable, literal.
		return Identity{}, fmt.Errorf("%w: accessor on %s returned an address outside the target value",
			ErrInvalidAccessor, t)
	}

	off := addr - base

	for i := range t.NumField() {
		f := t.Field(i)

		// Zero-size fields share their offset with the following field and
		// cannot be told apart by address; name them via LookupMember.
		if f.Type.Size() == 0 {
			continue
		}

		if off < f.Offset || off >= f.Offset+f.Type.Size() {
			continue
		}

		// Addresses inside a nested struct resolve to the declared field
		// being traversed.
		if !f.IsExported() {
			return Identity{}, fmt.Errorf("%w: %s.%s is unexported", ErrInvalidAccessor, t, f.Name)
		}

		return fieldIdentity(t, f), nil
	}

	return Identity{}, fmt.Errorf("%w: accessor on %s does not address a declared field", ErrInvalidAccessor, t)
}

// LookupMember resolves a member of t by its Go name: an exported field
// first, then a property getter.
func LookupMember(t reflect.Type, name string) (Identity, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return Identity{}, fmt.Errorf("%w: target type %v is not a struct", ErrInvalidAccessor, t)
	}

	if name == "" {
		return Identity{}, fmt.Errorf("%w: empty member name for %s", ErrInvalidAccessor, t)
	}

	if f, ok := t.FieldByName(name); ok && f.IsExported() {
		return fieldIdentity(t, f), nil
	}

	pt := reflect.PointerTo(t)
	if m, ok := pt.MethodByName(name); ok && isGetter(m) {
		return propertyIdentity(t, m), nil
	}

	return Identity{}, fmt.Errorf("%w: %s has no readable field or property %q", ErrInvalidAccessor, t, name)
}

// Members enumerates every declared member of t: exported fields in
// declaration order, then properties in method-set order.
func Members(t reflect.Type) []Identity {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var out []Identity

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		out = append(out, fieldIdentity(t, f))
	}

	pt := reflect.PointerTo(t)
	for i := range pt.NumMethod() {
		m := pt.Method(i)
		if !isGetter(m) {
			continue
		}

		out = append(out, propertyIdentity(t, m))
	}

	return out
}

func fieldIdentity(t reflect.Type, f reflect.StructField) Identity {
	return Identity{
		Owner:    t,
		Name:     f.Name,
		Kind:     KindField,
		CanRead:  true,
		CanWrite: true,
	}
}

func propertyIdentity(t reflect.Type, m reflect.Method) Identity {
	return Identity{
		Owner:    t,
		Name:     m.Name,
		Kind:     KindProperty,
		CanRead:  true,
		CanWrite: hasSetter(t, m.Name),
	}
}

// isGetter accepts exported methods with no arguments and one result,
// excluding the formatting protocol methods.
func isGetter(m reflect.Method) bool {
	switch m.Name {
	case "String", "Error", "GoString":
		return false
	}

	return m.Type.NumIn() == 1 && m.Type.NumOut() == 1
}

// hasSetter reports whether t has a Set<name>(v) method.
func hasSetter(t reflect.Type, name string) bool {
	m, ok := reflect.PointerTo(t).MethodByName("Set" + name)

	return ok && m.Type.NumIn() == 2 && m.Type.NumOut() == 0
}
