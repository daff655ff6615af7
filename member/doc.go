// Package member provides canonical identities for the declared members of a
// struct type and the resolution machinery that turns caller-supplied
// accessors into those identities.
//
// A member is either a field or a property. Fields are the exported struct
// fields of the target type. Properties are exported getter methods: no
// arguments, one result; a matching Set<Name> method with one argument makes
// the property writable.
//
// # Accessors
//
// Go has no expression trees, so a member is named by a probe accessor that
// returns the address of the member on a target instance:
//
//	member.Resolve(func(o *store.Order) any { return &o.ID })
//
// Resolution allocates a probe value, invokes the accessor, and maps the
// returned address back to the declared field it lands in. Pointer
// conversions and interface boxing around the address are transparent;
// accessors that return anything other than an address inside the probe
// (a method call result, an arithmetic expression, a literal, the address of
// a local) fail with ErrInvalidAccessor.
//
// Properties have no address and are named by string via LookupMember, which
// also resolves fields by name for callers that configure mappings from
// declarative sources.
package member
