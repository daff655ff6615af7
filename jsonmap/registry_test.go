package jsonmap

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-builder/member"
	"mapping-builder/store"
)

func TestRegistry_AutoGeneratesUnregistered(t *testing.T) {
	r := NewRegistry()

	d, err := r.DescriptorFor(reflect.TypeFor[store.Customer]())
	require.NoError(t, err)

	var names []string
	for _, fm := range d.Fields() {
		names = append(names, fm.Name())
	}

	assert.ElementsMatch(t, []string{"id", "email", "full_name", "Nickname"}, names)

	nick, ok := d.Lookup("Nickname")
	require.True(t, ok)
	assert.Equal(t, member.KindProperty, nick.Member().Kind)
	assert.True(t, nick.Member().CanWrite, "SetNickname makes the property writable")

	t.Logf("customer descriptor:\n%s", spew.Sdump(d.Fields()))
}

func TestRegistry_CachesDescriptors(t *testing.T) {
	r := NewRegistry()
	ct := reflect.TypeFor[store.Customer]()

	d1, err := r.DescriptorFor(ct)
	require.NoError(t, err)

	d2, err := r.DescriptorFor(ct)
	require.NoError(t, err)

	assert.Same(t, d1, d2)
}

func TestRegistry_AutoGeneratesUnconfiguredBuilder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(New[store.Order]().UseReferencing(true)))

	d, err := r.DescriptorFor(reflect.TypeFor[store.Order]())
	require.NoError(t, err)

	assert.Equal(t, len(orderMemberNames), d.Len(), "referencing alone still auto-generates fields")
	assert.True(t, d.Referencing())
}

func TestRegistry_ServesConfiguredBuilder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(New[store.Order]().FieldTo(totalCents, "total")))

	d, err := r.DescriptorFor(reflect.TypeFor[store.Order]())
	require.NoError(t, err)

	require.Equal(t, 1, d.Len())

	_, ok := d.Lookup("total")
	assert.True(t, ok)
}

func TestRegistry_RegisterAfterImplicitDescriptor(t *testing.T) {
	r := NewRegistry()
	ot := reflect.TypeFor[store.Order]()

	d, err := r.DescriptorFor(ot)
	require.NoError(t, err)
	assert.Equal(t, len(orderMemberNames), d.Len())

	// A builder registered later supersedes the implicit descriptor.
	require.NoError(t, r.Register(New[store.Order]().FieldTo(totalCents, "total")))

	d, err = r.DescriptorFor(ot)
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())

	_, ok := d.Lookup("total")
	assert.True(t, ok)
}

func TestRegistry_RegisterTwice(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(New[store.Order]()))

	err := r.Register(New[store.Order]())
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []reflect.Type{reflect.TypeFor[store.Order]()}, r.Types())
}

func TestRegistry_NonStruct(t *testing.T) {
	r := NewRegistry()

	_, err := r.DescriptorFor(reflect.TypeFor[int]())
	assert.ErrorIs(t, err, member.ErrInvalidAccessor)
}

func TestRegistry_PropagatesBuilderError(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(New[store.Order]().
		FieldTo(orderID, "x").
		FieldTo(customerID, "x")))

	_, err := r.DescriptorFor(reflect.TypeFor[store.Order]())
	assert.ErrorIs(t, err, ErrFieldNameConflict)
}
