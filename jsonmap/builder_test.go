package jsonmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-builder/member"
	"mapping-builder/store"
)

func orderID(o *store.Order) any     { return &o.ID }
func customerID(o *store.Order) any  { return &o.CustomerID }
func totalCents(o *store.Order) any  { return &o.TotalCents }
func orderItems(o *store.Order) any  { return &o.Items }
func orderStatus(o *store.Order) any { return &o.Status }

// orderMemberNames is every declared member of store.Order under its default
// JSON name.
var orderMemberNames = []string{
	"id", "customer_id", "status", "TotalCents", "Items", "ordered_at", "DisplayName",
}

func descriptorNames(t *testing.T, b *Builder[store.Order]) []string {
	t.Helper()

	d, err := b.Descriptor()
	require.NoError(t, err)

	var names []string
	for _, fm := range d.Fields() {
		names = append(names, fm.Name())
	}

	return names
}

func TestAllFields(t *testing.T) {
	b := New[store.Order]().AllFields()
	require.NoError(t, b.Err())

	d, err := b.Descriptor()
	require.NoError(t, err)

	assert.Equal(t, len(orderMemberNames), d.Len())
	assert.ElementsMatch(t, orderMemberNames, descriptorNames(t, b))

	fm, ok := d.Lookup("id")
	require.True(t, ok)
	assert.Equal(t, "ID", fm.Member().Name)
	assert.Equal(t, member.KindField, fm.Member().Kind)
	assert.True(t, fm.Included())

	fm, ok = d.Lookup("DisplayName")
	require.True(t, ok)
	assert.Equal(t, member.KindProperty, fm.Member().Kind)
}

func TestExceptField_OrderIndependent(t *testing.T) {
	before := New[store.Order]().ExceptField(orderItems).AllFields()
	after := New[store.Order]().AllFields().ExceptField(orderItems)

	require.NoError(t, before.Err())
	require.NoError(t, after.Err())

	want := []string{"id", "customer_id", "status", "TotalCents", "ordered_at", "DisplayName"}

	assert.ElementsMatch(t, want, descriptorNames(t, before))
	assert.Equal(t, descriptorNames(t, before), descriptorNames(t, after))
}

func TestExceptField_Twice(t *testing.T) {
	b := New[store.Order]().AllFields().ExceptField(orderItems)
	require.NoError(t, b.Err())

	fieldsBefore := len(b.tm.fields)
	excludedBefore := b.tm.excluded.Len()

	b.ExceptField(orderItems)
	assert.ErrorIs(t, b.Err(), ErrAlreadyExcluded)

	// The failing call mutates nothing.
	assert.Equal(t, fieldsBefore, len(b.tm.fields))
	assert.Equal(t, excludedBefore, b.tm.excluded.Len())
}

func TestExceptField_SuppressesLaterInclusion(t *testing.T) {
	b := New[store.Order]().
		ExceptField(orderItems).
		FieldTo(orderItems, "items")
	require.NoError(t, b.Err())

	d, err := b.Descriptor()
	require.NoError(t, err)

	_, ok := d.Lookup("items")
	assert.False(t, ok, "adding an excluded member is a silent no-op")
	assert.Zero(t, d.Len())
}

func TestField_RemapRenames(t *testing.T) {
	b := New[store.Order]().
		FieldTo(totalCents, "x").
		FieldTo(totalCents, "y")
	require.NoError(t, b.Err())

	d, err := b.Descriptor()
	require.NoError(t, err)

	require.Equal(t, 1, d.Len())

	_, ok := d.Lookup("x")
	assert.False(t, ok)

	fm, ok := d.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, "TotalCents", fm.Member().Name)

	// The secondary index followed the rename.
	id := fm.Member()
	assert.Equal(t, "y", b.tm.byMember[id])
}

func TestFieldTo_NameConflict(t *testing.T) {
	b := New[store.Order]().
		FieldTo(orderID, "x").
		FieldTo(customerID, "x")

	err := b.Err()
	require.ErrorIs(t, err, ErrFieldNameConflict)
	assert.Contains(t, err.Error(), `"x"`)
	assert.Contains(t, err.Error(), "store.Order.ID")
	assert.Contains(t, err.Error(), "store.Order.CustomerID")

	// The table retains only the first binding.
	require.Len(t, b.tm.fields, 1)
	assert.Equal(t, "ID", b.tm.fields["x"].Member().Name)
}

func TestStickyError(t *testing.T) {
	b := New[store.Order]().
		FieldTo(orderID, "x").
		FieldTo(customerID, "x")

	first := b.Err()
	require.Error(t, first)

	// Later fluent calls are no-ops and keep the first error.
	b.AllFields().Field(orderStatus).UseReferencing(true)
	assert.Same(t, first, b.Err())
	assert.Len(t, b.tm.fields, 1)
	assert.False(t, b.tm.referencing, "a failed builder no longer mutates")

	_, err := b.Descriptor()
	assert.Same(t, first, err)
}

func TestFieldWith(t *testing.T) {
	cents := func(v any) (any, error) {
		return fmt.Sprintf("%d.%02d", v.(int64)/100, v.(int64)%100), nil
	}

	b := New[store.Order]().
		FieldWith(totalCents, func(f *FieldMapping) {
			f.Rename("total").Convert(cents).SetIncluded(false)
		})
	require.NoError(t, b.Err())

	d, err := b.Descriptor()
	require.NoError(t, err)

	fm, ok := d.Lookup("total")
	require.True(t, ok)
	assert.False(t, fm.Included())

	require.NotNil(t, fm.Converter())
	out, err := fm.Converter()(int64(1250))
	require.NoError(t, err)
	assert.Equal(t, "12.50", out)
}

func TestField_DefaultNameUsesTag(t *testing.T) {
	b := New[store.Order]().Field(orderID)
	require.NoError(t, b.Err())

	d, err := b.Descriptor()
	require.NoError(t, err)

	_, ok := d.Lookup("id")
	assert.True(t, ok)
}

func TestField_InvalidAccessor(t *testing.T) {
	b := New[store.Order]().Field(func(o *store.Order) any { return o.DisplayName() })
	assert.ErrorIs(t, b.Err(), member.ErrInvalidAccessor)
}

func TestClone_Independent(t *testing.T) {
	b := New[store.Order]().AllFields()
	require.NoError(t, b.Err())

	c := b.Clone()
	c.ExceptField(orderItems)
	require.NoError(t, c.Err())

	assert.ElementsMatch(t, orderMemberNames, descriptorNames(t, b), "original keeps Items")
	assert.NotContains(t, descriptorNames(t, c), "Items")

	// And the other direction.
	b.ExceptField(orderStatus)
	require.NoError(t, b.Err())
	assert.Contains(t, descriptorNames(t, c), "status")

	// Table entries are duplicated, not aliased.
	b.tm.fields["id"].SetIncluded(false)
	assert.True(t, c.tm.fields["id"].Included())
}

func TestClone_Referencing(t *testing.T) {
	b := New[store.Order]().UseReferencing(true)

	d, err := b.Clone().Descriptor()
	require.NoError(t, err)

	assert.True(t, d.Referencing())
}

func TestAutoGenerate(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		b := New[store.Order]()
		require.NoError(t, b.AutoGenerate())
		assert.Len(t, b.tm.fields, len(orderMemberNames))
	})

	t.Run("configured is untouched", func(t *testing.T) {
		b := New[store.Order]().FieldTo(totalCents, "total")
		require.NoError(t, b.AutoGenerate())
		assert.Len(t, b.tm.fields, 1)
	})

	t.Run("exclusions leave the default armed", func(t *testing.T) {
		b := New[store.Order]().ExceptField(orderItems)
		require.NoError(t, b.AutoGenerate())
		assert.Len(t, b.tm.fields, len(orderMemberNames)-1)
	})
}

func TestNameBasedOps(t *testing.T) {
	b := New[store.Order]()

	require.NoError(t, b.IncludeField("TotalCents", "total"))
	require.NoError(t, b.IncludeField("DisplayName", ""))
	require.NoError(t, b.ExcludeField("Items"))

	assert.ErrorIs(t, b.IncludeField("Nope", ""), member.ErrInvalidAccessor)
	assert.ErrorIs(t, b.Err(), member.ErrInvalidAccessor)
}
