package watch_test

import (
	"testing"

	"github.com/delaneyj/watchparty/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anything that is not a dotted chain of simple member accesses is rejected
// at subscribe time
func TestRejectsNonMemberExpressions(t *testing.T) {
	p := &person{}
	for _, path := range []string{
		"",
		"Name()",
		"Addresses[0]",
		"Address?.City",
		"Address..City",
		".Name",
		"Name ",
	} {
		_, err := watch.Records(p, path, func(watch.Record) {})
		assert.ErrorIs(t, err, watch.ErrBadPath, "path %q", path)
	}
}

// unknown and unexported members are configuration errors
func TestRejectsUnknownAndUnexportedMembers(t *testing.T) {
	p := &person{}

	_, err := watch.Records(p, "Nickname", func(watch.Record) {})
	assert.ErrorIs(t, err, watch.ErrBadPath)

	_, err = watch.Records(p, "Address.Country", func(watch.Record) {})
	assert.ErrorIs(t, err, watch.ErrBadPath)

	_, err = watch.Records(p, "secret", func(watch.Record) {})
	assert.ErrorIs(t, err, watch.ErrBadPath)
}

// traversal through a non-struct member cannot be decomposed
func TestRejectsTraversalThroughNonStruct(t *testing.T) {
	p := &person{}
	_, err := watch.Records(p, "Name.Length", func(watch.Record) {})
	assert.ErrorIs(t, err, watch.ErrBadPath)
}

// Check validates without attaching anything
func TestCheckDoesNotSubscribe(t *testing.T) {
	p := &person{Address: &address{}}

	require.NoError(t, watch.Check(p, "Address.City"))
	assert.ErrorIs(t, watch.Check(p, "Address.Planet"), watch.ErrBadPath)
	assert.Zero(t, p.ListenerCount())
	assert.Zero(t, p.Address.ListenerCount())
}

// Set writes through the chain and raises the target's hooks so watchers of
// the same member keep flowing
func TestSetWritesThroughChain(t *testing.T) {
	p := &person{Address: &address{}}

	var got []string
	stop, err := watch.Values[string](p, "Address.City", func(v string) {
		got = append(got, v)
	}, watch.SkipInitial())
	require.NoError(t, err)
	defer stop()

	require.NoError(t, watch.Set(p, "Address.City", "lisbon"))
	assert.Equal(t, "lisbon", p.Address.City)
	assert.Equal(t, []string{"lisbon"}, got)
}

// writing a value equal to the current one is a no-op
func TestSetSkipsEqualValue(t *testing.T) {
	p := &person{Name: "Ada"}

	writes := 0
	stop, err := watch.Records(p, "Name", func(watch.Record) { writes++ }, watch.SkipInitial())
	require.NoError(t, err)
	defer stop()

	require.NoError(t, watch.Set(p, "Name", "Ada"))
	assert.Zero(t, writes)
}

// a broken chain cannot be written through
func TestSetBrokenChain(t *testing.T) {
	p := &person{}
	assert.Error(t, watch.Set(p, "Address.City", "x"))
	assert.Nil(t, p.Address)
}

// assigning a value of the wrong type fails, it does not panic
func TestSetTypeMismatch(t *testing.T) {
	p := &person{}
	assert.ErrorIs(t, watch.Set(p, "Name", 42), watch.ErrTypeMismatch)
}

// members promoted from embedded structs decompose and read like declared
// ones
func TestPromotedMembers(t *testing.T) {
	type Base struct {
		ID int
	}
	type thing struct {
		Base
		Label string
	}

	var got []int
	stop, err := watch.Values[int](&thing{Base: Base{ID: 7}}, "ID", func(v int) {
		got = append(got, v)
	})
	require.NoError(t, err)
	defer stop()

	assert.Equal(t, []int{7}, got)
}
