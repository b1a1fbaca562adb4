package watch_test

import (
	"testing"

	"github.com/delaneyj/watchparty/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// with skipInitial, nothing combined flows until every input has emitted
// once; afterwards each upstream change re-emits with the others' latest
func TestCombineLatestGating(t *testing.T) {
	p := &person{Address: &address{}}

	var got [][]any
	stop, err := watch.All(p, []string{"Name", "Age", "Address.City"}, func(recs []watch.Record) {
		row := make([]any, len(recs))
		for i, rec := range recs {
			row[i], _ = rec.Value()
		}
		got = append(got, row)
	}, watch.SkipInitial())
	require.NoError(t, err)
	defer stop()

	p.SetName("Ada")
	p.SetAge(36)
	assert.Empty(t, got, "two of three inputs are not enough")

	p.Address.SetCity("london")
	require.Len(t, got, 1)
	assert.Equal(t, []any{"Ada", 36, "london"}, got[0])

	p.SetAge(37)
	require.Len(t, got, 2)
	assert.Equal(t, []any{"Ada", 37, "london"}, got[1])
}

// without skipInitial the initial states satisfy the gate at subscribe time
func TestCombineInitialEmission(t *testing.T) {
	p := &person{Name: "Ada", Age: 36, Address: &address{City: "london"}}

	emissions := 0
	stop, err := watch.All(p, []string{"Name", "Age", "Address.City"}, func([]watch.Record) {
		emissions++
	})
	require.NoError(t, err)
	defer stop()

	assert.Equal(t, 1, emissions)
}

// two changes in the same call stack each trigger their own combined
// emission, never a batch
func TestCombineEmitsPerUpstreamEvent(t *testing.T) {
	p := &person{Name: "a", Age: 1}

	emissions := 0
	stop, err := watch.All(p, []string{"Name", "Age"}, func([]watch.Record) {
		emissions++
	}, watch.SkipInitial())
	require.NoError(t, err)
	defer stop()

	p.SetName("b")
	p.SetAge(2)
	p.SetName("c")
	assert.Equal(t, 3, emissions)
}

// disposing the combined subscription tears every chain down exactly once
func TestCombineStopDisposesAll(t *testing.T) {
	addr := &address{}
	p := &person{Address: addr}

	stop, err := watch.All(p, []string{"Name", "Address.City"}, func([]watch.Record) {})
	require.NoError(t, err)

	assert.Equal(t, 2, p.ListenerCount())
	assert.Equal(t, 1, addr.ListenerCount())

	stop()
	stop()
	assert.Zero(t, p.ListenerCount())
	assert.Zero(t, addr.ListenerCount())
}

// zero paths is a configuration error
func TestCombineArity(t *testing.T) {
	p := &person{}
	_, err := watch.All(p, nil, func([]watch.Record) {})
	assert.ErrorIs(t, err, watch.ErrArity)
}

// one bad path fails the whole combined subscription and leaves nothing
// attached
func TestCombineBadPathCleansUp(t *testing.T) {
	p := &person{}

	_, err := watch.All(p, []string{"Name", "Oops"}, func([]watch.Record) {})
	assert.ErrorIs(t, err, watch.ErrBadPath)
	assert.Zero(t, p.ListenerCount())
}

// Select runs the combined records through a selector
func TestSelect(t *testing.T) {
	p := &person{Name: "Ada", Age: 36}

	var got []string
	stop, err := watch.Select(p, []string{"Name", "Age"}, func(recs []watch.Record) string {
		name, _ := recs[0].Value()
		return name.(string)
	}, func(s string) {
		got = append(got, s)
	})
	require.NoError(t, err)
	defer stop()

	p.SetName("Grace")
	assert.Equal(t, []string{"Ada", "Grace"}, got)
}
