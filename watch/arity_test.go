package watch_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/watchparty/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the typed wrappers apply the selector to realized values, one emission per
// upstream change once every path has a value
func TestValues2(t *testing.T) {
	p := &person{Name: "Ada", Age: 36}

	var got []string
	stop, err := watch.Values2(p,
		"Name", "Age",
		func(name string, age int) string {
			return fmt.Sprintf("%s:%d", name, age)
		},
		func(s string) { got = append(got, s) },
	)
	require.NoError(t, err)
	defer stop()

	p.SetAge(37)
	assert.Equal(t, []string{"Ada:36", "Ada:37"}, got)
}

// broken chains feed zero values into the selector
func TestValues3BrokenChainZeroValue(t *testing.T) {
	p := &person{Name: "Ada", Age: 36}

	var got []string
	stop, err := watch.Values3(p,
		"Name", "Age", "Address.City",
		func(name string, age int, city string) string {
			return fmt.Sprintf("%s:%d:%q", name, age, city)
		},
		func(s string) { got = append(got, s) },
	)
	require.NoError(t, err)
	defer stop()

	require.Len(t, got, 1)
	assert.Equal(t, `Ada:36:""`, got[0])

	p.SetAddress(&address{City: "oslo"})
	require.Len(t, got, 2)
	assert.Equal(t, `Ada:36:"oslo"`, got[1])
}

// a mismatched path is caught per type parameter at subscribe time
func TestValues2TypeMismatch(t *testing.T) {
	p := &person{}
	_, err := watch.Values2(p,
		"Name", "Age",
		func(name string, age string) string { return name + age },
		func(string) {},
	)
	assert.ErrorIs(t, err, watch.ErrTypeMismatch)
}
