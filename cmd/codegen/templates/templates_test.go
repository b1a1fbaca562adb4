package templates

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the checked-in facade must be exactly what the generator produces
func TestArityGenMatchesCheckedInFile(t *testing.T) {
	checkedIn, err := os.ReadFile("../../../watch/arity.go")
	require.NoError(t, err)
	assert.Equal(t, string(checkedIn), ArityGen(16))
}

func TestArityGenCount(t *testing.T) {
	out := ArityGen(3)
	assert.Contains(t, out, "func Values2[")
	assert.Contains(t, out, "func Values3[")
	assert.NotContains(t, out, "func Values4[")
}

func TestParamHelpers(t *testing.T) {
	assert.Equal(t, "T0, T1, T2", typeParams(3))
	assert.Equal(t, "path0, path1", pathParams(2))
	assert.Equal(t, "", prefixedStrings("x", 0))
	assert.False(t, strings.HasSuffix(typeParams(4), ", "))
}
