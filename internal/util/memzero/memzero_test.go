package memzero_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nanocamo/internal/util/memzero"
)

func TestZeroAll(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{0xff}
	memzero.ZeroAll(a, b, nil)
	require.True(t, memzero.IsZero(a))
	require.True(t, memzero.IsZero(b))
	require.False(t, memzero.IsZero([]byte{0, 0, 1}))
}
