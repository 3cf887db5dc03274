package spectral

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionOrdering(t *testing.T) {
	v := SpectralVersion{1, 2, 3}
	require.Equal(t, "1.2.3", v.String())
	require.True(t, v.Equal(SpectralVersion{1, 2, 3}))
	for _, older := range []SpectralVersion{{0, 9, 9}, {1, 1, 7}, {1, 2, 2}} {
		require.True(t, v.After(older), older.String())
		require.False(t, v.Before(older), older.String())
		require.True(t, older.Before(v), older.String())
	}
	require.False(t, v.After(v))
	require.False(t, v.Before(v))
	require.True(t, Version.After(SpectralVersion{}))
}
