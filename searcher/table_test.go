package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	t.Run("missing keys", func(t *testing.T) {
		table := NewTable()

		_, ok := table.Get(Key{Board: "0000", Player: 0})

		require.False(t, ok)
		require.Zero(t, table.Len())
	})

	t.Run("keeping the first value written", func(t *testing.T) {
		table := NewTable()
		key := Key{Board: "0100", Player: 1}

		require.True(t, table.Put(key, -1))
		require.False(t, table.Put(key, 1), "Second write should be refused")

		value, ok := table.Get(key)
		require.True(t, ok)
		require.Equal(t, -1.0, value)
		require.Equal(t, 1, table.Len())
	})

	t.Run("separating players on the same board", func(t *testing.T) {
		table := NewTable()

		table.Put(Key{Board: "0100", Player: 0}, 1)
		table.Put(Key{Board: "0100", Player: 1}, -1)

		require.Equal(t, 2, table.Len())
	})
}

func TestParseKeying(t *testing.T) {
	for _, k := range []Keying{Plain, Transposition, Symmetry} {
		got, err := ParseKeying(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	got, err := ParseKeying("Symmetry")
	require.NoError(t, err)
	require.Equal(t, Symmetry, got, "Names are case-insensitive")

	_, err = ParseKeying("alphabeta")
	require.ErrorContains(t, err, "plain, transposition, symmetry")
	require.Equal(t, "keying(7)", Keying(7).String())
}
