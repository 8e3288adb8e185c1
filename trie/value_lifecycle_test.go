package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countedValue counts its own live instances: creating one increments
// the shared counter and release decrements it. The trie never calls
// release; the tests release each value they take back out of the
// trie when its association ends (overwrite, removal, or Clear) and
// check that the counter comes back to zero.
type countedValue struct {
	tag   string
	alive *int
}

func newCountedValue(alive *int, tag string) countedValue {
	*alive++
	return countedValue{tag: tag, alive: alive}
}

func (v countedValue) release() {
	if v.alive != nil {
		*v.alive--
	}
}

// S6: overwrite then remove, with the caller releasing each replaced
// or removed value exactly once.
func TestValueLifecycleOverwriteThenRemove(t *testing.T) {
	alive := 0
	tr := New[countedValue]()

	x := newCountedValue(&alive, "X")
	require.NoError(t, tr.Insert("mo", x))
	assert.Equal(t, 1, alive)

	old, err := tr.Lookup("mo")
	require.NoError(t, err)
	old.release() // caller's responsibility to release the value it is replacing
	assert.Equal(t, 0, alive)

	y := newCountedValue(&alive, "Y")
	require.NoError(t, tr.Insert("mo", y))
	assert.Equal(t, 1, alive)

	cur, err := tr.Lookup("mo")
	require.NoError(t, err)
	assert.Equal(t, "Y", cur.tag)

	require.NoError(t, tr.Remove("mo"))
	cur.release()
	assert.Equal(t, 0, alive)
}

func TestValueLifecycleClearReleasesEveryAssociation(t *testing.T) {
	alive := 0
	tr := New[countedValue]()
	for _, k := range []string{"a", "ab", "abc"} {
		require.NoError(t, tr.Insert(k, newCountedValue(&alive, k)))
	}
	assert.Equal(t, 3, alive)

	for _, k := range []string{"a", "ab", "abc"} {
		v, err := tr.Lookup(k)
		require.NoError(t, err)
		v.release()
	}
	tr.Clear()
	assert.Equal(t, 0, alive)
	assert.Equal(t, 0, tr.Len())
}
