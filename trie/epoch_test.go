package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S5: mutating the trie between steps invalidates a live prefix walker,
// permanently.
func TestPrefixWalkerInvalidatedByMutation(t *testing.T) {
	tr := classicTrie(t)
	w := tr.IterPrefixes("inn")

	require.NoError(t, tr.Remove("in"))

	_, _, err := w.Next()
	assert.ErrorIs(t, err, ErrStaleIterator)

	_, _, err = w.Next()
	assert.ErrorIs(t, err, ErrStaleIterator)
}

func TestSuffixWalkerInvalidatedByMutation(t *testing.T) {
	tr := classicTrie(t)
	w := tr.IterSuffixes("i")

	require.NoError(t, tr.Remove("in"))

	_, _, err := w.Next()
	assert.ErrorIs(t, err, ErrStaleIterator)
}

func TestCorrectionsWalkerInvalidatedByMutation(t *testing.T) {
	tr := classicTrie(t)
	w := tr.IterCorrections("i", 2)

	require.NoError(t, tr.Insert("zzz", 1))

	_, _, err := w.Next()
	assert.ErrorIs(t, err, ErrStaleIterator)
}

func TestWalkerSurvivesInterleavedReadsWithoutMutation(t *testing.T) {
	tr := classicTrie(t)
	w := tr.IterSuffixes("")

	// Pure reads between steps must not trip the guard.
	_ = tr.Len()
	_, _ = tr.Contains("to")

	keys, err := w.Collect()
	require.NoError(t, err)
	assert.Len(t, keys, tr.Len())
}

func TestMultipleLiveWalkersCoexistUntilMutation(t *testing.T) {
	tr := classicTrie(t)
	w1 := tr.IterSuffixes("")
	w2 := tr.IterPrefixes("inn")

	k1, ok1, err1 := w1.Next()
	require.NoError(t, err1)
	require.True(t, ok1)
	assert.NotEmpty(t, k1)

	k2, ok2, err2 := w2.Next()
	require.NoError(t, err2)
	require.True(t, ok2)
	assert.Equal(t, "i", k2)

	require.NoError(t, tr.Insert("brand-new", 1))

	_, _, err1 = w1.Next()
	assert.ErrorIs(t, err1, ErrStaleIterator)
	_, _, err2 = w2.Next()
	assert.ErrorIs(t, err2, ErrStaleIterator)
}

func TestBreakingIterationMidwayThenRestartingNeedsNewWalker(t *testing.T) {
	tr := classicTrie(t)
	w := tr.IterSuffixes("")
	seen := 0
	for {
		_, ok, err := w.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		seen++
		if seen == 2 {
			break // abandon the walker mid-traversal
		}
	}
	assert.Equal(t, 2, seen)

	fresh := tr.IterSuffixes("")
	all, err := fresh.Collect()
	require.NoError(t, err)
	assert.Len(t, all, tr.Len())
}
