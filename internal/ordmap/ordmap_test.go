package ordmap

import (
	"math/rand"
	"testing"
)

func TestPutAndGet(t *testing.T) {
	m := New[rune, int]()
	m.Put('b', 2)
	m.Put('a', 1)
	m.Put('c', 3)

	if val, ok := m.Get('a'); !ok || val != 1 {
		t.Errorf("Get('a') = %v, %v; want 1, true", val, ok)
	}
	if _, ok := m.Get('z'); ok {
		t.Errorf("Get('z') ok = true; want false")
	}
}

func TestPutOverwriteLeavesLenUnchanged(t *testing.T) {
	m := New[rune, int]()
	m.Put('a', 1)
	if grew := m.Put('a', 2); grew {
		t.Errorf("overwrite reported as growth")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d; want 1", m.Len())
	}
	if val, _ := m.Get('a'); val != 2 {
		t.Errorf("Get('a') = %d; want 2", val)
	}
}

func TestKeysAscending(t *testing.T) {
	m := New[rune, int]()
	for i, ch := range []rune{'d', 'b', 'z', 'a', 'c'} {
		m.Put(ch, i)
	}
	keys := m.Keys()
	want := []rune{'a', 'b', 'c', 'd', 'z'}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v; want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q; want %q", i, keys[i], want[i])
		}
	}
}

func TestRemove(t *testing.T) {
	m := New[rune, int]()
	m.Put('a', 1)
	m.Put('b', 2)
	m.Put('c', 3)

	if val, ok := m.Remove('b'); !ok || val != 2 {
		t.Errorf("Remove('b') = %v, %v; want 2, true", val, ok)
	}
	if _, ok := m.Get('b'); ok {
		t.Errorf("'b' still present after Remove")
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d; want 2", m.Len())
	}
	if _, ok := m.Remove('z'); ok {
		t.Errorf("Remove of absent key reported true")
	}
}

func TestRandomInsertKeepsOrder(t *testing.T) {
	m := New[int, int]()
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := rand.Intn(10000)
		m.Put(v, v)
		seen[v] = true
	}
	keys := m.Keys()
	if len(keys) != len(seen) {
		t.Fatalf("Len mismatch: Keys()=%d distinct inserted=%d", len(keys), len(seen))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("Keys() not strictly ascending at %d: %d >= %d", i, keys[i-1], keys[i])
		}
	}
}
