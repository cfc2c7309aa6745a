package ordered

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestZeroValue(t *testing.T) {
	var m Map[string, int]
	if m.Len() != 0 {
		t.Errorf("Expected empty map, got Len=%d", m.Len())
	}
	if _, ok := m.Get("a"); ok {
		t.Errorf("Get on empty map returned ok")
	}
	if _, ok := m.Delete("a"); ok {
		t.Errorf("Delete on empty map returned ok")
	}
	if _, _, ok := m.Min(); ok {
		t.Errorf("Min on empty map returned ok")
	}
	if _, _, ok := m.Max(); ok {
		t.Errorf("Max on empty map returned ok")
	}
	if m.Keys() != nil {
		t.Errorf("Expected nil keys on empty map")
	}
}

func TestSetGetDelete(t *testing.T) {
	var m Map[string, int]

	if _, replaced := m.Set("a", 1); replaced {
		t.Errorf("Set of a new key reported replaced")
	}
	prev, replaced := m.Set("a", 2)
	if !replaced || prev != 1 {
		t.Errorf("Set = (%d, %v), want (1, true)", prev, replaced)
	}
	if v, ok := m.Get("a"); !ok || v != 2 {
		t.Errorf("Get = (%d, %v), want (2, true)", v, ok)
	}

	prev, deleted := m.Delete("a")
	if !deleted || prev != 2 {
		t.Errorf("Delete = (%d, %v), want (2, true)", prev, deleted)
	}
	if m.Len() != 0 {
		t.Errorf("Expected empty map after delete, got Len=%d", m.Len())
	}
}

func TestOrderedIteration(t *testing.T) {
	var m Map[int, string]
	for _, k := range rand.Perm(100) {
		m.Set(k, "v")
	}

	var keys []int
	for k := range m.All() {
		keys = append(keys, k)
	}
	if len(keys) != 100 || !slices.IsSorted(keys) {
		t.Fatalf("All did not yield 100 keys in ascending order: %v", keys)
	}

	var desc []int
	for k := range m.Descend() {
		desc = append(desc, k)
	}
	slices.Reverse(desc)
	if diff := pretty.Compare(desc, keys); diff != "" {
		t.Errorf("Descend should mirror All: -got +want:\n%s", diff)
	}
}

func TestMinMaxKeys(t *testing.T) {
	var m Map[string, int]
	m.Set("banana", 2)
	m.Set("apple", 1)
	m.Set("cherry", 3)

	if k, v, ok := m.Min(); !ok || k != "apple" || v != 1 {
		t.Errorf("Min = (%q, %d, %v), want (apple, 1, true)", k, v, ok)
	}
	if k, v, ok := m.Max(); !ok || k != "cherry" || v != 3 {
		t.Errorf("Max = (%q, %d, %v), want (cherry, 3, true)", k, v, ok)
	}
	if diff := pretty.Compare(m.Keys(), []string{"apple", "banana", "cherry"}); diff != "" {
		t.Errorf("Keys: -got +want:\n%s", diff)
	}
}

func TestEarlyBreak(t *testing.T) {
	var m Map[int, int]
	for i := 0; i < 10; i++ {
		m.Set(i, i)
	}
	count := 0
	for range m.All() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("Expected iteration to stop at 3, got %d", count)
	}
}
