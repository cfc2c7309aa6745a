package mapops

import (
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestMerge(t *testing.T) {
	dst := map[string]int{"a": 1, "b": 2}
	src := map[string]int{"b": 20, "c": 30}

	got := Merge(dst, src)
	want := map[string]int{"a": 1, "b": 20, "c": 30}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("Merge: -got +want:\n%s", diff)
	}
	if diff := pretty.Compare(dst, want); diff != "" {
		t.Errorf("Merge should modify dst in place: -got +want:\n%s", diff)
	}
}

func TestMergeNilDst(t *testing.T) {
	got := Merge(nil, map[string]int{"a": 1})
	if diff := pretty.Compare(got, map[string]int{"a": 1}); diff != "" {
		t.Errorf("Merge(nil, src): -got +want:\n%s", diff)
	}
	got["b"] = 2 // result must be writable
}

func TestMergeFunc(t *testing.T) {
	dst := map[string]int{"a": 1, "b": 2}
	src := map[string]int{"b": 20, "c": 30}

	got := MergeFunc(dst, src, func(old, new int) int { return old + new })
	want := map[string]int{"a": 1, "b": 22, "c": 30}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("MergeFunc: -got +want:\n%s", diff)
	}
}

func TestInvert(t *testing.T) {
	got := Invert(map[string]int{"a": 1, "b": 2})
	want := map[int]string{1: "a", 2: "b"}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("Invert: -got +want:\n%s", diff)
	}

	empty := Invert(map[string]int(nil))
	if empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil map, got %v", empty)
	}
}

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]int{"c": 3, "a": 1, "b": 2})
	if diff := pretty.Compare(got, []string{"a", "b", "c"}); diff != "" {
		t.Errorf("SortedKeys: -got +want:\n%s", diff)
	}

	if SortedKeys(map[string]int(nil)) != nil {
		t.Errorf("Expected nil keys for nil map")
	}
}

func TestFilterKeys(t *testing.T) {
	m := map[string]int{"keep_a": 1, "drop_b": 2, "keep_c": 3}
	got := FilterKeys(m, func(k string) bool { return strings.HasPrefix(k, "keep_") })
	want := map[string]int{"keep_a": 1, "keep_c": 3}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("FilterKeys: -got +want:\n%s", diff)
	}
}
