package sortby

import (
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

type user struct {
	Name string
	Age  int
}

func TestAscDesc(t *testing.T) {
	users := []user{{"carol", 35}, {"alice", 30}, {"bob", 25}}

	byAge := slices.Clone(users)
	slices.SortFunc(byAge, Asc(func(u user) int { return u.Age }))
	if diff := pretty.Compare(byAge, []user{{"bob", 25}, {"alice", 30}, {"carol", 35}}); diff != "" {
		t.Errorf("Asc(Age): -got +want:\n%s", diff)
	}

	byName := slices.Clone(users)
	slices.SortFunc(byName, Desc(func(u user) string { return u.Name }))
	if diff := pretty.Compare(byName, []user{{"carol", 35}, {"bob", 25}, {"alice", 30}}); diff != "" {
		t.Errorf("Desc(Name): -got +want:\n%s", diff)
	}
}

func TestByKey(t *testing.T) {
	s := []string{"10", "2", "33", "4"}
	ByKey(s, func(v string) int {
		n, _ := strconv.Atoi(v)
		return n
	})
	if diff := pretty.Compare(s, []string{"2", "4", "10", "33"}); diff != "" {
		t.Errorf("ByKey: -got +want:\n%s", diff)
	}

	// Nil and single-element inputs are no-ops.
	ByKey(nil, strings.ToLower)
	ByKey([]string{"x"}, strings.ToLower)
}

func TestByKeyComputesKeysOnce(t *testing.T) {
	var calls atomic.Int64
	s := rand.Perm(500)
	ByKey(s, func(v int) int {
		calls.Add(1)
		return v
	})
	if !slices.IsSorted(s) {
		t.Fatalf("ByKey did not sort the slice")
	}
	if got := calls.Load(); got != 500 {
		t.Errorf("Expected exactly 500 key calls, got %d", got)
	}
}

func TestByKeyStable(t *testing.T) {
	type row struct {
		Group string
		Seq   int
	}
	s := []row{{"b", 1}, {"a", 2}, {"b", 3}, {"a", 4}}
	ByKeyStable(s, func(r row) string { return r.Group })
	want := []row{{"a", 2}, {"a", 4}, {"b", 1}, {"b", 3}}
	if diff := pretty.Compare(s, want); diff != "" {
		t.Errorf("ByKeyStable: -got +want:\n%s", diff)
	}
}

func TestMinByMaxBy(t *testing.T) {
	users := []user{{"carol", 35}, {"alice", 30}, {"bob", 25}}

	if v, ok := MinBy(users, func(u user) int { return u.Age }); !ok || v.Name != "bob" {
		t.Errorf("MinBy = %+v (ok=%v), want bob", v, ok)
	}
	if v, ok := MaxBy(users, func(u user) int { return u.Age }); !ok || v.Name != "carol" {
		t.Errorf("MaxBy = %+v (ok=%v), want carol", v, ok)
	}
	if _, ok := MinBy(nil, func(u user) int { return u.Age }); ok {
		t.Errorf("MinBy on empty input returned ok")
	}
	if _, ok := MaxBy(nil, func(u user) int { return u.Age }); ok {
		t.Errorf("MaxBy on empty input returned ok")
	}
}

func BenchmarkByKey(b *testing.B) {
	src := make([]string, 1000)
	for i := range src {
		src[i] = strconv.Itoa(rand.Intn(100000))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := slices.Clone(src)
		ByKey(s, func(v string) int {
			n, _ := strconv.Atoi(v)
			return n
		})
	}
}

func BenchmarkSortFuncRecomputingKeys(b *testing.B) {
	src := make([]string, 1000)
	for i := range src {
		src[i] = strconv.Itoa(rand.Intn(100000))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := slices.Clone(src)
		slices.SortFunc(s, Asc(func(v string) int {
			n, _ := strconv.Atoi(v)
			return n
		}))
	}
}
