package constvec_test

import (
	"errors"
	"testing"

	"github.com/momentics/constvec"
	"github.com/momentics/constvec/api"
)

func TestConstVec_PushGetLen(t *testing.T) {
	v := constvec.New[int](10)
	if err := v.Push(42); err != nil {
		t.Fatalf("push 42: %v", err)
	}
	if err := v.Push(7); err != nil {
		t.Fatalf("push 7: %v", err)
	}
	if got, err := v.At(0); err != nil || got != 42 {
		t.Fatalf("At(0) = %d, %v", got, err)
	}
	if got, err := v.At(1); err != nil || got != 7 {
		t.Fatalf("At(1) = %d, %v", got, err)
	}
	if _, err := v.Get(2); !errors.Is(err, constvec.ErrIndexOutOfBounds) {
		t.Fatalf("Get(2) err = %v, want ErrIndexOutOfBounds", err)
	}
	if v.Len() != 2 {
		t.Fatalf("Len = %d, want 2", v.Len())
	}
	if v.Cap() != 10 {
		t.Fatalf("Cap = %d, want 10", v.Cap())
	}
}

func TestConstVec_CapacityExceeded(t *testing.T) {
	for c := 0; c <= 8; c++ {
		v := constvec.New[int](c)
		for i := 0; i < c; i++ {
			if err := v.Push(i); err != nil {
				t.Fatalf("cap %d: push %d failed: %v", c, i, err)
			}
		}
		err := v.Push(c)
		if !errors.Is(err, constvec.ErrCapacityExceeded) {
			t.Fatalf("cap %d: overflow push err = %v", c, err)
		}
		if api.CodeOf(err) != api.ErrCodeCapacityExceeded {
			t.Fatalf("cap %d: code = %v", c, api.CodeOf(err))
		}
		if v.Len() != c {
			t.Fatalf("cap %d: Len = %d after overflow", c, v.Len())
		}
		if !v.IsFull() {
			t.Fatalf("cap %d: expected full", c)
		}
		// retry-safe: the container is unchanged by a failed push
		if err := v.Push(c + 1); !errors.Is(err, constvec.ErrCapacityExceeded) {
			t.Fatalf("cap %d: second overflow err = %v", c, err)
		}
		st := v.Stats()
		if st.Len != int64(c) || st.Reserved != int64(c) || st.Rejected != 2 {
			t.Fatalf("cap %d: unexpected stats %+v", c, st)
		}
	}
}

func TestConstVec_GetMatchesPushes(t *testing.T) {
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	v := constvec.New[string](8)
	for i, w := range words {
		idx, err := v.PushIndex(w)
		if err != nil {
			t.Fatalf("push %q: %v", w, err)
		}
		if idx != i {
			t.Fatalf("push %q landed at %d, want %d", w, idx, i)
		}
	}
	for i, w := range words {
		p, err := v.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if *p != w {
			t.Fatalf("Get(%d) = %q, want %q", i, *p, w)
		}
	}
	for _, i := range []int{-1, len(words), len(words) + 1, 100} {
		if _, err := v.Get(i); !errors.Is(err, constvec.ErrIndexOutOfBounds) {
			t.Errorf("Get(%d) err = %v, want ErrIndexOutOfBounds", i, err)
		}
	}
}

func TestConstVec_ReferenceStability(t *testing.T) {
	type item struct {
		id   int
		name string
	}
	v := constvec.New[item](64)
	if err := v.Push(item{id: 1, name: "first"}); err != nil {
		t.Fatal(err)
	}
	first, err := v.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 2; i <= 64; i++ {
		if err := v.Push(item{id: i}); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
		again, err := v.Get(0)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("element 0 moved after push %d", i)
		}
		if first.id != 1 || first.name != "first" {
			t.Fatalf("element 0 changed after push %d: %+v", i, *first)
		}
	}
}

func TestConstVec_SliceIsCapped(t *testing.T) {
	v := constvec.New[int](4)
	_ = v.Push(1)
	_ = v.Push(2)
	s := v.Slice()
	if len(s) != 2 || cap(s) != 2 {
		t.Fatalf("slice len=%d cap=%d, want 2/2", len(s), cap(s))
	}
	grown := append(s, 99)
	if &grown[0] == &s[0] {
		t.Fatal("append on published slice reused container storage")
	}
	if err := v.Push(3); err != nil {
		t.Fatal(err)
	}
	if got, _ := v.At(2); got != 3 {
		t.Fatalf("At(2) = %d, want 3", got)
	}
}

func TestConstVec_EmptyAndZeroCapacity(t *testing.T) {
	v := constvec.New[int](0)
	if !v.IsEmpty() || !v.IsFull() {
		t.Fatal("zero-capacity vector must be both empty and full")
	}
	if err := v.Push(1); !errors.Is(err, constvec.ErrCapacityExceeded) {
		t.Fatalf("push into zero capacity: %v", err)
	}
	if len(v.Slice()) != 0 {
		t.Fatal("expected empty slice")
	}
}

func TestConstVec_NegativeCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative capacity")
		}
	}()
	constvec.New[int](-1)
}
