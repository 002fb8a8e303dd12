package keypath

import "testing"

func mustParse(t *testing.T, s string) Expr {
	t.Helper()
	expr, err := Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return expr
}

func TestStore_SetAndResolve(t *testing.T) {
	s := NewStore()
	if err := s.Set("order.number", 5); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, ok := s.Resolve(mustParse(t, "order.number"))
	if !ok || v != 5 {
		t.Fatalf("Resolve = %v, %v; want 5, true", v, ok)
	}

	// Intermediate maps are created on demand and resolvable.
	v, ok = s.Resolve(mustParse(t, "order"))
	if !ok {
		t.Fatal("expected order to resolve to the intermediate map")
	}
	if m, isMap := v.(map[string]any); !isMap || m["number"] != 5 {
		t.Errorf("order = %v", v)
	}
}

func TestStore_ResolveMissing(t *testing.T) {
	s := NewStore()
	if _, ok := s.Resolve(mustParse(t, "nothing.here")); ok {
		t.Fatal("expected missing path to not resolve")
	}
}

func TestStore_SetRejectsFilters(t *testing.T) {
	s := NewStore()
	if err := s.Set("a.b | f", 1); err == nil {
		t.Fatal("expected error setting through a filtered keypath")
	}
}

func TestStore_ObserveExactPath(t *testing.T) {
	s := NewStore()
	var got []any
	unsub := s.Observe(mustParse(t, "order.number"), func(v any) {
		got = append(got, v)
	})
	defer unsub()

	if err := s.Set("order.number", 5); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("order.number", 6); err != nil {
		t.Fatalf("set: %v", err)
	}
	if len(got) != 2 || got[0] != 5 || got[1] != 6 {
		t.Fatalf("expected [5 6], got %v", got)
	}
}

func TestStore_ObserveAncestorChange(t *testing.T) {
	s := NewStore()
	var got []any
	unsub := s.Observe(mustParse(t, "order.number"), func(v any) {
		got = append(got, v)
	})
	defer unsub()

	// Replacing the whole subtree re-resolves the deeper observer.
	if err := s.Set("order", map[string]any{"number": 7}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if len(got) != 1 || got[0] != 7 {
		t.Fatalf("expected [7], got %v", got)
	}
}

func TestStore_ObserveDescendantChange(t *testing.T) {
	s := NewStore()
	var fired int
	unsub := s.Observe(mustParse(t, "order"), func(v any) {
		fired++
	})
	defer unsub()

	if err := s.Set("order.number", 5); err != nil {
		t.Fatalf("set: %v", err)
	}
	if fired != 1 {
		t.Fatalf("expected ancestor observer to fire once, fired %d", fired)
	}
}

func TestStore_UnrelatedChangeDoesNotFire(t *testing.T) {
	s := NewStore()
	var fired int
	unsub := s.Observe(mustParse(t, "order.number"), func(any) { fired++ })
	defer unsub()

	if err := s.Set("customer.name", "ada"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if fired != 0 {
		t.Fatalf("unrelated change fired observer %d times", fired)
	}
}

func TestStore_Filters(t *testing.T) {
	s := NewStore()
	s.RegisterFilter("double", func(v any) any {
		if n, ok := v.(int); ok {
			return n * 2
		}
		return v
	})
	if err := s.Set("n", 4); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, ok := s.Resolve(mustParse(t, "n | double"))
	if !ok || v != 8 {
		t.Fatalf("Resolve = %v, %v; want 8, true", v, ok)
	}

	// Unknown filters fail resolution instead of passing values through.
	if _, ok := s.Resolve(mustParse(t, "n | missing")); ok {
		t.Fatal("expected unknown filter to fail resolution")
	}
}

func TestStore_Unsubscribe(t *testing.T) {
	s := NewStore()
	var fired int
	unsub := s.Observe(mustParse(t, "a"), func(any) { fired++ })

	unsub()
	unsub() // calling again is harmless

	if err := s.Set("a", 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	if fired != 0 {
		t.Fatalf("observer fired after unsubscribe")
	}
	if n := s.ObserverCount(); n != 0 {
		t.Fatalf("expected 0 observers, got %d", n)
	}
}

func TestStore_ObserverMayWriteBack(t *testing.T) {
	s := NewStore()
	unsub := s.Observe(mustParse(t, "a"), func(v any) {
		if v == 1 {
			// Writing from a callback must not deadlock.
			_ = s.Set("b", 2)
		}
	})
	defer unsub()

	if err := s.Set("a", 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok := s.Resolve(mustParse(t, "b")); !ok || v != 2 {
		t.Fatalf("expected write-back to land, got %v, %v", v, ok)
	}
}
