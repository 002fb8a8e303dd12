package keypath

import (
	"fmt"
	"sync"
)

// Filter transforms an observed value before it is delivered.
type Filter func(any) any

// Store is a map-backed data context with live keypath observation.
//
// Values live in nested map[string]any structures. Observers registered
// with Observe are invoked synchronously whenever a Set touches their
// path (the changed path or any of its ancestors or descendants), so
// updates apply as atomic, non-interleaved deliveries.
type Store struct {
	mu        sync.Mutex
	data      map[string]any
	filters   map[string]Filter
	observers map[int]*observer
	nextID    int
}

type observer struct {
	expr Expr
	fn   func(any)
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		data:      make(map[string]any),
		filters:   make(map[string]Filter),
		observers: make(map[int]*observer),
	}
}

// RegisterFilter makes a named filter available to expressions resolved
// against this store. Registering nil removes the filter.
func (s *Store) RegisterFilter(name string, f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f == nil {
		delete(s.filters, name)
		return
	}
	s.filters[name] = f
}

// Set writes a value at a dotted path, creating intermediate maps as
// needed, and notifies every observer whose expression overlaps the path.
// The path may not carry filters.
func (s *Store) Set(path string, value any) error {
	expr, err := Parse(path)
	if err != nil {
		return err
	}
	if len(expr.Filters) > 0 {
		return fmt.Errorf("cannot set through filtered keypath %q", path)
	}

	s.mu.Lock()
	node := s.data
	for _, seg := range expr.Path[:len(expr.Path)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[seg] = next
		}
		node = next
	}
	node[expr.Path[len(expr.Path)-1]] = value

	type delivery struct {
		fn    func(any)
		value any
		ok    bool
	}
	var pending []delivery
	for _, obs := range s.observers {
		if !overlaps(expr.Path, obs.expr.Path) {
			continue
		}
		v, ok := s.resolveLocked(obs.expr)
		pending = append(pending, delivery{obs.fn, v, ok})
	}
	s.mu.Unlock()

	// Deliver outside the lock so a callback may read or write the store.
	for _, d := range pending {
		if d.ok {
			d.fn(d.value)
		}
	}
	return nil
}

// Resolve evaluates an expression against the current data.
// The second result is false when the path does not resolve or a filter
// is not registered.
func (s *Store) Resolve(expr Expr) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveLocked(expr)
}

func (s *Store) resolveLocked(expr Expr) (any, bool) {
	var value any = s.data
	for _, seg := range expr.Path {
		m, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		value, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	for _, name := range expr.Filters {
		f, ok := s.filters[name]
		if !ok {
			return nil, false
		}
		value = f(value)
	}
	return value, true
}

// Observe registers a callback invoked with the re-evaluated value of
// expr whenever an overlapping path changes. It returns an unsubscribe
// function; calling it more than once is harmless.
func (s *Store) Observe(expr Expr, fn func(any)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = &observer{expr: expr, fn: fn}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// ObserverCount returns the number of live subscriptions.
func (s *Store) ObserverCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}
