package view

import "sync"

// Registry tracks live view instances. It is owned by the host, not by
// the views: the lifecycle driver adds instances at construction and
// notifies the registry when they are destroyed, so no view
// self-registers into shared process state.
type Registry struct {
	mu     sync.Mutex
	views  map[*View]struct{}
	subs   []*registrySub
	nextID int
}

type registrySub struct {
	id int
	fn func(*View)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[*View]struct{})}
}

func (r *Registry) add(v *View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[v] = struct{}{}
}

// Len returns the number of live (not yet destroyed) views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Has reports whether v is tracked and not yet destroyed.
func (r *Registry) Has(v *View) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.views[v]
	return ok
}

// OnDestroy registers a callback invoked when any tracked view is
// destroyed. Returns an unsubscribe function.
func (r *Registry) OnDestroy(fn func(*View)) func() {
	r.mu.Lock()
	sub := &registrySub{id: r.nextID, fn: fn}
	r.nextID++
	r.subs = append(r.subs, sub)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, s := range r.subs {
			if s == sub {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// notifyDestroyed removes v and fires destroy callbacks.
func (r *Registry) notifyDestroyed(v *View) {
	r.mu.Lock()
	delete(r.views, v)
	snapshot := make([]*registrySub, len(r.subs))
	copy(snapshot, r.subs)
	r.mu.Unlock()

	for _, s := range snapshot {
		s.fn(v)
	}
}
