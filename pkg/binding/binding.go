package binding

import (
	"fmt"

	"github.com/go-vista/vista/pkg/errors"
	"github.com/go-vista/vista/pkg/keypath"
)

// Context is the external binding-context contract: it resolves keypath
// expressions against host data and delivers updated values to
// observers. [keypath.Store] implements it; hosts with their own data
// layer supply their own implementation.
//
// Observe must return a disposable handle. Implementations are expected
// to deliver updates atomically on a single logical thread.
type Context interface {
	Resolve(expr keypath.Expr) (any, bool)
	Observe(expr keypath.Expr, fn func(any)) func()
}

// State is the binding state of one option.
type State int

const (
	// Unbound means no source has been bound (or a dynamic binding
	// was released).
	Unbound State = iota
	// BoundStatic means a literal value was pushed once.
	BoundStatic
	// BoundDynamic means a keypath subscription is live.
	BoundDynamic
)

func (s State) String() string {
	switch s {
	case BoundStatic:
		return "bound(static)"
	case BoundDynamic:
		return "bound(dynamic)"
	default:
		return "unbound"
	}
}

// Binding tracks one option's source and, for dynamic bindings, the
// live subscription.
type Binding struct {
	name        string
	state       State
	unsubscribe func()
}

// Name returns the bound option's name.
func (b *Binding) Name() string { return b.name }

// State returns the binding's current state.
func (b *Binding) State() State { return b.state }

// release disposes a dynamic subscription. A panicking unsubscribe is
// reported and does not stop teardown of sibling bindings.
func (b *Binding) release() {
	unsub := b.unsubscribe
	b.unsubscribe = nil
	b.state = Unbound
	if unsub == nil {
		return
	}
	defer errors.Recover("binding.release")
	unsub()
}

// Set holds the bindings of one view, keyed by option name.
type Set struct {
	bindings map[string]*Binding
	order    []string
}

// NewSet creates an empty binding set.
func NewSet() *Set {
	return &Set{bindings: make(map[string]*Binding)}
}

// Bind attaches a source to an option and pushes its value through push.
//
// Literal sources push once and become bound(static). Keypath sources
// push the current resolution (if any) and then once per update until
// the set is released, becoming bound(dynamic). Binding the same option
// twice is an error.
func (s *Set) Bind(opt Option, src Source, ctx Context, push func(name string, value any)) error {
	if _, dup := s.bindings[opt.Name]; dup {
		return fmt.Errorf("option %q already bound", opt.Name)
	}

	b := &Binding{name: opt.Name}
	switch src.Kind {
	case SourceLiteral:
		push(opt.Name, src.Literal)
		b.state = BoundStatic

	case SourceKeypath:
		if ctx == nil {
			return fmt.Errorf("option %q: keypath source %q with no binding context", opt.Name, src.Expr)
		}
		if v, ok := ctx.Resolve(src.Expr); ok {
			push(opt.Name, v)
		}
		name := opt.Name
		b.unsubscribe = ctx.Observe(src.Expr, func(v any) {
			push(name, v)
		})
		b.state = BoundDynamic

	default:
		return fmt.Errorf("option %q: unknown source kind %d", opt.Name, src.Kind)
	}

	s.bindings[opt.Name] = b
	s.order = append(s.order, opt.Name)
	return nil
}

// Get returns the binding for an option name, or nil.
func (s *Set) Get(name string) *Binding {
	return s.bindings[name]
}

// Len returns the number of bindings in the set.
func (s *Set) Len() int {
	return len(s.bindings)
}

// ReleaseAll disposes every dynamic subscription in binding order.
// Release continues past a failing unsubscribe so no later subscription
// is left dangling.
func (s *Set) ReleaseAll() {
	for _, name := range s.order {
		s.bindings[name].release()
	}
}
