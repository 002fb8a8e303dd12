package view

import (
	"github.com/go-vista/vista/pkg/errors"
)

// Phase is a view's lifecycle state.
type Phase int

const (
	// PhaseConstructed means options are resolved but nothing has been
	// rendered; the node may still be absent.
	PhaseConstructed Phase = iota
	// PhaseRendered means content bindings are established.
	PhaseRendered
	// PhaseAppeared means the view's node is part of the live render tree.
	PhaseAppeared
	// PhaseDisappeared means the node was detached; it remains valid
	// and reusable.
	PhaseDisappeared
	// PhaseDestroyed is terminal: bindings are torn down and the node
	// reference released.
	PhaseDestroyed
)

func (p Phase) String() string {
	switch p {
	case PhaseConstructed:
		return "constructed"
	case PhaseRendered:
		return "rendered"
	case PhaseAppeared:
		return "appeared"
	case PhaseDisappeared:
		return "disappeared"
	case PhaseDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

func (v *View) lifecycleErr(op string) error {
	return &errors.LifecycleError{View: v.name, Op: op, Phase: v.phase.String()}
}

// Render establishes the view's content bindings. It requires a node,
// runs OnRender hooks in order (so hook-inserted content is captured),
// invokes the binding engine once, subscribes to render-tree
// notifications, and emits EventReady. Rendering is single-shot: a
// second call returns *errors.LifecycleError.
//
// A hook or engine error propagates and leaves the view constructed.
func (v *View) Render() error {
	if v.phase != PhaseConstructed {
		return v.lifecycleErr("render")
	}
	if v.node == nil {
		return &errors.LifecycleError{View: v.name, Op: "render", Phase: "constructed with no node"}
	}

	for _, h := range v.hooks {
		if err := h.OnRender(v); err != nil {
			return err
		}
	}
	if v.engine != nil {
		if err := v.engine.Bind(v.html, v.node, v.ctx); err != nil {
			return err
		}
	}
	if v.tree != nil {
		v.attachSub = v.tree.OnAttach(v.node, func() { _ = v.Appear() })
		v.detachSub = v.tree.OnDetach(v.node, func() { _ = v.Disappear() })
	}

	v.phase = PhaseRendered
	v.emit(EventReady)
	return nil
}

// Appear transitions the view (and its subtree, depth-first, the view
// before its descendants) into the appeared phase. Redundant calls are
// idempotent no-ops. Calling before Render completes or after Destroy
// returns *errors.LifecycleError.
//
// A hook error propagates and leaves the view in its previous phase.
func (v *View) Appear() error {
	switch v.phase {
	case PhaseDestroyed, PhaseConstructed:
		return v.lifecycleErr("appear")
	}

	if v.phase != PhaseAppeared {
		v.emit(EventBeforeAppear)
		for _, h := range v.hooks {
			if err := h.OnAppear(v); err != nil {
				return err
			}
		}
		v.phase = PhaseAppeared
		v.emit(EventAppear)
	}

	for _, c := range v.Children() {
		if c.phase == PhaseConstructed || c.phase == PhaseDestroyed {
			continue
		}
		if err := c.Appear(); err != nil {
			return err
		}
	}
	return nil
}

// Disappear transitions the view (and its subtree, depth-first, the
// view before its descendants) into the disappeared phase. The node
// remains valid and reusable. Redundant calls, including on a rendered
// view that never appeared, are idempotent no-ops. Calling before
// Render completes or after Destroy returns *errors.LifecycleError.
func (v *View) Disappear() error {
	switch v.phase {
	case PhaseDestroyed, PhaseConstructed:
		return v.lifecycleErr("disappear")
	}

	if v.phase == PhaseAppeared {
		v.emit(EventBeforeDisappear)
		for _, h := range v.hooks {
			if err := h.OnDisappear(v); err != nil {
				return err
			}
		}
		v.phase = PhaseDisappeared
		v.emit(EventDisappear)
	}

	for _, c := range v.Children() {
		if c.phase == PhaseConstructed || c.phase == PhaseDestroyed {
			continue
		}
		if err := c.Disappear(); err != nil {
			return err
		}
	}
	return nil
}

// Destroy tears the view down. The sequence is: EventBeforeDestroy
// (bindings still live), children destroyed first (depth-first,
// children before parent), OnDestroy hooks, option subscriptions
// released, render-tree subscriptions dropped, EventDestroy, registry
// notification. Destroyed is terminal; any further lifecycle call
// returns *errors.LifecycleError.
//
// Reactive option updates stop being delivered the moment Destroy
// begins. Subscription release continues past individual failures so
// no observer is left dangling.
func (v *View) Destroy() error {
	if v.phase == PhaseDestroyed {
		return v.lifecycleErr("destroy")
	}

	v.mu.Lock()
	v.destroying = true
	v.mu.Unlock()

	v.emit(EventBeforeDestroy)

	for _, c := range v.Children() {
		if c.phase == PhaseDestroyed {
			continue
		}
		if err := c.Destroy(); err != nil {
			return err
		}
	}

	for _, h := range v.hooks {
		if err := h.OnDestroy(v); err != nil {
			return err
		}
	}

	v.bindings.ReleaseAll()
	if v.attachSub != nil {
		v.attachSub()
		v.attachSub = nil
	}
	if v.detachSub != nil {
		v.detachSub()
		v.detachSub = nil
	}

	v.phase = PhaseDestroyed
	v.node = nil
	v.emit(EventDestroy)

	if v.registry != nil {
		v.registry.notifyDestroyed(v)
	}
	if v.parent != nil {
		v.parent.removeChild(v)
		v.parent = nil
	}
	return nil
}
