package view

// Hooks receives lifecycle callbacks for one view variant. Behavior is
// added by composition: a Definition carries an ordered list of Hooks
// and the lifecycle driver invokes them at fixed points, so no
// implementation needs to know about chaining or call order rules.
//
// OnRender runs before the binding engine's content pass; content a
// hook inserts under the view's node is therefore captured by the
// established bindings. An error from any hook propagates to the
// caller of the triggering transition and leaves the view in the last
// successfully entered phase.
type Hooks interface {
	OnRender(v *View) error
	OnAppear(v *View) error
	OnDisappear(v *View) error
	OnDestroy(v *View) error
}

// HookFuncs adapts a set of optional functions to the Hooks interface.
// Nil functions are no-ops.
type HookFuncs struct {
	Render    func(*View) error
	Appear    func(*View) error
	Disappear func(*View) error
	Destroy   func(*View) error
}

// OnRender calls Render if set.
func (h HookFuncs) OnRender(v *View) error {
	if h.Render != nil {
		return h.Render(v)
	}
	return nil
}

// OnAppear calls Appear if set.
func (h HookFuncs) OnAppear(v *View) error {
	if h.Appear != nil {
		return h.Appear(v)
	}
	return nil
}

// OnDisappear calls Disappear if set.
func (h HookFuncs) OnDisappear(v *View) error {
	if h.Disappear != nil {
		return h.Disappear(v)
	}
	return nil
}

// OnDestroy calls Destroy if set.
func (h HookFuncs) OnDestroy(v *View) error {
	if h.Destroy != nil {
		return h.Destroy(v)
	}
	return nil
}
