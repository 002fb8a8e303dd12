package view

// Event identifies a lifecycle event emitted by a view.
type Event int

const (
	// EventReady fires exactly once per render, after bindings are
	// established.
	EventReady Event = iota
	// EventBeforeAppear fires before the view enters the appeared phase.
	EventBeforeAppear
	// EventAppear fires after the view enters the appeared phase.
	EventAppear
	// EventBeforeDisappear fires before the view leaves the appeared phase.
	EventBeforeDisappear
	// EventDisappear fires after the view enters the disappeared phase.
	EventDisappear
	// EventBeforeDestroy fires at the start of destroy, while bindings
	// are still live.
	EventBeforeDestroy
	// EventDestroy fires after teardown completes.
	EventDestroy
)

func (e Event) String() string {
	switch e {
	case EventReady:
		return "ready"
	case EventBeforeAppear:
		return "beforeAppear"
	case EventAppear:
		return "appear"
	case EventBeforeDisappear:
		return "beforeDisappear"
	case EventDisappear:
		return "disappear"
	case EventBeforeDestroy:
		return "beforeDestroy"
	case EventDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

type eventListener struct {
	id int
	fn func(*View)
}

// On registers a listener for a lifecycle event and returns an
// unsubscribe function. Listeners fire synchronously in registration
// order.
func (v *View) On(e Event, fn func(*View)) func() {
	l := &eventListener{id: v.nextSubID, fn: fn}
	v.nextSubID++
	v.listeners[e] = append(v.listeners[e], l)
	return func() {
		list := v.listeners[e]
		for i, cur := range list {
			if cur == l {
				v.listeners[e] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// emit fires listeners for an event over a snapshot, so a listener may
// unsubscribe itself or register new listeners.
func (v *View) emit(e Event) {
	list := v.listeners[e]
	snapshot := make([]*eventListener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		l.fn(v)
	}
}
