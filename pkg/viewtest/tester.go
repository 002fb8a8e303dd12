// Package viewtest provides an isolated harness for exercising view
// lifecycles without a real host: an in-memory render tree, a keypath
// store as the binding context, a recording binding engine, and an
// event log for asserting transition ordering.
package viewtest

import (
	"fmt"
	"testing"

	"github.com/go-vista/vista/pkg/keypath"
	"github.com/go-vista/vista/pkg/rendertree"
	"github.com/go-vista/vista/pkg/view"
)

// Tester drives view lifecycles against fake collaborators and records
// every lifecycle event in order.
type Tester struct {
	Tree     *rendertree.Tree
	Store    *keypath.Store
	Registry *view.Registry
	Engine   *RecordingEngine

	events []string
}

// NewTester creates a tester with a fresh render tree, keypath store,
// registry, and recording engine.
func NewTester() *Tester {
	return &Tester{
		Tree:     rendertree.NewTree(),
		Store:    keypath.NewStore(),
		Registry: view.NewRegistry(),
		Engine:   &RecordingEngine{},
	}
}

var allEvents = []view.Event{
	view.EventReady,
	view.EventBeforeAppear,
	view.EventAppear,
	view.EventBeforeDisappear,
	view.EventDisappear,
	view.EventBeforeDestroy,
	view.EventDestroy,
}

// Construct builds a view wired to the tester's collaborators (unless
// the config overrides them) and records its lifecycle events.
func (ts *Tester) Construct(def view.Definition, cfg view.Config) (*view.View, error) {
	if cfg.Tree == nil {
		cfg.Tree = ts.Tree
	}
	if cfg.Context == nil {
		cfg.Context = ts.Store
	}
	if cfg.Engine == nil {
		cfg.Engine = ts.Engine
	}
	if cfg.Registry == nil {
		cfg.Registry = ts.Registry
	}
	v, err := view.New(def, cfg)
	if err != nil {
		return nil, err
	}
	ts.Observe(v)
	return v, nil
}

// MustConstruct is Construct that fails the test on error.
func (ts *Tester) MustConstruct(t *testing.T, def view.Definition, cfg view.Config) *view.View {
	t.Helper()
	v, err := ts.Construct(def, cfg)
	if err != nil {
		t.Fatalf("construct %s: %v", def.Name, err)
	}
	return v
}

// Observe subscribes the tester's event log to every lifecycle event
// of v. Entries have the form "name:event".
func (ts *Tester) Observe(v *view.View) {
	for _, e := range allEvents {
		event := e
		v.On(event, func(v *view.View) {
			ts.events = append(ts.events, fmt.Sprintf("%s:%s", v.Name(), event))
		})
	}
}

// Events returns the recorded event log.
func (ts *Tester) Events() []string {
	out := make([]string, len(ts.events))
	copy(out, ts.events)
	return out
}

// Reset clears the event log.
func (ts *Tester) Reset() {
	ts.events = nil
}
