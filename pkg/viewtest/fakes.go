package viewtest

import (
	"github.com/go-vista/vista/pkg/binding"
	"github.com/go-vista/vista/pkg/rendertree"
	"github.com/go-vista/vista/pkg/view"
)

// EngineCall records one invocation of the binding engine.
type EngineCall struct {
	HTML string
	Node *rendertree.Node
}

// RecordingEngine is a binding.Engine that records its invocations.
type RecordingEngine struct {
	Calls []EngineCall
	// Err, when set, is returned from Bind to simulate engine failure.
	Err error
}

// Bind records the call and returns Err.
func (e *RecordingEngine) Bind(html string, node *rendertree.Node, ctx binding.Context) error {
	e.Calls = append(e.Calls, EngineCall{HTML: html, Node: node})
	return e.Err
}

// Recorder is a view.Hooks implementation that records which hooks ran
// and can inject failures per hook.
type Recorder struct {
	Calls []string

	RenderErr    error
	AppearErr    error
	DisappearErr error
	DestroyErr   error
}

// OnRender records "render" and returns RenderErr.
func (r *Recorder) OnRender(v *view.View) error {
	r.Calls = append(r.Calls, "render")
	return r.RenderErr
}

// OnAppear records "appear" and returns AppearErr.
func (r *Recorder) OnAppear(v *view.View) error {
	r.Calls = append(r.Calls, "appear")
	return r.AppearErr
}

// OnDisappear records "disappear" and returns DisappearErr.
func (r *Recorder) OnDisappear(v *view.View) error {
	r.Calls = append(r.Calls, "disappear")
	return r.DisappearErr
}

// OnDestroy records "destroy" and returns DestroyErr.
func (r *Recorder) OnDestroy(v *view.View) error {
	r.Calls = append(r.Calls, "destroy")
	return r.DestroyErr
}
