package binding

import "github.com/go-vista/vista/pkg/rendertree"

// Engine is the external binding-engine contract. Given a view's string
// content and its node, it establishes live bindings over the node's
// subtree against the binding context. The view layer invokes it
// exactly once per render.
type Engine interface {
	Bind(html string, node *rendertree.Node, ctx Context) error
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(html string, node *rendertree.Node, ctx Context) error

// Bind calls f.
func (f EngineFunc) Bind(html string, node *rendertree.Node, ctx Context) error {
	return f(html, node, ctx)
}
