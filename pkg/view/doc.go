// Package view provides the view lifecycle framework.
//
// A View is a bound region of an external render tree with a managed
// lifecycle. Views move through phases:
//
//	Constructed ──► Rendered ──► Appeared ⇄ Disappeared ──► Destroyed
//
// Appeared and Disappeared may cycle any number of times; Destroyed is
// terminal. Out-of-order transitions return *errors.LifecycleError.
//
// # Construction
//
// Views are built from a Definition (name, content, declared options,
// lifecycle hooks) and a Config wiring in the external collaborators:
//
//	v, err := view.New(def, view.Config{
//	    Node:    node,
//	    Tree:    tree,
//	    Context: store,
//	    Engine:  engine,
//	})
//
// Option values come from binding sources: literals bind once, keypath
// expressions stay live until the view is destroyed.
//
// # Hooks
//
// Per-variant behavior is added by composition, not subclassing: a
// Definition carries an ordered list of Hooks implementations, and the
// lifecycle driver invokes them at fixed points. OnRender hooks run
// before the binding-engine pass so content they insert is captured by
// the established bindings.
//
// # Render-tree integration
//
// When a Config carries a rendertree.Tree, the view subscribes to
// subtree attach/detach notifications at render time and drives
// Appear/Disappear from them. Transitions propagate depth-first over
// the view subtree, a view before its descendants; Destroy runs
// children before the parent.
package view
