package view

import (
	"fmt"
	"sync"

	"github.com/go-vista/vista/pkg/binding"
	"github.com/go-vista/vista/pkg/errors"
	"github.com/go-vista/vista/pkg/rendertree"
)

// Definition describes a view class: its name, content, the options it
// declares, and the lifecycle hooks run for every instance.
type Definition struct {
	// Name identifies the definition in markup and diagnostics.
	Name string
	// HTML is the view's string content source, handed to the binding
	// engine at render time. May be empty when the node already holds
	// content.
	HTML string
	// Options declares the options instances accept.
	Options []binding.Option
	// Hooks is the ordered hook list the lifecycle driver evaluates.
	Hooks []Hooks
}

// Config wires a view instance to its external collaborators. All
// fields are optional except where option sources demand them (a
// keypath source needs a Context).
type Config struct {
	// Node is the view's render-tree node. May be absent at
	// construction but must be set before Render.
	Node *rendertree.Node
	// Tree, when set, drives Appear/Disappear from subtree
	// attach/detach notifications.
	Tree *rendertree.Tree
	// Context resolves and observes keypath option sources. The view
	// only reads through it.
	Context binding.Context
	// Engine establishes content bindings, once per render.
	Engine binding.Engine
	// Registry, when set, is notified when the view is destroyed.
	Registry *Registry
	// Parent links the new view into an existing view tree.
	Parent *View
	// Options maps declared option names to their value sources,
	// typically built via SourcesFromAttrs or binding.Literal.
	Options map[string]binding.Source
}

// SourcesFromAttrs parses raw markup attribute values (as returned by
// binding.ParseAttrs) into option sources.
func SourcesFromAttrs(raw map[string]string) map[string]binding.Source {
	sources := make(map[string]binding.Source, len(raw))
	for name, value := range raw {
		sources[name] = binding.ParseSource(value)
	}
	return sources
}

// View is a bound region of a render tree with a managed lifecycle.
type View struct {
	def      Definition
	name     string
	node     *rendertree.Node
	tree     *rendertree.Tree
	html     string
	htmlSet  bool
	phase    Phase
	ctx      binding.Context
	engine   binding.Engine
	registry *Registry
	parent   *View
	children []*View
	hooks    []Hooks
	bindings *binding.Set

	attachSub func()
	detachSub func()

	listeners map[Event][]*eventListener
	nextSubID int

	// mu guards options and destroying: reactive pushes may arrive
	// from the observation mechanism on a later turn.
	mu         sync.Mutex
	options    map[string]any
	destroying bool
}

// New constructs a view from a definition and configuration.
//
// Declared options are resolved against cfg.Options: defaults apply
// first, then each supplied source is bound (literals statically,
// keypaths as live projections). A required option with neither a
// source nor a default aborts construction with *errors.ConfigError.
// Sources for undeclared options are ignored.
func New(def Definition, cfg Config) (*View, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("view definition has no name")
	}
	if cfg.Parent != nil && cfg.Parent.phase == PhaseDestroyed {
		return nil, &errors.LifecycleError{View: def.Name, Op: "construct", Phase: "parent destroyed"}
	}

	v := &View{
		def:       def,
		name:      def.Name,
		node:      cfg.Node,
		tree:      cfg.Tree,
		html:      def.HTML,
		htmlSet:   def.HTML != "",
		ctx:       cfg.Context,
		engine:    cfg.Engine,
		registry:  cfg.Registry,
		hooks:     def.Hooks,
		bindings:  binding.NewSet(),
		listeners: make(map[Event][]*eventListener),
		options:   make(map[string]any),
	}

	for _, opt := range def.Options {
		if opt.Default != nil {
			v.options[opt.Name] = opt.Default
		}
	}
	for _, opt := range def.Options {
		src, supplied := cfg.Options[opt.Name]
		if !supplied {
			if opt.Required && opt.Default == nil {
				v.bindings.ReleaseAll()
				return nil, &errors.ConfigError{View: def.Name, Option: opt.Name}
			}
			continue
		}
		if err := v.bindings.Bind(opt, src, v.ctx, v.pushOption); err != nil {
			v.bindings.ReleaseAll()
			return nil, &errors.VistaError{
				Op:   "view.New",
				Kind: errors.KindBinding,
				Err:  err,
				View: def.Name,
			}
		}
	}

	if cfg.Parent != nil {
		v.parent = cfg.Parent
		cfg.Parent.children = append(cfg.Parent.children, v)
	}
	if v.registry != nil {
		v.registry.add(v)
	}
	return v, nil
}

// Name returns the view's definition name.
func (v *View) Name() string { return v.name }

// Phase returns the view's current lifecycle phase.
func (v *View) Phase() Phase { return v.phase }

// Node returns the view's render-tree node, nil before one is assigned
// and after destroy.
func (v *View) Node() *rendertree.Node { return v.node }

// SetNode assigns the render-tree node. It may only be called before
// the view is rendered.
func (v *View) SetNode(node *rendertree.Node) error {
	if v.phase != PhaseConstructed {
		return &errors.LifecycleError{View: v.name, Op: "set node", Phase: v.phase.String()}
	}
	v.node = node
	return nil
}

// HTML returns the view's content source.
func (v *View) HTML() string { return v.html }

// SetHTML sets the view's content source. Content may be set at most
// once, before the first render.
func (v *View) SetHTML(html string) error {
	if v.phase != PhaseConstructed {
		return &errors.LifecycleError{View: v.name, Op: "set html", Phase: v.phase.String()}
	}
	if v.htmlSet {
		return fmt.Errorf("view %q: content already set", v.name)
	}
	v.html = html
	v.htmlSet = true
	return nil
}

// Parent returns the view's parent, or nil for a root view.
func (v *View) Parent() *View { return v.parent }

// Children returns a copy of the view's direct children in creation
// order.
func (v *View) Children() []*View {
	out := make([]*View, len(v.children))
	copy(out, v.children)
	return out
}

// Bindings exposes the view's option binding set.
func (v *View) Bindings() *binding.Set { return v.bindings }

// Option returns the current value of an option slot.
func (v *View) Option(name string) (any, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	value, ok := v.options[name]
	return value, ok
}

// Options returns a snapshot of all option slots.
func (v *View) Options() map[string]any {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string]any, len(v.options))
	for k, val := range v.options {
		out[k] = val
	}
	return out
}

// pushOption writes a value into an option slot. Updates are dropped
// once destroy has begun: no reactive delivery may reach a destroyed
// view.
func (v *View) pushOption(name string, value any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroying {
		return
	}
	v.options[name] = value
}

func (v *View) removeChild(child *View) {
	for i, c := range v.children {
		if c == child {
			v.children = append(v.children[:i], v.children[i+1:]...)
			return
		}
	}
}
