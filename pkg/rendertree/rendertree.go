// Package rendertree provides the render-tree contract consumed by the
// view layer: a hierarchy of nodes plus subtree attach/detach
// notifications.
//
// The tree is an in-memory reference implementation. A host embedding
// the view layer in a real rendering stack only needs to deliver the
// same notifications; views never own nodes, they reference them.
//
// All structural mutation goes through [Tree.Attach] and [Tree.Detach]
// so that notification ordering is a property of the tree, not of
// callers. Subtree notifications fire in preorder: a node strictly
// before its descendants.
//
// The tree is single-threaded by contract; all mutation and delivery
// happens on the caller's goroutine.
package rendertree

// Node is one element of the render tree. Nodes are created detached
// and become live when attached under an attached ancestor.
type Node struct {
	id       string
	parent   *Node
	children []*Node
	root     bool
}

// NewNode creates a detached node with an identifying label.
func NewNode(id string) *Node {
	return &Node{id: id}
}

// ID returns the node's label.
func (n *Node) ID() string { return n.id }

// Parent returns the node's parent, or nil when detached or root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node { return n.children }

// Attached reports whether the node is reachable from the tree root.
func (n *Node) Attached() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.root {
			return true
		}
	}
	return false
}

type subscription struct {
	id   int
	node *Node
	fn   func()
}

// Tree is the live render tree. It owns the root node and delivers
// subtree attached/detached notifications to subscribers.
type Tree struct {
	root   *Node
	attach []*subscription
	detach []*subscription
	nextID int
}

// NewTree creates a tree with an attached root node.
func NewTree() *Tree {
	return &Tree{root: &Node{id: "root", root: true}}
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Attach links child under parent. If parent is attached, every
// attach subscriber within child's subtree is notified, a node before
// its descendants.
func (t *Tree) Attach(parent, child *Node) {
	if parent == nil || child == nil || child.parent != nil || child.root {
		return
	}
	child.parent = parent
	parent.children = append(parent.children, child)
	if parent.Attached() {
		t.notifySubtree(child, t.attach)
	}
}

// Detach unlinks node from its parent. If the node was attached, every
// detach subscriber within its subtree is notified first, a node before
// its descendants. The node and its subtree remain valid and can be
// attached again.
func (t *Tree) Detach(node *Node) {
	if node == nil || node.parent == nil || node.root {
		return
	}
	if node.Attached() {
		t.notifySubtree(node, t.detach)
	}
	parent := node.parent
	for i, c := range parent.children {
		if c == node {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	node.parent = nil
}

// OnAttach subscribes fn to "subtree attached" notifications for node:
// fn fires whenever node or any ancestor is attached to the live tree.
// Returns an unsubscribe function.
func (t *Tree) OnAttach(node *Node, fn func()) func() {
	return t.subscribe(&t.attach, node, fn)
}

// OnDetach subscribes fn to "subtree detached" notifications for node.
// Returns an unsubscribe function.
func (t *Tree) OnDetach(node *Node, fn func()) func() {
	return t.subscribe(&t.detach, node, fn)
}

func (t *Tree) subscribe(list *[]*subscription, node *Node, fn func()) func() {
	sub := &subscription{id: t.nextID, node: node, fn: fn}
	t.nextID++
	*list = append(*list, sub)
	return func() {
		for i, s := range *list {
			if s == sub {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return
			}
		}
	}
}

// notifySubtree fires subscriptions targeting any node in root's
// subtree, in preorder over the tree structure and insertion order
// within a node.
func (t *Tree) notifySubtree(root *Node, subs []*subscription) {
	// Snapshot: callbacks may subscribe or unsubscribe.
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)

	var walk func(n *Node)
	walk = func(n *Node) {
		for _, s := range snapshot {
			if s.node == n {
				s.fn()
			}
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
}
