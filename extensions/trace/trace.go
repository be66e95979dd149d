// Package trace records reaction-drain executions into a queryable tree
// with start/end times, status, and errors, hierarchical parent/child,
// mutex-guarded. A tracing collaborator implemented entirely as a
// Runtime extension rather than baked into pkg/core.
package trace

import (
	"fmt"
	"sync"
	"time"

	"github.com/pumped-fn/reactor"
)

// Node is one traced execution: a reaction-drain pass, possibly nested
// inside another if multiple Extensions wrap the scheduler (each Use
// call wraps the previously installed scheduler, so nesting here
// mirrors nesting there).
type Node struct {
	ID       uint64
	Name     string
	Start    time.Time
	End      time.Time
	Err      error
	Parent   *Node
	Children []*Node
}

// Duration returns how long the execution took. Zero if still running.
func (n *Node) Duration() time.Duration {
	if n.End.IsZero() {
		return 0
	}
	return n.End.Sub(n.Start)
}

// Tree is the mutex-guarded store of every traced execution, queryable
// after the fact.
type Tree struct {
	mu    sync.Mutex
	roots []*Node
	stack []*Node
	next  uint64
}

// NewTree creates an empty execution tree.
func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) push(name string) *Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	n := &Node{ID: t.next, Name: name, Start: time.Now()}
	if len(t.stack) > 0 {
		parent := t.stack[len(t.stack)-1]
		n.Parent = parent
		parent.Children = append(parent.Children, n)
	} else {
		t.roots = append(t.roots, n)
	}
	t.stack = append(t.stack, n)
	return n
}

// pop closes n. err only overwrites n.Err when non-nil, so an error
// attached earlier by OnError (via the stack, while the node was still
// in flight) survives the enclosing Wrap call's own nil-error pop on
// the happy path.
func (t *Tree) pop(n *Node, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n.End = time.Now()
	if err != nil {
		n.Err = err
	}
	if len(t.stack) > 0 {
		t.stack = t.stack[:len(t.stack)-1]
	}
}

// markError attaches err to whichever node is currently in flight, if
// any; used by OnError to record a failure against the execution that
// produced it.
func (t *Tree) markError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.stack) > 0 {
		t.stack[len(t.stack)-1].Err = err
	}
}

// Roots returns the top-level traced executions.
func (t *Tree) Roots() []*Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Node, len(t.roots))
	copy(out, t.roots)
	return out
}

// Walk visits every node in the tree, depth-first, parent before child.
func (t *Tree) Walk(fn func(*Node)) {
	var visit func(*Node)
	visit = func(n *Node) {
		fn(n)
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, r := range t.Roots() {
		visit(r)
	}
}

// Extension installs Tree-recording Wrap/OnError hooks into a Runtime.
type Extension struct {
	reactor.BaseExtension
	tree *Tree
}

// New creates a trace extension with a fresh Tree.
func New() *Extension {
	return &Extension{tree: NewTree()}
}

func (e *Extension) Name() string { return "trace" }
func (e *Extension) Order() int   { return 5 }

// Tree returns the extension's execution tree.
func (e *Extension) Tree() *Tree { return e.tree }

func (e *Extension) Wrap(next func(), op reactor.Operation) func() {
	return func() {
		n := e.tree.push(string(op.Kind))
		defer func() {
			if r := recover(); r != nil {
				e.tree.pop(n, fmt.Errorf("panic: %v", r))
				panic(r)
			}
		}()
		next()
		e.tree.pop(n, nil)
	}
}

func (e *Extension) OnError(err error, op reactor.Operation) {
	e.tree.markError(err)
}
