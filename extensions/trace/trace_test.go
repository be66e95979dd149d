package trace

import (
	"errors"
	"testing"

	"github.com/pumped-fn/reactor"
)

func TestExtension_WrapRecordsStartAndEnd(t *testing.T) {
	ext := New()

	called := false
	wrapped := ext.Wrap(func() { called = true }, reactor.Operation{Kind: reactor.OpReactionDrain})
	wrapped()

	if !called {
		t.Fatal("expected Wrap to call through to next")
	}

	roots := ext.Tree().Roots()
	if len(roots) != 1 {
		t.Fatalf("expected exactly one root node, got %d", len(roots))
	}
	n := roots[0]
	if n.Start.IsZero() || n.End.IsZero() {
		t.Fatalf("expected both Start and End to be set, got %+v", n)
	}
	if n.Err != nil {
		t.Fatalf("expected no error on a successful run, got %v", n.Err)
	}
}

func TestExtension_WrapRecordsPanic(t *testing.T) {
	ext := New()

	wrapped := ext.Wrap(func() { panic("boom") }, reactor.Operation{Kind: reactor.OpReactionDrain})

	func() {
		defer func() { recover() }()
		wrapped()
	}()

	roots := ext.Tree().Roots()
	if len(roots) != 1 {
		t.Fatalf("expected one recorded node even though the wrapped call panicked, got %d", len(roots))
	}
	if roots[0].Err == nil {
		t.Fatal("expected the panic to be recorded as an error on the node")
	}
}

func TestExtension_NestedWrapProducesParentChild(t *testing.T) {
	ext := New()

	outer := ext.Wrap(func() {
		inner := ext.Wrap(func() {}, reactor.Operation{Kind: reactor.OpWrite})
		inner()
	}, reactor.Operation{Kind: reactor.OpReactionDrain})
	outer()

	roots := ext.Tree().Roots()
	if len(roots) != 1 {
		t.Fatalf("expected one root, got %d", len(roots))
	}
	if len(roots[0].Children) != 1 {
		t.Fatalf("expected the inner Wrap call to be recorded as a child, got %d children", len(roots[0].Children))
	}
	if roots[0].Children[0].Parent != roots[0] {
		t.Fatal("expected the child's Parent pointer to reference the root")
	}
}

func TestExtension_OnErrorAttachesToCurrentNode(t *testing.T) {
	ext := New()
	wantErr := errors.New("boom")

	wrapped := ext.Wrap(func() {
		ext.OnError(wantErr, reactor.Operation{Kind: reactor.OpReactionDrain, Name: "r"})
	}, reactor.Operation{Kind: reactor.OpReactionDrain})
	wrapped()

	roots := ext.Tree().Roots()
	if len(roots) != 1 || roots[0].Err != wantErr {
		t.Fatalf("expected the error to be attached to the in-flight node, got %+v", roots)
	}
}

func TestTree_Walk(t *testing.T) {
	ext := New()
	outer := ext.Wrap(func() {
		inner := ext.Wrap(func() {}, reactor.Operation{Kind: reactor.OpWrite})
		inner()
	}, reactor.Operation{Kind: reactor.OpReactionDrain})
	outer()

	var names []string
	ext.Tree().Walk(func(n *Node) {
		names = append(names, n.Name)
	})
	if len(names) != 2 {
		t.Fatalf("expected Walk to visit both nodes, got %v", names)
	}
}
