// Package graphdebug renders the observer graph — which reactions and
// computeds depend on which atoms — as a tree when a reaction fails,
// logged via log/slog. Walks atom/derivation observer edges sourced
// from pkg/core's debug-only ReactiveGraph mirror (pkg/core/graph.go).
package graphdebug

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/m1gwings/treedrawer/tree"

	"github.com/pumped-fn/reactor"
	"github.com/pumped-fn/reactor/pkg/core"
)

// Extension logs a rendered observer-graph tree whenever a reaction's
// tracked function errors, using a real third-party tree renderer.
type Extension struct {
	reactor.BaseExtension
	logger *slog.Logger
	failed map[string]error
}

// New creates a graph-debug extension logging through handler.
func New(handler slog.Handler) *Extension {
	return &Extension{
		logger: slog.New(handler),
		failed: make(map[string]error),
	}
}

func (e *Extension) Name() string { return "graph-debug" }
func (e *Extension) Order() int   { return 100 } // runs after more specific extensions

// OnError logs the observer graph rooted at the reaction that failed.
func (e *Extension) OnError(err error, op reactor.Operation) {
	e.failed[op.Name] = err
	graphOutput := e.formatGraph(op.Name, err)
	e.logger.Error("Reaction Error",
		"reaction", op.Name,
		"error", err.Error(),
		"observer_graph", graphOutput,
	)
}

// Spy tracks Add/Remove events only to keep a readable node set; most
// rendering is driven directly from pkg/core.DebugGraph at OnError time.
func (e *Extension) Spy(ev core.SpyEvent) {
	if ev.Kind == core.SpyError {
		// already surfaced via OnError for reactions; computed/derivation
		// exceptions surfaced only through the spy bus land here too.
		e.failed[ev.Name] = ev.Err
	}
}

func (e *Extension) formatGraph(failedName string, failedErr error) string {
	graph := core.DebugGraph().Export()
	var sb strings.Builder

	if len(graph) == 0 {
		sb.WriteString("\n(empty - no reactive dependencies tracked)")
		return sb.String()
	}

	if horizontal := e.tryFormatTree(graph, failedName); horizontal != "" {
		sb.WriteString("\n")
		sb.WriteString(horizontal)
		sb.WriteString("\n")
	}

	sb.WriteString("\nDetailed view:\n")
	names := make([]string, 0, len(graph))
	for n := range graph {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, name := range names {
		children := append([]string(nil), graph[name]...)
		sort.Strings(children)
		status := ""
		if _, failed := e.failed[name]; failed {
			status = " [failed]"
		}
		if len(children) == 0 {
			fmt.Fprintf(&sb, "  %s%s (no observers)\n", name, status)
			continue
		}
		fmt.Fprintf(&sb, "  %s%s\n", name, status)
		for i, child := range children {
			marker := "├─>"
			if i == len(children)-1 {
				marker = "└─>"
			}
			childStatus := ""
			if child == failedName {
				childStatus = " [FAILED: " + failedErr.Error() + "]"
			} else if _, failed := e.failed[child]; failed {
				childStatus = " [failed]"
			}
			fmt.Fprintf(&sb, "    %s %s%s\n", marker, child, childStatus)
		}
	}

	return sb.String()
}

func (e *Extension) tryFormatTree(graph map[string][]string, failedName string) string {
	parents := make(map[string][]string)
	allNodes := make(map[string]bool)
	for parent, children := range graph {
		allNodes[parent] = true
		for _, child := range children {
			allNodes[child] = true
			parents[child] = append(parents[child], parent)
		}
	}

	var roots []string
	for n := range allNodes {
		if len(parents[n]) == 0 {
			roots = append(roots, n)
		}
	}
	sort.Strings(roots)
	if len(roots) == 0 {
		return ""
	}

	var root *tree.Tree
	if len(roots) == 1 {
		root = e.buildTree(roots[0], graph, failedName, make(map[string]bool))
	} else {
		root = tree.NewTree(tree.NodeString("observables"))
		for _, r := range roots {
			if child := e.buildTree(r, graph, failedName, make(map[string]bool)); child != nil {
				addTreeAsChild(root, child)
			}
		}
	}
	if root == nil {
		return ""
	}
	return root.String()
}

func (e *Extension) buildTree(name string, graph map[string][]string, failedName string, visited map[string]bool) *tree.Tree {
	if visited[name] {
		return nil
	}
	visited[name] = true

	label := name
	if name == failedName {
		label += " [FAILED]"
	}
	node := tree.NewTree(tree.NodeString(label))

	children := append([]string(nil), graph[name]...)
	sort.Strings(children)
	for _, child := range children {
		if childTree := e.buildTree(child, graph, failedName, visited); childTree != nil {
			addTreeAsChild(node, childTree)
		}
	}
	return node
}

func addTreeAsChild(parent *tree.Tree, child *tree.Tree) {
	newChild := parent.AddChild(child.Val())
	for _, grandchild := range child.Children() {
		addTreeAsChild(newChild, grandchild)
	}
}
