// Package walker implements the tree-traversal engine: a kind-keyed rule
// registry, iterative depth-first pre-order traversal, a run-scoped parent
// side table, and an ordered diagnostic accumulator.
package walker

import (
	"github.com/fran6w/pandas-method-chaining/pkg/node"
)

// Stack capacity constants for iterative traversal.
const (
	stackInitCap = 64
	diagsInitCap = 8
)

// Diagnostic is a single reported anti-pattern occurrence. Diagnostics are
// pure output: never mutated after creation.
//
// Line is 1-based, Col 0-based, both copied from the triggering node. The
// message embeds the stable rule identifier prefix (e.g. "PMC004 ...").
// Issuer is an opaque tag identifying the rule-set component that produced
// the diagnostic; hosts use it for default-enable filtering.
type Diagnostic struct {
	Line    int
	Col     int
	Message string
	Issuer  string
}

// Parents is the run-scoped parent side table: for every node visited during
// one run, a back-reference to its immediate structural container. The table
// is created per run and discarded with it; the tree itself is never written
// to, so one parsed tree may be analyzed concurrently by independent runs.
type Parents map[*node.Node]*node.Node

// Of returns the immediate structural container of n, or nil for the root.
func (p Parents) Of(n *node.Node) *node.Node {
	return p[n]
}

// Rule inspects a single node (and, through the parent table, its structural
// context) and yields zero or more diagnostics. Rules must not mutate the
// tree and must not recurse into children themselves; the walker dispatches
// every descendant separately.
type Rule func(n *node.Node, parents Parents) []Diagnostic

// Walker visits every node of a syntax tree exactly once, depth-first
// pre-order, dispatching each node to the rules registered for its kind.
// A Walker carries no per-run state, so one Walker may serve concurrent
// runs over independent trees.
type Walker struct {
	rules map[node.Kind][]Rule
}

// New creates a Walker with an empty rule registry.
func New() *Walker {
	return &Walker{rules: make(map[node.Kind][]Rule)}
}

// Register appends rules for a node kind. Dispatch preserves registration
// order; no rule may depend on another rule's output.
func (w *Walker) Register(kind node.Kind, rules ...Rule) {
	w.rules[kind] = append(w.rules[kind], rules...)
}

// Run traverses the tree rooted at root and returns the accumulated
// diagnostics in visit order.
//
// Each node is dispatched to its registered rules before its children are
// descended into; children are pushed in fixed structural order, so the
// output is reproducible across runs on the same tree. Nodes whose kind has
// no registered rules are still recursed into. The parent table entry for a
// child is recorded before the child is dispatched.
//
// The walker does not validate tree well-formedness and catches nothing: a
// panicking rule aborts the run with no partial diagnostics returned.
func (w *Walker) Run(root *node.Node) []Diagnostic {
	if root == nil {
		return nil
	}

	parents := make(Parents)
	diags := make([]Diagnostic, 0, diagsInitCap)

	stack := make([]*node.Node, 0, stackInitCap)
	stack = append(stack, root)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, rule := range w.rules[current.Kind] {
			diags = append(diags, rule(current, parents)...)
		}

		// Push children in reverse so the leftmost child is visited first.
		for idx := len(current.Children) - 1; idx >= 0; idx-- {
			child := current.Children[idx]
			parents[child] = current
			stack = append(stack, child)
		}
	}

	return diags
}
