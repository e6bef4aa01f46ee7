package rules

import (
	"github.com/fran6w/pandas-method-chaining/pkg/node"
)

// referencedNames collects the simple-name identifiers referenced anywhere
// within the subtree rooted at n, including n itself. Lambda parameters are
// Parameter nodes, not Name nodes, so they never show up here.
func referencedNames(n *node.Node) map[string]struct{} {
	names := make(map[string]struct{})

	n.VisitPreOrder(func(current *node.Node) {
		if current.Kind == node.KindName {
			names[current.Token] = struct{}{}
		}
	})

	return names
}

// targetNames collects the simple-name identifiers among assignment targets.
// A Subscript or Attribute target contributes no name.
func targetNames(targets []*node.Node) map[string]struct{} {
	names := make(map[string]struct{})

	for _, target := range targets {
		if target.Kind == node.KindName {
			names[target.Token] = struct{}{}
		}
	}

	return names
}

// intersects reports whether the two name sets share at least one element.
func intersects(a, b map[string]struct{}) bool {
	for name := range a {
		if _, ok := b[name]; ok {
			return true
		}
	}

	return false
}
