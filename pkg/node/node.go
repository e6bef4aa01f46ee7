// Package node provides the canonical syntax-tree node structure consumed by
// the method-chaining checks: a kind-discriminated node with token, roles,
// source position, and ordered children, plus read-only query helpers.
//
// Trees are assembled by an external parser (or, in tests, by the
// convenience constructors in shapes.go) and are consumed strictly
// read-only by the walker and the rules.
package node

import "slices"

// Node kind constants. The set is closed: the walker dispatches on an
// exhaustive table over these kinds.
const (
	KindModule    = "Module"
	KindAssign    = "Assign"
	KindCall      = "Call"
	KindKeyword   = "Keyword"
	KindAttribute = "Attribute"
	KindSubscript = "Subscript"
	KindName      = "Name"
	KindLiteral   = "Literal"
	KindLambda    = "Lambda"
	KindParameter = "Parameter"
	KindList      = "List"
	KindTuple     = "Tuple"
	KindBinaryOp  = "BinaryOp"
	KindCompare   = "Compare"
)

// Role constants marking the structural field a child occupies within its
// parent. Child order is fixed by the constructors; roles let accessors
// recover the field without positional guessing.
const (
	RoleTarget    = "Target"
	RoleValue     = "Value"
	RoleFunction  = "Function"
	RoleArgument  = "Argument"
	RoleIndex     = "Index"
	RoleParameter = "Parameter"
	RoleBody      = "Body"
)

// Role represents a structural label for a node within its parent.
type Role string

// Kind represents the discriminant of a node.
type Kind string

// Positions represents line/column offsets for a node.
// Lines are 1-based, columns 0-based.
type Positions struct {
	StartLine int `json:"start_line,omitempty"`
	StartCol  int `json:"start_col,omitempty"`
	EndLine   int `json:"end_line,omitempty"`
	EndCol    int `json:"end_col,omitempty"`
}

// Node is the canonical syntax-tree node structure.
//
// Fields:
//
//	Kind: node kind discriminant (e.g., "Call", "Name").
//	Token: string value for leaf-ish nodes (identifier, literal text,
//	       keyword-argument name, attribute name).
//	Roles: structural roles within the parent (see Role).
//	Pos: source position info (optional).
//	Children: child nodes in fixed structural order.
type Node struct {
	Token    string     `json:"token,omitempty"`
	Kind     Kind       `json:"kind,omitempty"`
	Roles    []Role     `json:"roles,omitempty"`
	Pos      *Positions `json:"pos,omitempty"`
	Children []*Node    `json:"children,omitempty"`
}

// AddChild appends a child node to n.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// HasAnyKind checks if the node has any of the given kinds.
func (n *Node) HasAnyKind(kinds ...Kind) bool {
	if n == nil {
		return false
	}

	return slices.Contains(kinds, n.Kind)
}

// HasAnyRole checks if the node has any of the given roles.
func (n *Node) HasAnyRole(roles ...Role) bool {
	if n == nil || len(n.Roles) == 0 {
		return false
	}

	for _, role := range roles {
		if slices.Contains(n.Roles, role) {
			return true
		}
	}

	return false
}

// VisitPreOrder visits all nodes in pre-order (root, then children
// left-to-right). Traversal is read-only.
func (n *Node) VisitPreOrder(fn func(*Node)) {
	if n == nil {
		return
	}

	stack := []*Node{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(current)

		for idx := len(current.Children) - 1; idx >= 0; idx-- {
			stack = append(stack, current.Children[idx])
		}
	}
}

// Find returns all nodes in the tree (including root) for which
// predicate(node) is true. Traversal is pre-order. Returns nil if n is nil.
func (n *Node) Find(predicate func(*Node) bool) []*Node {
	if n == nil {
		return nil
	}

	var found []*Node

	n.VisitPreOrder(func(candidate *Node) {
		if predicate(candidate) {
			found = append(found, candidate)
		}
	})

	return found
}

// childrenWithRole returns the children of n carrying the given role,
// preserving child order.
func (n *Node) childrenWithRole(role Role) []*Node {
	var matched []*Node

	for _, child := range n.Children {
		if child.HasAnyRole(role) {
			matched = append(matched, child)
		}
	}

	return matched
}

// firstChildWithRole returns the first child of n carrying the given role,
// or nil when absent.
func (n *Node) firstChildWithRole(role Role) *Node {
	for _, child := range n.Children {
		if child.HasAnyRole(role) {
			return child
		}
	}

	return nil
}

// Targets returns the assignment targets of an Assign node.
func (n *Node) Targets() []*Node {
	return n.childrenWithRole(RoleTarget)
}

// Value returns the single value child of an Assign, Keyword, Attribute or
// Subscript node: the assigned expression, the keyword-argument value, the
// attribute base, or the subscripted base respectively. Nil when the node
// carries no value child.
func (n *Node) Value() *Node {
	return n.firstChildWithRole(RoleValue)
}

// Callee returns the called expression of a Call node.
func (n *Node) Callee() *Node {
	return n.firstChildWithRole(RoleFunction)
}

// Args returns the positional and keyword arguments of a Call node in
// source order.
func (n *Node) Args() []*Node {
	return n.childrenWithRole(RoleArgument)
}

// Keywords returns the keyword arguments of a Call node in source order.
func (n *Node) Keywords() []*Node {
	var keywords []*Node

	for _, child := range n.Children {
		if child.Kind == KindKeyword {
			keywords = append(keywords, child)
		}
	}

	return keywords
}

// Index returns the index/slice child of a Subscript node.
func (n *Node) Index() *Node {
	return n.firstChildWithRole(RoleIndex)
}

// Body returns the body child of a Lambda node.
func (n *Node) Body() *Node {
	return n.firstChildWithRole(RoleBody)
}
