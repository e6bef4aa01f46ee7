package node

// Convenience constructors producing the structural shapes the checker
// understands. An external parser lowering a real syntax tree is expected to
// produce the same shapes: same kinds, same child order, same roles.

// At returns a position starting at the given 1-based line and 0-based
// column.
func At(line, col int) *Positions {
	return &Positions{StartLine: line, StartCol: col}
}

// withRole marks the structural field a child occupies within its parent.
func withRole(child *Node, role Role) *Node {
	child.Roles = append(child.Roles, role)

	return child
}

// NewModule creates a Module node from statements in source order.
func NewModule(stmts ...*Node) *Node {
	return NewBuilder().WithKind(KindModule).WithChildren(stmts...).Build()
}

// NewName creates a Name node for a simple identifier.
func NewName(pos *Positions, id string) *Node {
	return NewBuilder().WithKind(KindName).WithToken(id).WithPosition(pos).Build()
}

// NewLiteral creates a Literal node. The token is the literal's source text;
// the boolean literal true is the token "True".
func NewLiteral(pos *Positions, token string) *Node {
	return NewBuilder().WithKind(KindLiteral).WithToken(token).WithPosition(pos).Build()
}

// NewAssign creates an Assign node with one-or-more targets and one value.
func NewAssign(pos *Positions, targets []*Node, value *Node) *Node {
	builder := NewBuilder().WithKind(KindAssign).WithPosition(pos)
	for _, target := range targets {
		builder.WithChildren(withRole(target, RoleTarget))
	}

	return builder.WithChildren(withRole(value, RoleValue)).Build()
}

// NewCall creates a Call node. Arguments follow the callee in source order;
// Keyword nodes are passed among args after any positional arguments.
func NewCall(pos *Positions, callee *Node, args ...*Node) *Node {
	builder := NewBuilder().WithKind(KindCall).WithPosition(pos).
		WithChildren(withRole(callee, RoleFunction))
	for _, arg := range args {
		builder.WithChildren(withRole(arg, RoleArgument))
	}

	return builder.Build()
}

// NewKeyword creates a Keyword argument node: token is the argument name,
// the single child is the argument value.
func NewKeyword(pos *Positions, name string, value *Node) *Node {
	return NewBuilder().WithKind(KindKeyword).WithToken(name).WithPosition(pos).
		WithChildren(withRole(value, RoleValue)).Build()
}

// NewAttribute creates an Attribute node: token is the attribute name, the
// single child is the base expression.
func NewAttribute(pos *Positions, base *Node, name string) *Node {
	return NewBuilder().WithKind(KindAttribute).WithToken(name).WithPosition(pos).
		WithChildren(withRole(base, RoleValue)).Build()
}

// NewSubscript creates a Subscript node over a base expression and an
// index/slice expression.
func NewSubscript(pos *Positions, base, index *Node) *Node {
	return NewBuilder().WithKind(KindSubscript).WithPosition(pos).
		WithChildren(withRole(base, RoleValue), withRole(index, RoleIndex)).Build()
}

// NewLambda creates a Lambda node from parameter names and a body
// expression. Parameters are Parameter nodes, not Name nodes, so they never
// count as referenced identifiers.
func NewLambda(pos *Positions, params []string, body *Node) *Node {
	builder := NewBuilder().WithKind(KindLambda).WithPosition(pos)
	for _, param := range params {
		paramNode := NewBuilder().WithKind(KindParameter).WithToken(param).
			WithRoles(RoleParameter).Build()
		builder.WithChildren(paramNode)
	}

	return builder.WithChildren(withRole(body, RoleBody)).Build()
}

// NewList creates a List display node from element expressions.
func NewList(pos *Positions, elts ...*Node) *Node {
	return NewBuilder().WithKind(KindList).WithPosition(pos).WithChildren(elts...).Build()
}

// NewTuple creates a Tuple display node from element expressions.
func NewTuple(pos *Positions, elts ...*Node) *Node {
	return NewBuilder().WithKind(KindTuple).WithPosition(pos).WithChildren(elts...).Build()
}

// NewBinaryOp creates a BinaryOp node: token is the operator text.
func NewBinaryOp(pos *Positions, left *Node, op string, right *Node) *Node {
	return NewBuilder().WithKind(KindBinaryOp).WithToken(op).WithPosition(pos).
		WithChildren(left, right).Build()
}

// NewCompare creates a Compare node: token is the comparison operator text.
func NewCompare(pos *Positions, left *Node, op string, right *Node) *Node {
	return NewBuilder().WithKind(KindCompare).WithToken(op).WithPosition(pos).
		WithChildren(left, right).Build()
}
