// Package rules implements the method-chaining anti-pattern checks: pure
// functions, one or more per node kind, each inspecting a single node and
// yielding zero or more diagnostics. Rules never mutate the tree and never
// recurse into children themselves — the walker dispatches every descendant
// separately.
//
// A malformed node (e.g. an Assign with no value expression) is an
// input-contract violation; rules may panic on one, and the panic propagates
// through the walker to the run boundary.
package rules

import (
	"github.com/fran6w/pandas-method-chaining/pkg/node"
	"github.com/fran6w/pandas-method-chaining/pkg/walker"
)

// newDiagnostic builds one diagnostic positioned at the triggering node.
func newDiagnostic(n *node.Node, message string) walker.Diagnostic {
	return walker.Diagnostic{
		Line:    n.Pos.StartLine,
		Col:     n.Pos.StartCol,
		Message: message,
		Issuer:  Issuer,
	}
}

// isLiteralTrue reports whether v is the literal boolean true. A variable or
// any expression other than the literal does not count.
func isLiteralTrue(v *node.Node) bool {
	return v != nil && v.Kind == node.KindLiteral && v.Token == "True"
}

// CheckInplaceTrue flags calls passing the literal keyword argument
// inplace=True, one diagnostic per matching keyword.
//
// Disapproved:
//
//	df.method(inplace=True)
//
// Approved:
//
//	df.method(inplace=False)
//
// Registered on Call nodes; emits PMC001.
func CheckInplaceTrue(n *node.Node, _ walker.Parents) []walker.Diagnostic {
	var diags []walker.Diagnostic

	for _, kw := range n.Keywords() {
		if kw.Token == "inplace" && isLiteralTrue(kw.Value()) {
			diags = append(diags, newDiagnostic(n, MsgInplaceTrue))
		}
	}

	return diags
}

// CheckReassignmentWithCall flags assignments whose value is a call
// referencing one of the assigned names, directly or nested.
//
// Disapproved:
//
//	df = df.method()
//	df = pd.get_dummies(df, cols)
//	df = df.method1().method2()
//
// Approved: the same expressions standing alone as chained calls.
//
// Registered on Assign nodes; emits PMC002.
func CheckReassignmentWithCall(n *node.Node, _ walker.Parents) []walker.Diagnostic {
	value := n.Value()
	if value.Kind != node.KindCall {
		return nil
	}

	if intersects(targetNames(n.Targets()), referencedNames(value)) {
		return []walker.Diagnostic{newDiagnostic(n, MsgReassignmentWithCall)}
	}

	return nil
}

// CheckReassignmentWithSubscript flags assignments whose value is a
// subscript over an expression referencing one of the assigned names. Only
// the subscripted base is inspected, not the index/slice.
//
// Disapproved:
//
//	df = df[cols]
//	df = df.loc[cols]
//	df = df.method().loc[cols]
//
// Approved: the same selections standing alone as chained expressions.
//
// Registered on Assign nodes; emits PMC003.
func CheckReassignmentWithSubscript(n *node.Node, _ walker.Parents) []walker.Diagnostic {
	value := n.Value()
	if value.Kind != node.KindSubscript {
		return nil
	}

	if intersects(targetNames(n.Targets()), referencedNames(value.Value())) {
		return []walker.Diagnostic{newDiagnostic(n, MsgReassignmentWithSubscript)}
	}

	return nil
}

// CheckAssignmentWithSubscript flags assignments into a subscript target,
// one diagnostic per matching target.
//
// Disapproved:
//
//	df[col] = 0
//	df.loc[col] = 0
//
// Approved:
//
//	df.assign(col=0)
//
// Registered on Assign nodes; emits PMC004.
func CheckAssignmentWithSubscript(n *node.Node, _ walker.Parents) []walker.Diagnostic {
	var diags []walker.Diagnostic

	for _, target := range n.Targets() {
		if target.Kind == node.KindSubscript {
			diags = append(diags, newDiagnostic(n, MsgAssignmentWithSubscript))
		}
	}

	return diags
}

// CheckAssignmentWithAttribute flags assignments into an attribute target,
// one diagnostic per matching target. The attribute names "index" and
// "columns" are exempt: those route to CheckAssignmentOfIndex instead, which
// carries its own remediation.
//
// Disapproved:
//
//	df.col = 0
//
// Approved:
//
//	df.assign(col=0)
//
// Registered on Assign nodes; emits PMC005.
func CheckAssignmentWithAttribute(n *node.Node, _ walker.Parents) []walker.Diagnostic {
	var diags []walker.Diagnostic

	for _, target := range n.Targets() {
		if target.Kind == node.KindAttribute && !isIndexAttribute(target.Token) {
			diags = append(diags, newDiagnostic(n, MsgAssignmentWithAttribute))
		}
	}

	return diags
}

// CheckAssignmentOfIndex flags assignments into the index or columns
// attribute, one diagnostic per matching target.
//
// Disapproved:
//
//	df.index = ['idx1', 'idx2']
//	df.columns = ['col1', 'col2']
//
// Approved:
//
//	df.rename({1:'idx1', 2:'idx2'})
//	df.rename({1:'col1', 2:'col2'}, axis=1)
//
// Registered on Assign nodes; emits PMC006.
func CheckAssignmentOfIndex(n *node.Node, _ walker.Parents) []walker.Diagnostic {
	var diags []walker.Diagnostic

	for _, target := range n.Targets() {
		if target.Kind == node.KindAttribute && isIndexAttribute(target.Token) {
			diags = append(diags, newDiagnostic(n, MsgAssignmentOfIndex))
		}
	}

	return diags
}

// isIndexAttribute reports whether name is one of the two attribute names
// with a renaming remediation. Exactly these two; adding or removing one
// changes which diagnostic fires for a given attribute target.
func isIndexAttribute(name string) bool {
	return name == "index" || name == "columns"
}

// CheckSelectionWithoutLambda flags subscripts whose index expression
// re-reads the variable being subscripted. It applies only when the base is
// a bare name or an attribute over a bare name (df[...], df.loc[...]); the
// selection should receive an isolated single-argument function instead of
// capturing the outer variable.
//
// Disapproved:
//
//	df[df.isna().any(axis=1)]
//	df.loc[df.col==0]
//
// Approved:
//
//	df.loc[lambda df_: df_.col==0]
//
// Registered on Subscript nodes; emits PMC007.
func CheckSelectionWithoutLambda(n *node.Node, _ walker.Parents) []walker.Diagnostic {
	base := n.Value()

	var baseName string

	switch {
	case base.Kind == node.KindName:
		baseName = base.Token
	case base.Kind == node.KindAttribute && base.Value().Kind == node.KindName:
		baseName = base.Value().Token
	default:
		return nil
	}

	if _, ok := referencedNames(n.Index())[baseName]; ok {
		return []walker.Diagnostic{newDiagnostic(n, MsgSelectionWithoutLambda)}
	}

	return nil
}
