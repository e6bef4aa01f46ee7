package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fran6w/pandas-method-chaining/pkg/node"
	"github.com/fran6w/pandas-method-chaining/pkg/rules"
)

// name, attr, call and friends keep fixture construction close to the source
// text it mimics. Every fixture sits on line 1, column 0 unless stated.

func name(id string) *node.Node {
	return node.NewName(node.At(1, 0), id)
}

func attr(base *node.Node, attribute string) *node.Node {
	return node.NewAttribute(node.At(1, 0), base, attribute)
}

func call(callee *node.Node, args ...*node.Node) *node.Node {
	return node.NewCall(node.At(1, 0), callee, args...)
}

func subscript(base, index *node.Node) *node.Node {
	return node.NewSubscript(node.At(1, 0), base, index)
}

func assign(target, value *node.Node) *node.Node {
	return node.NewAssign(node.At(1, 0), []*node.Node{target}, value)
}

func TestCheckInplaceTrue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *node.Node
		want int
	}{
		{
			name: "no keywords",
			node: call(attr(name("df"), "set_index"), node.NewLiteral(node.At(1, 13), "'col'")),
			want: 0,
		},
		{
			name: "inplace literal true",
			node: call(attr(name("df"), "set_index"),
				node.NewLiteral(node.At(1, 13), "'col'"),
				node.NewKeyword(node.At(1, 20), "inplace", node.NewLiteral(node.At(1, 28), "True"))),
			want: 1,
		},
		{
			name: "inplace literal false",
			node: call(attr(name("df"), "set_index"),
				node.NewKeyword(node.At(1, 13), "inplace", node.NewLiteral(node.At(1, 21), "False"))),
			want: 0,
		},
		{
			name: "inplace bound to a variable",
			node: call(attr(name("df"), "set_index"),
				node.NewKeyword(node.At(1, 13), "inplace", name("flag"))),
			want: 0,
		},
		{
			name: "other keyword",
			node: call(attr(name("df"), "rename"),
				node.NewKeyword(node.At(1, 10), "axis", node.NewLiteral(node.At(1, 15), "1"))),
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := rules.CheckInplaceTrue(tt.node, nil)
			assert.Len(t, diags, tt.want)

			for _, diag := range diags {
				assert.Equal(t, rules.MsgInplaceTrue, diag.Message)
				assert.Equal(t, 1, diag.Line)
				assert.Equal(t, 0, diag.Col)
			}
		})
	}
}

func TestCheckReassignmentWithCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *node.Node
		want int
	}{
		{
			name: "method call on reassigned name",
			node: assign(name("df"), call(attr(name("df"), "sum"))),
			want: 1,
		},
		{
			name: "free function over reassigned name",
			node: assign(name("df"), call(name("fct"), name("df"))),
			want: 1,
		},
		{
			name: "chained calls on reassigned name",
			node: assign(name("df"), call(attr(call(attr(name("df"), "sum")), "sum"))),
			want: 1,
		},
		{
			name: "call not referencing the target",
			node: assign(name("df"), call(attr(name("other"), "sum"))),
			want: 0,
		},
		{
			name: "value is not a call",
			node: assign(name("df"), name("other")),
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := rules.CheckReassignmentWithCall(tt.node, nil)
			assert.Len(t, diags, tt.want)

			for _, diag := range diags {
				assert.Equal(t, rules.MsgReassignmentWithCall, diag.Message)
			}
		})
	}
}

func TestCheckReassignmentWithSubscript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *node.Node
		want int
	}{
		{
			name: "plain subscript over reassigned name",
			node: assign(name("df"), subscript(name("df"), name("col"))),
			want: 1,
		},
		{
			name: "loc subscript over reassigned name",
			node: assign(name("df"), subscript(attr(name("df"), "loc"), name("col"))),
			want: 1,
		},
		{
			name: "subscript after a chained call",
			node: assign(name("df"), subscript(attr(call(attr(name("df"), "sum")), "loc"), name("col"))),
			want: 1,
		},
		{
			name: "target appears only in the index",
			node: assign(name("df"), subscript(name("other"), name("df"))),
			want: 0,
		},
		{
			name: "value is not a subscript",
			node: assign(name("df"), call(attr(name("df"), "sum"))),
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := rules.CheckReassignmentWithSubscript(tt.node, nil)
			assert.Len(t, diags, tt.want)

			for _, diag := range diags {
				assert.Equal(t, rules.MsgReassignmentWithSubscript, diag.Message)
			}
		})
	}
}

func TestCheckAssignmentWithSubscript(t *testing.T) {
	t.Parallel()

	zero := node.NewLiteral(node.At(1, 10), "0")

	single := assign(subscript(name("df"), name("col")), zero)
	diags := rules.CheckAssignmentWithSubscript(single, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, rules.MsgAssignmentWithSubscript, diags[0].Message)

	locTarget := assign(subscript(attr(name("df"), "loc"), name("col")), zero)
	assert.Len(t, rules.CheckAssignmentWithSubscript(locTarget, nil), 1)

	// One diagnostic per matching target.
	multi := node.NewAssign(node.At(1, 0),
		[]*node.Node{
			subscript(name("df"), name("a")),
			subscript(name("df2"), name("b")),
		},
		zero)
	assert.Len(t, rules.CheckAssignmentWithSubscript(multi, nil), 2)

	plain := assign(name("df"), zero)
	assert.Empty(t, rules.CheckAssignmentWithSubscript(plain, nil))
}

func TestAttributeTargetRulesAreMutuallyExclusive(t *testing.T) {
	t.Parallel()

	zero := node.NewLiteral(node.At(1, 10), "0")

	tests := []struct {
		name          string
		attribute     string
		wantAttribute int
		wantIndex     int
	}{
		{name: "plain column attribute", attribute: "col", wantAttribute: 1, wantIndex: 0},
		{name: "index attribute", attribute: "index", wantAttribute: 0, wantIndex: 1},
		{name: "columns attribute", attribute: "columns", wantAttribute: 0, wantIndex: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target := assign(attr(name("df"), tt.attribute), zero)

			attrDiags := rules.CheckAssignmentWithAttribute(target, nil)
			indexDiags := rules.CheckAssignmentOfIndex(target, nil)

			assert.Len(t, attrDiags, tt.wantAttribute)
			assert.Len(t, indexDiags, tt.wantIndex)

			for _, diag := range attrDiags {
				assert.Equal(t, rules.MsgAssignmentWithAttribute, diag.Message)
			}

			for _, diag := range indexDiags {
				assert.Equal(t, rules.MsgAssignmentOfIndex, diag.Message)
			}
		})
	}
}

func TestCheckSelectionWithoutLambda(t *testing.T) {
	t.Parallel()

	// df.isna().any(axis=1) with df spelled by baseID.
	condition := func(baseID string) *node.Node {
		isna := call(attr(name(baseID), "isna"))
		anyCall := call(attr(isna, "any"),
			node.NewKeyword(node.At(1, 20), "axis", node.NewLiteral(node.At(1, 25), "1")))

		return anyCall
	}

	tests := []struct {
		name string
		node *node.Node
		want int
	}{
		{
			name: "bare name base rereads itself",
			node: subscript(name("df"), condition("df")),
			want: 1,
		},
		{
			name: "loc base rereads itself",
			node: subscript(attr(name("df"), "loc"), condition("df")),
			want: 1,
		},
		{
			name: "lambda isolates the selection",
			node: subscript(attr(name("df"), "loc"),
				node.NewLambda(node.At(1, 7), []string{"df_"}, condition("df_"))),
			want: 0,
		},
		{
			name: "index references a different name",
			node: subscript(name("df"), name("col")),
			want: 0,
		},
		{
			name: "deeper chains are out of shape",
			node: subscript(call(attr(name("df"), "sum")), condition("df")),
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := rules.CheckSelectionWithoutLambda(tt.node, nil)
			assert.Len(t, diags, tt.want)

			for _, diag := range diags {
				assert.Equal(t, rules.MsgSelectionWithoutLambda, diag.Message)
			}
		})
	}
}

func TestDiagnosticsCarryIssuerAndPosition(t *testing.T) {
	t.Parallel()

	stmt := node.NewAssign(node.At(7, 4),
		[]*node.Node{node.NewSubscript(node.At(7, 4), node.NewName(node.At(7, 4), "df"), node.NewName(node.At(7, 7), "col"))},
		node.NewLiteral(node.At(7, 13), "0"))

	diags := rules.CheckAssignmentWithSubscript(stmt, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, 7, diags[0].Line)
	assert.Equal(t, 4, diags[0].Col)
	assert.Equal(t, rules.Issuer, diags[0].Issuer)
}
