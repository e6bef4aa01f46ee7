package rules

// Issuer is the opaque tag stamped into every diagnostic produced by this
// rule set. Hosts key default-enable filtering on it.
const Issuer = "pandas-method-chaining"

// Stable rule identifiers.
const (
	PMC001 = "PMC001"
	PMC002 = "PMC002"
	PMC003 = "PMC003"
	PMC004 = "PMC004"
	PMC005 = "PMC005"
	PMC006 = "PMC006"
	PMC007 = "PMC007"
)

// Diagnostic messages, rule identifier prefix included.
const (
	MsgInplaceTrue               = PMC001 + " usage of 'inplace=True' should be avoided"
	MsgReassignmentWithCall      = PMC002 + " reassignment using call could be replaced by method chaining"
	MsgReassignmentWithSubscript = PMC003 + " reassignment using subscript could be replaced by method chaining"
	MsgAssignmentWithSubscript   = PMC004 + " assignment using subscript could be replaced by 'assign()'"
	MsgAssignmentWithAttribute   = PMC005 + " assignment using attribute could be replaced by 'assign()'"
	MsgAssignmentOfIndex         = PMC006 + " assignment of index or columns could be replaced by 'rename()'"
	MsgSelectionWithoutLambda    = PMC007 + " selection reusing a variable could be performed with a lambda"
)
