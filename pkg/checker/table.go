package checker

import (
	"strings"

	"github.com/fran6w/pandas-method-chaining/pkg/rules"
	"github.com/fran6w/pandas-method-chaining/pkg/walker"
)

// codes lists the stable rule identifiers in catalogue order.
//
//nolint:gochecknoglobals // Static catalogue, read-only after init.
var codes = []string{
	rules.PMC001,
	rules.PMC002,
	rules.PMC003,
	rules.PMC004,
	rules.PMC005,
	rules.PMC006,
	rules.PMC007,
}

// Codes returns the stable rule identifiers in catalogue order.
func Codes() []string {
	out := make([]string, len(codes))
	copy(out, codes)

	return out
}

// DefaultEnabled returns the default activation table: every rule disabled
// until the host explicitly enables it. The table is a compiled-in literal;
// the rule functions themselves never consult it.
func DefaultEnabled() map[string]bool {
	return map[string]bool{
		rules.PMC001: false,
		rules.PMC002: false,
		rules.PMC003: false,
		rules.PMC004: false,
		rules.PMC005: false,
		rules.PMC006: false,
		rules.PMC007: false,
	}
}

// EnableAll returns an activation table with every rule enabled. This is the
// loud mode a host offers users who want the full catalogue.
func EnableAll() map[string]bool {
	enabled := DefaultEnabled()
	for code := range enabled {
		enabled[code] = true
	}

	return enabled
}

// Filter returns the diagnostics whose rule identifier is enabled in the
// given activation table, preserving order. Selection is a host concern;
// Run itself always returns the full sequence.
func Filter(diags []walker.Diagnostic, enabled map[string]bool) []walker.Diagnostic {
	var kept []walker.Diagnostic

	for _, diag := range diags {
		if enabled[CodeOf(diag)] {
			kept = append(kept, diag)
		}
	}

	return kept
}

// CodeOf extracts the stable rule identifier prefix from a diagnostic
// message (e.g. "PMC004" from "PMC004 assignment using subscript ...").
func CodeOf(diag walker.Diagnostic) string {
	code, _, _ := strings.Cut(diag.Message, " ")

	return code
}
