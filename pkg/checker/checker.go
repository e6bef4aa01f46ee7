// Package checker wires the full rule set onto a walker and exposes the
// host-facing boundary: a run that returns either the complete diagnostic
// sequence or a single fault error, plus the static activation tables a host
// uses to filter diagnostics. The core never filters its own output.
package checker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fran6w/pandas-method-chaining/pkg/node"
	"github.com/fran6w/pandas-method-chaining/pkg/rules"
	"github.com/fran6w/pandas-method-chaining/pkg/walker"
)

// ErrAnalysisAborted is returned when a rule faults during a run. No partial
// diagnostics accompany it: a run either reports completely or not at all.
var ErrAnalysisAborted = errors.New("analysis aborted")

// Config configures a Checker.
type Config struct {
	// Logger is the structured logger for run-level traces.
	// When nil, a discard logger is used.
	Logger *slog.Logger
}

// logger returns the configured logger, or a discard logger if nil.
func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Checker analyzes pre-built syntax trees for method-chaining
// anti-patterns. A Checker is stateless across runs and safe for concurrent
// use over independent trees.
type Checker struct {
	walker *walker.Walker
	logger *slog.Logger
}

// New creates a Checker with the complete rule set registered in its fixed
// dispatch order.
func New(cfg Config) *Checker {
	w := walker.New()
	w.Register(node.KindCall, rules.CheckInplaceTrue)
	w.Register(node.KindAssign,
		rules.CheckReassignmentWithCall,
		rules.CheckReassignmentWithSubscript,
		rules.CheckAssignmentWithSubscript,
		rules.CheckAssignmentWithAttribute,
		rules.CheckAssignmentOfIndex,
	)
	w.Register(node.KindSubscript, rules.CheckSelectionWithoutLambda)

	return &Checker{walker: w, logger: cfg.logger()}
}

// Run analyzes the tree rooted at root and returns the complete diagnostic
// sequence in traversal order. A fault anywhere in the run — a rule
// panicking on a malformed subtree — aborts the whole analysis: Run returns
// a nil sequence and an error wrapping ErrAnalysisAborted. Recovery happens
// exactly once, here at the boundary; the walker and the rules attempt none.
func (c *Checker) Run(root *node.Node) (diags []walker.Diagnostic, err error) {
	defer func() {
		if r := recover(); r != nil {
			diags = nil
			err = fmt.Errorf("%w: %v", ErrAnalysisAborted, r)
		}
	}()

	diags = c.walker.Run(root)
	c.logger.Debug("checker: run complete", "diagnostics", len(diags))

	return diags, nil
}
