// SPDX-License-Identifier: MIT

// Package netbasis: functional configuration for basis construction.
//
//   - Option / options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors that panic on nonsensical values (programmer error).
package netbasis

import "github.com/rs/zerolog"

// DefaultChecks disables the post-operation invariant checks.
const DefaultChecks = false

const panicWorkspaceNil = "netbasis: WithWorkspace: workspace must be non-nil"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	workspace *Workspace
	logger    zerolog.Logger
	checks    bool
}

func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
		checks: DefaultChecks,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.workspace == nil {
		o.workspace = NewWorkspace(0)
	}

	return o
}

// WithWorkspace shares scratch storage between bases used one after another.
// The workspace grows to fit the largest basis. Panics on nil.
func WithWorkspace(w *Workspace) Option {
	if w == nil {
		panic(panicWorkspaceNil)
	}

	return func(o *options) { o.workspace = w }
}

// WithLogger routes pivot logging to l: Debug for every ReplaceColumn,
// Trace for forest dumps before and after. Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithChecks runs Check after every ReplaceColumn (returning its error) and
// verifies the workspace after every FTRAN/BTRAN (panicking when dirty).
func WithChecks(enabled bool) Option {
	return func(o *options) { o.checks = enabled }
}
