// flagset.go - Code to parse command line flags.
// SPDX-License-Identifier: GPL-3.0-or-later

package arglex

import "github.com/arglex/arglex/pkg/nflag"

// ErrorHandling is an alias for [nflag.ErrorHandling].
//
// Deprecated: use pkg/nflag directly instead.
type ErrorHandling = nflag.ErrorHandling

const (
	// ContinueOnError is an alias for [nflag.ContinueOnError].
	//
	// Deprecated: use pkg/nflag directly instead.
	ContinueOnError = nflag.ContinueOnError

	// ExitOnError is an alias for [nflag.ExitOnError].
	//
	// Deprecated: use pkg/nflag directly instead.
	ExitOnError = nflag.ExitOnError

	// PanicOnError is an alias for [nflag.PanicOnError].
	//
	// Deprecated: use pkg/nflag directly instead.
	PanicOnError = nflag.PanicOnError
)

// NewFlagSet is an alias for [nflag.NewFlagSet].
//
// Deprecated: use pkg/nflag directly instead.
var NewFlagSet = nflag.NewFlagSet

// FlagSet is an alias for [nflag.FlagSet].
//
// Deprecated: use pkg/nflag directly instead.
type FlagSet = nflag.FlagSet
