package mcfg

import (
	"github.com/pkg/errors"
)

// Sentinel errors. Wrap these with errors.Wrapf to add detail while
// keeping them discoverable via the standard library's errors.Is.
var (
	// ErrMalformedRule is returned when a rule fails linearity, arity, or
	// undeclared-variable validation at construction time.
	ErrMalformedRule = errors.New("mcfg: malformed rule")

	// ErrInvalidMode is returned when Grammar.Run is called with a Mode
	// other than ModeRecognize or ModeParse.
	ErrInvalidMode = errors.New("mcfg: invalid mode")

	// ErrStepBudgetExceeded is returned when a parser configured with a
	// step budget exhausts it before the agenda empties.
	ErrStepBudgetExceeded = errors.New("mcfg: step budget exceeded")

	// ErrUnparsable is returned by the ruletext package when rule or
	// grammar-file text doesn't match the expected syntax. Exported here
	// so callers can errors.Is against a single mcfg-rooted sentinel
	// regardless of which package surfaced the failure.
	ErrUnparsable = errors.New("mcfg: unparsable rule text")
)
