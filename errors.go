package padezh

import "errors"

var (
	// ErrInvalidArgument reports an empty word or phrase, an unknown enum
	// value, a malformed decimal or a negative ordinal.
	ErrInvalidArgument = errors.New("padezh: invalid argument")

	// ErrNumberTooBig reports an integer part beyond the magnitude table.
	ErrNumberTooBig = errors.New("padezh: number too big")

	// ErrNumberTooSmall reports a fraction deeper than the supported scale.
	ErrNumberTooSmall = errors.New("padezh: number too small")

	// ErrRuleTable reports a rule table whose gender filter left no candidate.
	ErrRuleTable = errors.New("padezh: inconsistent rule table")
)
