package chain

import "errors"

var (
	// ErrRuleNil a nil Rule was given to a chain
	ErrRuleNil = errors.New("rule is nil")

	// ErrChainEmpty Builder has no rules to build from
	ErrChainEmpty = errors.New("chain is empty")
)
