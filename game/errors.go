package game

import (
	"errors"
	"fmt"
)

// Rule violations. Every *RuleError wraps one of these and also matches ErrRuleViolation.
var (
	ErrRuleViolation  = errors.New("rule violation")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrBiddingClosed  = errors.New("bidding is closed")
	ErrIllegalBid     = errors.New("illegal bid")
	ErrTrickClosed    = errors.New("trick is already complete")
	ErrCardNotInHand  = errors.New("card not in hand")
	ErrMustFollowSuit = errors.New("must follow suit if able")
	ErrMustTrump      = errors.New("must play trump if able")
	ErrMustOvertrump  = errors.New("must overtrump if able")
	ErrInvalidAction  = errors.New("invalid action for current phase")
)

// ErrInvariant matches every InvariantError
var ErrInvariant = errors.New("invariant violation")

// RuleError reports an action rejected by the rules. The snapshot it was
// attempted against is left unchanged, so the caller can simply prompt again.
type RuleError struct {
	Action           string `json:"action"`
	Position         int    `json:"position"`
	ExpectedPosition int    `json:"expectedPosition"`
	State            string `json:"state"`
	Err              error  `json:"-"`
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s by seat %d rejected (expected seat %d, state %s): %v",
		e.Action, e.Position, e.ExpectedPosition, e.State, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }

func (e *RuleError) Is(target error) bool { return target == ErrRuleViolation }

// IsRuleViolation reports whether err is a recoverable rule violation
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrRuleViolation)
}

// InvariantError signals an engine call made out of phase; it is a caller bug.
type InvariantError string

func (e InvariantError) Error() string { return string(e) }

func (e InvariantError) Is(target error) bool { return target == ErrInvariant }
