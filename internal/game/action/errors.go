package action

import (
	"errors"
	"fmt"
)

// Rejection errors. Each carries the short user-facing message directly;
// the presentation layer forwards it verbatim. A rejected action never
// changes the persisted record.
var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNotIdle          = errors.New("you are already busy with another action")
	ErrNotInCombat      = errors.New("you are not in combat")
	ErrNotInLobby       = errors.New("you are not in the evolution lobby")
	ErrOnCooldown       = errors.New("this ability is still on cooldown")
	ErrInsufficientMana = errors.New("insufficient mana")
	ErrSkillNotLearned  = errors.New("you have not learned this ability")
	ErrUnknownMonster   = errors.New("there is no such creature to hunt")
	ErrUnknownRecipe    = errors.New("there is no such recipe")
	ErrMissingInputs    = errors.New("insufficient resources")
	ErrCannotDismantle  = errors.New("this item cannot be dismantled")
	ErrNoPendingWork    = errors.New("you have nothing to finish")
	ErrNotReady         = errors.New("this action is not finished yet")
	ErrNothingToRepair  = errors.New("there is nothing to repair")
)

// PersistenceError marks a failed commit of an already-computed result.
// Retryable: the computation succeeded, only the store write failed, so
// the caller must not present success to the user.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: could not save progress: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the error is a persistence failure worth
// retrying.
func IsRetryable(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
