package commands

import (
	"errors"
	"fmt"
	"time"

	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var (
	ErrExpireCheckoutsCommandIsNotConstructed = errors.New(
		"ExpireCheckoutsCommand must be created via NewExpireCheckoutsCommand constructor",
	)
)

// ExpireCheckoutsCommand discards sessions nobody touched for IdleFor.
//
// Example:
//
//	cmd, _ := NewExpireCheckoutsCommand(30 * time.Minute)
//	removed, err := handler.Handle(ctx, cmd)
type ExpireCheckoutsCommand struct { //nolint:recvcheck //using for validation
	idleFor time.Duration

	guard guard.ConstructorGuard
}

func NewExpireCheckoutsCommand(idleFor time.Duration) (ExpireCheckoutsCommand, error) {
	cmd := ExpireCheckoutsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setIdleFor(idleFor); err != nil {
		return ExpireCheckoutsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireCheckoutsCommand) Validate() error {
	return c.guard.Validate(ErrExpireCheckoutsCommandIsNotConstructed)
}

func (c ExpireCheckoutsCommand) IdleFor() time.Duration {
	return c.idleFor
}

func (c *ExpireCheckoutsCommand) setIdleFor(idleFor time.Duration) error {
	if idleFor <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("idleFor", fmt.Errorf("%s is not positive", idleFor))
	}

	c.idleFor = idleFor
	return nil
}
