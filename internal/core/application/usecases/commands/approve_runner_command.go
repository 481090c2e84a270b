package commands

import (
	"errors"
	"strings"

	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"
	"studel/internal/pkg/guard"
)

var ErrApproveRunnerCommandIsNotConstructed = errors.New(
	"ApproveRunnerCommand must be created via NewApproveRunnerCommand constructor",
)

// ApproveRunnerCommand lets an admin allow a runner to accept deliveries.
type ApproveRunnerCommand struct {
	admin    user.Actor
	runnerID string

	guard guard.ConstructorGuard
}

func NewApproveRunnerCommand(admin user.Actor, runnerID string) (ApproveRunnerCommand, error) {
	runnerID = strings.TrimSpace(runnerID)
	if runnerID == "" {
		return ApproveRunnerCommand{}, errs.NewValueIsRequiredError("runnerId")
	}

	return ApproveRunnerCommand{
		admin:    admin,
		runnerID: runnerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveRunnerCommand) Validate() error {
	return c.guard.Validate(ErrApproveRunnerCommandIsNotConstructed)
}

func (c ApproveRunnerCommand) Admin() user.Actor { return c.admin }
func (c ApproveRunnerCommand) RunnerID() string  { return c.runnerID }
