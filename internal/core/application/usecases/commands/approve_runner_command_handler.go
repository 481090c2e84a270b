package commands

import (
	"context"

	"studel/internal/core/domain/model/user"
)

// ApproveRunnerCommandHandler flips the approval flag of a runner or a canteen
// account. Approving an approved account succeeds without a change.
type ApproveRunnerCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewApproveRunnerCommandHandler(uowFactory UserUoWFactory) ApproveRunnerCommandHandler {
	return ApproveRunnerCommandHandler{uowFactory: uowFactory}
}

func (h ApproveRunnerCommandHandler) Handle(ctx context.Context, cmd ApproveRunnerCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := cmd.Admin().Require(user.Admin, "approve runner"); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	runner, err := userRepo.Get(ctx, cmd.RunnerID())
	if err != nil {
		return nil, err
	}

	if runner.IsApproved() && runner.Role().NeedsApproval() {
		return runner, nil
	}

	if err = runner.Approve(); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, runner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return runner, nil
}
