package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/guard"
)

var ErrCancelDraftCommandIsNotConstructed = errors.New(
	"CancelDraftCommand must be created via NewCancelDraftCommand constructor",
)

// CancelDraftCommand drops every line of the draft ticket.
type CancelDraftCommand struct {
	guard guard.ConstructorGuard
}

func NewCancelDraftCommand() CancelDraftCommand {
	return CancelDraftCommand{guard: guard.NewConstructorGuard()}
}

func (c CancelDraftCommand) Validate() error {
	return c.guard.Validate(ErrCancelDraftCommandIsNotConstructed)
}

type CancelDraftCommandHandler struct {
	draft *services.DraftTicket
}

func NewCancelDraftCommandHandler(draft *services.DraftTicket) CancelDraftCommandHandler {
	return CancelDraftCommandHandler{draft: draft}
}

func (h *CancelDraftCommandHandler) Handle(_ context.Context, cmd CancelDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.draft.Cancel()
	return nil
}
