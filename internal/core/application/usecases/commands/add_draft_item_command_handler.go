package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// AddDraftItemCommandHandler looks the menu item up, cache first, and adds it
// to the draft ticket. Cache failures are logged and fall through to the
// menu repository.
type AddDraftItemCommandHandler struct {
	uowFactory MenuUoWFactory
	cache      ports.MenuCache
	draft      *services.DraftTicket
	logger     *slog.Logger
}

func NewAddDraftItemCommandHandler(
	uowFactory MenuUoWFactory,
	cache ports.MenuCache,
	draft *services.DraftTicket,
	logger *slog.Logger,
) AddDraftItemCommandHandler {
	return AddDraftItemCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		draft:      draft,
		logger:     logger.With("component", "add_draft_item"),
	}
}

func (h *AddDraftItemCommandHandler) Handle(ctx context.Context, cmd AddDraftItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.lookup(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	return h.draft.AddItem(item, cmd.Quantity())
}

func (h *AddDraftItemCommandHandler) lookup(ctx context.Context, id int64) (menu.Item, error) {
	if h.cache != nil {
		item, found, err := h.cache.Get(ctx, id)
		switch {
		case err != nil:
			h.logger.WarnContext(ctx, "menu cache read failed", "menu_item_id", id, "error", err)
		case found:
			return item, nil
		}
	}

	item, err := h.uowFactory.Create().MenuRepository().Get(ctx, id)
	if err != nil {
		return menu.Item{}, err
	}

	if h.cache != nil {
		if err = h.cache.Set(ctx, item); err != nil {
			h.logger.WarnContext(ctx, "menu cache write failed", "menu_item_id", id, "error", err)
		}
	}

	return item, nil
}
