package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/ports"
)

// MenuItemCommandHandler creates, updates and deletes menu catalog entries.
// Updates and deletes evict the cached snapshot after the commit.
//
// Example:
//
//	handler := NewMenuItemCommandHandler(uowFactory, cache, logger)
//	cmd, _ := NewCreateMenuItemCommand("Soup", "4.00")
//	soup, err := handler.HandleCreate(ctx, cmd)
type MenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	cache      ports.MenuCache
	logger     *slog.Logger
}

func NewMenuItemCommandHandler(
	uowFactory MenuUoWFactory,
	cache ports.MenuCache,
	logger *slog.Logger,
) MenuItemCommandHandler {
	return MenuItemCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "menu"),
	}
}

func (h *MenuItemCommandHandler) HandleCreate(ctx context.Context, cmd CreateMenuItemCommand) (menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return menu.Item{}, err
	}

	item, err := menu.NewItem(cmd.Name(), cmd.Price())
	if err != nil {
		return menu.Item{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return menu.Item{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.MenuRepository().Add(ctx, item)
	if err != nil {
		return menu.Item{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return menu.Item{}, err
	}

	return stored, nil
}

func (h *MenuItemCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateMenuItemCommand) (menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return menu.Item{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return menu.Item{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	current, err := menuRepo.Get(ctx, cmd.ID())
	if err != nil {
		return menu.Item{}, err
	}

	updated, err := current.Update(cmd.Name(), cmd.Price())
	if err != nil {
		return menu.Item{}, err
	}

	if err = menuRepo.Update(ctx, updated); err != nil {
		return menu.Item{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return menu.Item{}, err
	}

	h.evict(ctx, cmd.ID())
	return updated, nil
}

func (h *MenuItemCommandHandler) HandleDelete(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.evict(ctx, cmd.ID())
	return nil
}

func (h *MenuItemCommandHandler) evict(ctx context.Context, id int64) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "menu cache eviction failed", "menu_item_id", id, "error", err)
	}
}
