package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// PlaceOrderCommandHandler commits the draft ticket into the order registry.
//
// The identity is drawn from the order repository, and the order with its
// line items is stored and committed before it becomes visible in the
// registry. Only then is the draft cleared and an EventOrderPlaced published.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, draft, registry, publisher, time.Now, logger)
//	placed, err := handler.Handle(ctx, NewPlaceOrderCommand(5))
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	draft      *services.DraftTicket
	registry   *services.OrderRegistry
	publisher  ports.OrderEventPublisher
	clock      order.Clock
	logger     *slog.Logger
}

func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	draft *services.DraftTicket,
	registry *services.OrderRegistry,
	publisher ports.OrderEventPublisher,
	clock order.Clock,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		draft:      draft,
		registry:   registry,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "place_order"),
	}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	placed, err := h.draft.Place(
		h.registry,
		cmd.TableNumber(),
		func() (int64, error) {
			return orderRepo.NextID(ctx)
		},
		h.clock,
		func(o *order.Order) error {
			if err := orderRepo.Add(ctx, o); err != nil {
				return err
			}
			return uow.Commit(ctx)
		},
	)
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order placed",
		"order_id", placed.ID(),
		"table", placed.TableNumber(),
		"total", placed.Total().String())

	publish(ctx, h.publisher, h.logger, order.NewPlacedEvent(placed))
	return placed, nil
}

// publish hands events to the broker. The change is already committed, so a
// broker failure is logged and not returned.
func publish(ctx context.Context, publisher ports.OrderEventPublisher, logger *slog.Logger, events ...order.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.ErrorContext(ctx, "failed to publish order events", "error", err, "count", len(events))
	}
}
