package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies preparation and payment changes to
// registered orders. Each change is stored and committed inside the
// registry's critical section, so two staff members changing the same order
// cannot lose an update.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, registry, publisher, time.Now, logger)
//	cmd, _ := NewChangePaymentStatusCommand(12, "paid")
//	updated, err := handler.HandlePayment(ctx, cmd)
//	if errors.Is(err, errs.ErrTransitionIsInvalid) {
//	    // e.g. the order was already refunded
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	registry   *services.OrderRegistry
	publisher  ports.OrderEventPublisher
	clock      order.Clock
	logger     *slog.Logger
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	registry *services.OrderRegistry,
	publisher ports.OrderEventPublisher,
	clock order.Clock,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "change_order_status"),
	}
}

func (h *ChangeOrderStatusCommandHandler) HandlePreparation(
	ctx context.Context,
	cmd ChangePreparationStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.apply(ctx, order.PreparationStatusField, func(persist services.StatusSink) (*order.Order, error) {
		return h.registry.ApplyPreparationStatus(cmd.OrderID(), cmd.Status(), persist)
	})
}

func (h *ChangeOrderStatusCommandHandler) HandlePayment(
	ctx context.Context,
	cmd ChangePaymentStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.apply(ctx, order.PaymentStatusField, func(persist services.StatusSink) (*order.Order, error) {
		return h.registry.ApplyPaymentStatus(cmd.OrderID(), cmd.Status(), persist)
	})
}

func (h *ChangeOrderStatusCommandHandler) apply(
	ctx context.Context,
	field order.StatusField,
	change func(persist services.StatusSink) (*order.Order, error),
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	updated, err := change(func(orderID int64, field order.StatusField, value string) error {
		if err := orderRepo.UpdateStatus(ctx, orderID, field, value); err != nil {
			return err
		}
		return uow.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", updated.ID(),
		"preparation_status", updated.PreparationStatus().String(),
		"payment_status", updated.PaymentStatus().String())

	publish(ctx, h.publisher, h.logger, order.NewStatusChangedEvent(updated, field, h.clock()))
	return updated, nil
}
