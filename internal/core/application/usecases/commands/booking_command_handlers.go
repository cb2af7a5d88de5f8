package commands

import (
	"context"

	"restaurant/internal/core/domain/model/booking"
	"restaurant/internal/core/domain/model/order"
)

// BookingCommandHandler creates, updates and deletes table bookings. The
// booking time is taken from the clock at creation and never changes.
type BookingCommandHandler struct {
	uowFactory BookingUoWFactory
	clock      order.Clock
}

func NewBookingCommandHandler(uowFactory BookingUoWFactory, clock order.Clock) BookingCommandHandler {
	return BookingCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h *BookingCommandHandler) HandleCreate(
	ctx context.Context,
	cmd CreateBookingCommand,
) (*booking.TableBooking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	b, err := booking.NewTableBooking(cmd.TableNumber(), cmd.Capacity(), cmd.CustomerName(), h.clock())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BookingRepository().Add(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}

func (h *BookingCommandHandler) HandleUpdate(
	ctx context.Context,
	cmd UpdateBookingCommand,
) (*booking.TableBooking, error) {
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

	bookingRepo := uow.BookingRepository()
	b, err := bookingRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	if err = b.Update(cmd.TableNumber(), cmd.Capacity(), cmd.CustomerName()); err != nil {
		return nil, err
	}

	if err = bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}

func (h *BookingCommandHandler) HandleDelete(ctx context.Context, cmd DeleteBookingCommand) error {
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

	if err := uow.BookingRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
