package http_test

import (
	"context"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/booking"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockMenuCommands struct {
	mock.Mock
}

func (m *MockMenuCommands) HandleCreate(ctx context.Context, cmd commands.CreateMenuItemCommand) (menu.Item, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(menu.Item), args.Error(1)
}

func (m *MockMenuCommands) HandleUpdate(ctx context.Context, cmd commands.UpdateMenuItemCommand) (menu.Item, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(menu.Item), args.Error(1)
}

func (m *MockMenuCommands) HandleDelete(ctx context.Context, cmd commands.DeleteMenuItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockMenuQueries struct {
	mock.Mock
}

func (m *MockMenuQueries) Handle(
	ctx context.Context,
	query queries.GetAllMenuItemsQuery,
) ([]queries.GetAllMenuItemsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetAllMenuItemsQueryResponse), args.Error(1)
}

type MockDraftItemAdder struct {
	mock.Mock
}

func (m *MockDraftItemAdder) Handle(ctx context.Context, cmd commands.AddDraftItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDraftCanceller struct {
	mock.Mock
}

func (m *MockDraftCanceller) Handle(ctx context.Context, cmd commands.CancelDraftCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderStatusChanger struct {
	mock.Mock
}

func (m *MockOrderStatusChanger) HandlePreparation(
	ctx context.Context,
	cmd commands.ChangePreparationStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStatusChanger) HandlePayment(
	ctx context.Context,
	cmd commands.ChangePaymentStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderQueries struct {
	mock.Mock
}

func (m *MockOrderQueries) HandleAll(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderResponse), args.Error(1)
}

func (m *MockOrderQueries) HandleOne(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderResponse), args.Error(1)
}

func (m *MockOrderQueries) HandleDraft(ctx context.Context, query queries.GetDraftQuery) (queries.DraftResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.DraftResponse), args.Error(1)
}

type MockBookingCommands struct {
	mock.Mock
}

func (m *MockBookingCommands) HandleCreate(
	ctx context.Context,
	cmd commands.CreateBookingCommand,
) (*booking.TableBooking, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.TableBooking), args.Error(1)
}

func (m *MockBookingCommands) HandleUpdate(
	ctx context.Context,
	cmd commands.UpdateBookingCommand,
) (*booking.TableBooking, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.TableBooking), args.Error(1)
}

func (m *MockBookingCommands) HandleDelete(ctx context.Context, cmd commands.DeleteBookingCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockBookingQueries struct {
	mock.Mock
}

func (m *MockBookingQueries) Handle(
	ctx context.Context,
	query queries.GetAllBookingsQuery,
) ([]queries.GetAllBookingsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetAllBookingsQueryResponse), args.Error(1)
}
