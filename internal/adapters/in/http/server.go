package http

import (
	"context"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/booking"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Use cases the server drives. The command and query handlers satisfy them.
type (
	MenuCommands interface {
		HandleCreate(ctx context.Context, cmd commands.CreateMenuItemCommand) (menu.Item, error)
		HandleUpdate(ctx context.Context, cmd commands.UpdateMenuItemCommand) (menu.Item, error)
		HandleDelete(ctx context.Context, cmd commands.DeleteMenuItemCommand) error
	}

	MenuQueries interface {
		Handle(ctx context.Context, query queries.GetAllMenuItemsQuery) ([]queries.GetAllMenuItemsQueryResponse, error)
	}

	DraftItemAdder interface {
		Handle(ctx context.Context, cmd commands.AddDraftItemCommand) error
	}

	DraftCanceller interface {
		Handle(ctx context.Context, cmd commands.CancelDraftCommand) error
	}

	OrderPlacer interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
	}

	OrderStatusChanger interface {
		HandlePreparation(ctx context.Context, cmd commands.ChangePreparationStatusCommand) (*order.Order, error)
		HandlePayment(ctx context.Context, cmd commands.ChangePaymentStatusCommand) (*order.Order, error)
	}

	OrderQueries interface {
		HandleAll(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error)
		HandleOne(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
		HandleDraft(ctx context.Context, query queries.GetDraftQuery) (queries.DraftResponse, error)
	}

	BookingCommands interface {
		HandleCreate(ctx context.Context, cmd commands.CreateBookingCommand) (*booking.TableBooking, error)
		HandleUpdate(ctx context.Context, cmd commands.UpdateBookingCommand) (*booking.TableBooking, error)
		HandleDelete(ctx context.Context, cmd commands.DeleteBookingCommand) error
	}

	BookingQueries interface {
		Handle(ctx context.Context, query queries.GetAllBookingsQuery) ([]queries.GetAllBookingsQueryResponse, error)
	}
)

// Handlers groups the use cases passed to NewServer.
type Handlers struct {
	MenuCommands      MenuCommands
	MenuQueries       MenuQueries
	AddDraftItem      DraftItemAdder
	CancelDraft       DraftCanceller
	PlaceOrder        OrderPlacer
	ChangeOrderStatus OrderStatusChanger
	OrderQueries      OrderQueries
	BookingCommands   BookingCommands
	BookingQueries    BookingQueries
}

// Server implements ServerInterface on top of the application use cases.
// Handler errors are returned to echo; ErrorHandler turns them into responses.
type Server struct {
	h Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ListMenuItems handles GET /api/v1/menu.
func (s *Server) ListMenuItems(ctx echo.Context) error {
	items, err := s.h.MenuQueries.Handle(ctx.Request().Context(), queries.NewGetAllMenuItemsQuery())
	if err != nil {
		return err
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{ID: item.ID, Name: item.Name, Price: item.Price.String()}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewCreateMenuItemCommand(body.Name, body.Price)
	if err != nil {
		return err
	}

	item, err := s.h.MenuCommands.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, menuItemFromDomain(item))
}

// UpdateMenuItem handles PUT /api/v1/menu/{id}.
func (s *Server) UpdateMenuItem(ctx echo.Context, id int64) error {
	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, body.Name, body.Price)
	if err != nil {
		return err
	}

	item, err := s.h.MenuCommands.HandleUpdate(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, menuItemFromDomain(item))
}

// DeleteMenuItem handles DELETE /api/v1/menu/{id}.
func (s *Server) DeleteMenuItem(ctx echo.Context, id int64) error {
	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.MenuCommands.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetDraft handles GET /api/v1/draft.
func (s *Server) GetDraft(ctx echo.Context) error {
	return s.renderDraft(ctx)
}

// CancelDraft handles DELETE /api/v1/draft.
func (s *Server) CancelDraft(ctx echo.Context) error {
	if err := s.h.CancelDraft.Handle(ctx.Request().Context(), commands.NewCancelDraftCommand()); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddDraftItem handles POST /api/v1/draft/items.
func (s *Server) AddDraftItem(ctx echo.Context) error {
	var body NewDraftItem
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewAddDraftItemCommand(body.MenuItemID, body.Quantity)
	if err != nil {
		return err
	}

	if err = s.h.AddDraftItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderDraft(ctx)
}

// PlaceDraft handles POST /api/v1/draft/place.
func (s *Server) PlaceDraft(ctx echo.Context) error {
	var body PlaceDraft
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	placed, err := s.h.PlaceOrder.Handle(ctx.Request().Context(), commands.NewPlaceOrderCommand(body.TableNumber))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, orderFromDomain(placed))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.h.OrderQueries.HandleAll(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	o, err := s.findOrder(ctx, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orderFromResponse(o))
}

// GetOrderQRCode handles GET /api/v1/orders/{id}/qrcode.
func (s *Server) GetOrderQRCode(ctx echo.Context, id int64) error {
	o, err := s.findOrder(ctx, id)
	if err != nil {
		return err
	}

	png, err := EncodeCheckQRCode(o)
	if err != nil {
		return err
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}

// ChangePreparationStatus handles PUT /api/v1/orders/{id}/preparation-status.
func (s *Server) ChangePreparationStatus(ctx echo.Context, id int64) error {
	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewChangePreparationStatusCommand(id, body.Status)
	if err != nil {
		return err
	}

	updated, err := s.h.ChangeOrderStatus.HandlePreparation(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// ChangePaymentStatus handles PUT /api/v1/orders/{id}/payment-status.
func (s *Server) ChangePaymentStatus(ctx echo.Context, id int64) error {
	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewChangePaymentStatusCommand(id, body.Status)
	if err != nil {
		return err
	}

	updated, err := s.h.ChangeOrderStatus.HandlePayment(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// ListBookings handles GET /api/v1/bookings.
func (s *Server) ListBookings(ctx echo.Context) error {
	bookings, err := s.h.BookingQueries.Handle(ctx.Request().Context(), queries.NewGetAllBookingsQuery())
	if err != nil {
		return err
	}

	response := make([]Booking, len(bookings))
	for i, b := range bookings {
		response[i] = Booking{
			ID:           b.ID,
			TableNumber:  b.TableNumber,
			Capacity:     b.Capacity,
			CustomerName: b.CustomerName,
			BookedAt:     b.BookedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateBooking handles POST /api/v1/bookings.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var body NewBooking
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewCreateBookingCommand(body.TableNumber, body.Capacity, body.CustomerName)
	if err != nil {
		return err
	}

	created, err := s.h.BookingCommands.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, bookingFromDomain(created))
}

// UpdateBooking handles PUT /api/v1/bookings/{id}.
func (s *Server) UpdateBooking(ctx echo.Context, id int64) error {
	var body NewBooking
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewUpdateBookingCommand(id, body.TableNumber, body.Capacity, body.CustomerName)
	if err != nil {
		return err
	}

	updated, err := s.h.BookingCommands.HandleUpdate(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bookingFromDomain(updated))
}

// DeleteBooking handles DELETE /api/v1/bookings/{id}.
func (s *Server) DeleteBooking(ctx echo.Context, id int64) error {
	cmd, err := commands.NewDeleteBookingCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.BookingCommands.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) renderDraft(ctx echo.Context) error {
	draft, err := s.h.OrderQueries.HandleDraft(ctx.Request().Context(), queries.NewGetDraftQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Draft{
		Items: lineItemsFromResponse(draft.Items),
		Total: draft.Total.String(),
	})
}

func (s *Server) findOrder(ctx echo.Context, id int64) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return s.h.OrderQueries.HandleOne(ctx.Request().Context(), query)
}

func invalidBody(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
}
