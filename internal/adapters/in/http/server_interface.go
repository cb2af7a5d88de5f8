package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists one method per operation of api/openapi.yaml.
type ServerInterface interface {
	GetHealth(ctx echo.Context) error

	ListMenuItems(ctx echo.Context) error
	CreateMenuItem(ctx echo.Context) error
	UpdateMenuItem(ctx echo.Context, id int64) error
	DeleteMenuItem(ctx echo.Context, id int64) error

	GetDraft(ctx echo.Context) error
	CancelDraft(ctx echo.Context) error
	AddDraftItem(ctx echo.Context) error
	PlaceDraft(ctx echo.Context) error

	ListOrders(ctx echo.Context) error
	GetOrder(ctx echo.Context, id int64) error
	GetOrderQRCode(ctx echo.Context, id int64) error
	ChangePreparationStatus(ctx echo.Context, id int64) error
	ChangePaymentStatus(ctx echo.Context, id int64) error

	ListBookings(ctx echo.Context) error
	CreateBooking(ctx echo.Context) error
	UpdateBooking(ctx echo.Context, id int64) error
	DeleteBooking(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) UpdateMenuItem(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateMenuItem(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteMenuItem(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteMenuItem(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOrderQRCode(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderQRCode(ctx, id)
}

func (w *ServerInterfaceWrapper) ChangePreparationStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangePreparationStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) ChangePaymentStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangePaymentStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateBooking(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateBooking(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteBooking(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteBooking(ctx, id)
}

func bindID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation of si to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/health", si.GetHealth)

	router.GET("/api/v1/menu", si.ListMenuItems)
	router.POST("/api/v1/menu", si.CreateMenuItem)
	router.PUT("/api/v1/menu/:id", w.UpdateMenuItem)
	router.DELETE("/api/v1/menu/:id", w.DeleteMenuItem)

	router.GET("/api/v1/draft", si.GetDraft)
	router.DELETE("/api/v1/draft", si.CancelDraft)
	router.POST("/api/v1/draft/items", si.AddDraftItem)
	router.POST("/api/v1/draft/place", si.PlaceDraft)

	router.GET("/api/v1/orders", si.ListOrders)
	router.GET("/api/v1/orders/:id", w.GetOrder)
	router.GET("/api/v1/orders/:id/qrcode", w.GetOrderQRCode)
	router.PUT("/api/v1/orders/:id/preparation-status", w.ChangePreparationStatus)
	router.PUT("/api/v1/orders/:id/payment-status", w.ChangePaymentStatus)

	router.GET("/api/v1/bookings", si.ListBookings)
	router.POST("/api/v1/bookings", si.CreateBooking)
	router.PUT("/api/v1/bookings/:id", w.UpdateBooking)
	router.DELETE("/api/v1/bookings/:id", w.DeleteBooking)
}
