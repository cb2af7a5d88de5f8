package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrGetDraftQueryIsNotConstructed = errors.New(
		"GetDraftQuery must be created via NewGetDraftQuery constructor",
	)
)

// GetAllOrdersQuery lists every committed order in placement order.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetOrderQuery fetches one committed order.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidError("order id")
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// GetDraftQuery returns the ticket under construction.
type GetDraftQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDraftQuery() GetDraftQuery {
	return GetDraftQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDraftQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftQueryIsNotConstructed)
}

// LineItemResponse is a read-only copy of a line item.
type LineItemResponse struct {
	MenuItemID int64
	Name       string
	Quantity   int
	UnitPrice  kernel.Money
	Subtotal   kernel.Money
}

type OrderResponse struct {
	ID                int64
	TableNumber       int
	CreatedAt         time.Time
	Items             []LineItemResponse
	Total             kernel.Money
	PreparationStatus string
	PaymentStatus     string
}

type DraftResponse struct {
	Items []LineItemResponse
	Total kernel.Money
}

func toLineItemResponses(items []order.LineItem) []LineItemResponse {
	resp := make([]LineItemResponse, 0, len(items))
	for _, l := range items {
		resp = append(resp, LineItemResponse{
			MenuItemID: l.MenuItemID(),
			Name:       l.Name(),
			Quantity:   l.Quantity(),
			UnitPrice:  l.UnitPrice(),
			Subtotal:   l.Subtotal(),
		})
	}
	return resp
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID(),
		TableNumber:       o.TableNumber(),
		CreatedAt:         o.CreatedAt(),
		Items:             toLineItemResponses(o.Items()),
		Total:             o.Total(),
		PreparationStatus: o.PreparationStatus().String(),
		PaymentStatus:     o.PaymentStatus().String(),
	}
}
