package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// OrderQueryHandler answers order and draft reads from memory.
//
// Example:
//
//	handler := NewOrderQueryHandler(registry, draft)
//	orders, _ := handler.HandleAll(ctx, NewGetAllOrdersQuery())
type OrderQueryHandler struct {
	registry *services.OrderRegistry
	draft    *services.DraftTicket
}

func NewOrderQueryHandler(registry *services.OrderRegistry, draft *services.DraftTicket) OrderQueryHandler {
	return OrderQueryHandler{registry: registry, draft: draft}
}

func (h OrderQueryHandler) HandleAll(_ context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, h.registry.Len())
	for o := range h.registry.List() {
		orders = append(orders, toOrderResponse(o))
	}
	return orders, nil
}

func (h OrderQueryHandler) HandleOne(_ context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.registry.Get(query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	return toOrderResponse(o), nil
}

func (h OrderQueryHandler) HandleDraft(_ context.Context, query GetDraftQuery) (DraftResponse, error) {
	if err := query.Validate(); err != nil {
		return DraftResponse{}, err
	}

	items, total := h.draft.Snapshot()
	return DraftResponse{
		Items: toLineItemResponses(items),
		Total: total,
	}, nil
}

// HandleBacklog walks one registry snapshot. Cancelled orders are not counted
// as unpaid.
func (h OrderQueryHandler) HandleBacklog(_ context.Context, query GetKitchenBacklogQuery) (KitchenBacklogResponse, error) {
	if err := query.Validate(); err != nil {
		return KitchenBacklogResponse{}, err
	}

	var backlog KitchenBacklogResponse
	for o := range h.registry.List() {
		switch o.PreparationStatus() {
		case order.Placed:
			backlog.Placed++
		case order.Preparing:
			backlog.Preparing++
		case order.Served:
			backlog.Served++
		case order.Cancelled:
			backlog.Cancelled++
			continue
		}

		if o.PaymentStatus() == order.Unpaid {
			backlog.Unpaid++
		}
	}
	return backlog, nil
}
