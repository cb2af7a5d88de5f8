package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/booking"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type MenuItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type NewMenuItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type LineItem struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Subtotal   string `json:"subtotal"`
}

type Draft struct {
	Items []LineItem `json:"items"`
	Total string     `json:"total"`
}

type NewDraftItem struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type PlaceDraft struct {
	TableNumber int `json:"table_number"`
}

type Order struct {
	ID                int64      `json:"id"`
	TableNumber       int        `json:"table_number"`
	CreatedAt         time.Time  `json:"created_at"`
	Items             []LineItem `json:"items"`
	Total             string     `json:"total"`
	PreparationStatus string     `json:"preparation_status"`
	PaymentStatus     string     `json:"payment_status"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type Booking struct {
	ID           int64     `json:"id"`
	TableNumber  int       `json:"table_number"`
	Capacity     int       `json:"capacity"`
	CustomerName string    `json:"customer_name"`
	BookedAt     time.Time `json:"booked_at"`
}

type NewBooking struct {
	TableNumber  int    `json:"table_number"`
	Capacity     int    `json:"capacity"`
	CustomerName string `json:"customer_name"`
}

func menuItemFromDomain(item menu.Item) MenuItem {
	return MenuItem{ID: item.ID(), Name: item.Name(), Price: item.Price().String()}
}

func lineItemsFromResponse(items []queries.LineItemResponse) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, l := range items {
		out = append(out, LineItem{
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice.String(),
			Subtotal:   l.Subtotal.String(),
		})
	}
	return out
}

func orderFromResponse(o queries.OrderResponse) Order {
	return Order{
		ID:                o.ID,
		TableNumber:       o.TableNumber,
		CreatedAt:         o.CreatedAt,
		Items:             lineItemsFromResponse(o.Items),
		Total:             o.Total.String(),
		PreparationStatus: o.PreparationStatus,
		PaymentStatus:     o.PaymentStatus,
	}
}

func orderFromDomain(o *order.Order) Order {
	items := o.Items()
	lines := make([]LineItem, 0, len(items))
	for _, l := range items {
		lines = append(lines, LineItem{
			MenuItemID: l.MenuItemID(),
			Name:       l.Name(),
			Quantity:   l.Quantity(),
			UnitPrice:  l.UnitPrice().String(),
			Subtotal:   l.Subtotal().String(),
		})
	}

	return Order{
		ID:                o.ID(),
		TableNumber:       o.TableNumber(),
		CreatedAt:         o.CreatedAt(),
		Items:             lines,
		Total:             o.Total().String(),
		PreparationStatus: o.PreparationStatus().String(),
		PaymentStatus:     o.PaymentStatus().String(),
	}
}

func bookingFromDomain(b *booking.TableBooking) Booking {
	return Booking{
		ID:           b.ID(),
		TableNumber:  b.TableNumber(),
		Capacity:     b.Capacity(),
		CustomerName: b.CustomerName(),
		BookedAt:     b.BookedAt(),
	}
}
