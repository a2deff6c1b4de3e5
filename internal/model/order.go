package model

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusSubmitted OrderStatus = "submitted"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderStatusRank orders the forward lifecycle. Cancelled sits outside the
// chain and is reachable from any non-terminal state.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusDraft:     0,
	OrderStatusSubmitted: 1,
	OrderStatusConfirmed: 2,
	OrderStatusShipped:   3,
	OrderStatusDelivered: 4,
}

// OrderStatuses returns the six recognized statuses in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusDraft,
		OrderStatusSubmitted,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// OrderStatusNames returns the recognized status values joined for error
// messages.
func OrderStatusNames() string {
	statuses := OrderStatuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Valid reports whether the value is one of the six recognized statuses.
func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := orderStatusRank[s]
	return ok
}

// Terminal reports whether no further transition is defined from the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is a forward step in the lifecycle:
// draft → submitted → confirmed → shipped → delivered, with cancelled
// reachable from any non-terminal state. The status-update endpoint does not
// consult this (see OrderService.UpdateStatus); it documents the intended
// graph.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() || s.Terminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return orderStatusRank[next] > orderStatusRank[s]
}

// OrderProduct is a single order line. Quantity and price default to zero
// when the caller omits them; they are never a validation error.
type OrderProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID                string         `json:"id"`
	SupplierID        string         `json:"supplier_id"`
	SupplierName      string         `json:"supplier_name"`
	Status            OrderStatus    `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	Products          []OrderProduct `json:"products"`
	EstimatedDelivery time.Time      `json:"estimated_delivery"`
	// TotalAmount is computed once at creation and never recomputed.
	TotalAmount  float64 `json:"total_amount"`
	PaymentTerms string  `json:"payment_terms"`
	Notes        string  `json:"notes"`
}

// OrderBook is a snapshot of all orders at export time.
type OrderBook struct {
	GeneratedAt time.Time
	Orders      []Order
}

// LineTotal returns the sum of price×quantity over the products.
func LineTotal(products []OrderProduct) float64 {
	total := 0.0
	for _, p := range products {
		total += p.Price * float64(p.Quantity)
	}
	return total
}
