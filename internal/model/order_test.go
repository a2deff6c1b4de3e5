package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusValid(t *testing.T) {
	for _, status := range OrderStatuses() {
		assert.True(t, status.Valid(), "expected %q to be recognized", status)
	}
	assert.False(t, OrderStatus("bogus").Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("Draft").Valid(), "status values are case-sensitive")
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	for _, status := range []OrderStatus{OrderStatusDraft, OrderStatusSubmitted, OrderStatusConfirmed, OrderStatusShipped} {
		assert.False(t, status.Terminal(), "expected %q to be non-terminal", status)
	}
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"draft to submitted", OrderStatusDraft, OrderStatusSubmitted, true},
		{"draft skips to delivered", OrderStatusDraft, OrderStatusDelivered, true},
		{"submitted to confirmed", OrderStatusSubmitted, OrderStatusConfirmed, true},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"no backward step", OrderStatusDelivered, OrderStatusShipped, false},
		{"no self transition", OrderStatusConfirmed, OrderStatusConfirmed, false},
		{"cancel from draft", OrderStatusDraft, OrderStatusCancelled, true},
		{"cancel from shipped", OrderStatusShipped, OrderStatusCancelled, true},
		{"no cancel after delivery", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusDraft, false},
		{"unknown source", OrderStatus("bogus"), OrderStatusDraft, false},
		{"unknown target", OrderStatusDraft, OrderStatus("bogus"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestLineTotal(t *testing.T) {
	products := []OrderProduct{
		{ID: "p1", Name: "Widget", Quantity: 500, Price: 12.5},
		{ID: "p2", Name: "No price", Quantity: 10},
		{ID: "p3", Name: "No quantity", Price: 99.99},
	}
	require.Equal(t, 6250.0, LineTotal(products))
	require.Zero(t, LineTotal(nil))
}
