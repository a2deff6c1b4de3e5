package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nurzhas/procurement-api/internal/model"
)

// OrderRepository is an in-memory order store. Appends and status updates run
// under the write lock so each order id is added exactly once and a status
// change is observed atomically with its updated_at bump.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []model.Order
	index  map[string]int
}

func NewOrderRepository(seed []model.Order) (*OrderRepository, error) {
	r := &OrderRepository{index: make(map[string]int, len(seed))}
	for _, o := range seed {
		if err := r.Append(context.Background(), o); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *OrderRepository) Append(ctx context.Context, order model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[order.ID]; exists {
		return fmt.Errorf("%w: order %s", ErrDuplicateID, order.ID)
	}
	r.orders = append(r.orders, order)
	r.index[order.ID] = len(r.orders) - 1
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	order := cloneOrder(r.orders[pos])
	return &order, nil
}

// List returns a snapshot of all orders in insertion order.
func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = cloneOrder(o)
	}
	return out, nil
}

// UpdateStatus sets the status and updated_at of an order in place and
// returns the updated record. Status validity is the caller's concern; the
// repository only guarantees atomicity.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, now time.Time) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	r.orders[pos].Status = status
	r.orders[pos].UpdatedAt = now
	order := cloneOrder(r.orders[pos])
	return &order, nil
}

// cloneOrder deep-copies the product slice so callers cannot mutate stored
// state through a returned record.
func cloneOrder(o model.Order) model.Order {
	products := make([]model.OrderProduct, len(o.Products))
	copy(products, o.Products)
	o.Products = products
	return o
}
