package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/nurzhas/procurement-api/internal/model"
)

// SupplierRepository is an in-memory supplier store. Records are kept in
// insertion order; reads return copies so callers never observe a write in
// progress.
type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers []model.Supplier
	index     map[string]int
}

func NewSupplierRepository(seed []model.Supplier) (*SupplierRepository, error) {
	r := &SupplierRepository{index: make(map[string]int, len(seed))}
	for _, s := range seed {
		if err := r.Add(context.Background(), s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *SupplierRepository) Add(ctx context.Context, supplier model.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[supplier.ID]; exists {
		return fmt.Errorf("%w: supplier %s", ErrDuplicateID, supplier.ID)
	}
	r.suppliers = append(r.suppliers, supplier)
	r.index[supplier.ID] = len(r.suppliers) - 1
	return nil
}

func (r *SupplierRepository) Get(ctx context.Context, id string) (*model.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	supplier := r.suppliers[pos]
	return &supplier, nil
}

// List returns a snapshot of all suppliers in insertion order.
func (r *SupplierRepository) List(ctx context.Context) ([]model.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Supplier, len(r.suppliers))
	copy(out, r.suppliers)
	return out, nil
}
