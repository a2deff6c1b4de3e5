package repository

import (
	"context"
	"sync"

	"github.com/nurzhas/procurement-api/internal/model"
)

// NegotiationRepository logs negotiation artifacts as they are produced.
type NegotiationRepository struct {
	mu           sync.RWMutex
	negotiations []model.Negotiation
}

func NewNegotiationRepository() *NegotiationRepository {
	return &NegotiationRepository{}
}

func (r *NegotiationRepository) Append(ctx context.Context, n model.Negotiation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.negotiations = append(r.negotiations, n)
	return nil
}

// ListBySupplier returns the logged artifacts for one supplier, oldest first.
func (r *NegotiationRepository) ListBySupplier(ctx context.Context, supplierID string) ([]model.Negotiation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Negotiation
	for _, n := range r.negotiations {
		if n.SupplierID == supplierID {
			out = append(out, n)
		}
	}
	return out, nil
}
