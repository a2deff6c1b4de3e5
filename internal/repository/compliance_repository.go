package repository

import (
	"context"
	"sync"

	"github.com/nurzhas/procurement-api/internal/model"
)

// ComplianceRepository holds the static compliance reference data.
type ComplianceRepository struct {
	mu           sync.RWMutex
	requirements []model.ComplianceRequirement
}

func NewComplianceRepository(seed []model.ComplianceRequirement) *ComplianceRepository {
	requirements := make([]model.ComplianceRequirement, len(seed))
	copy(requirements, seed)
	return &ComplianceRepository{requirements: requirements}
}

// List returns a snapshot of all requirements in insertion order.
func (r *ComplianceRepository) List(ctx context.Context) ([]model.ComplianceRequirement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ComplianceRequirement, len(r.requirements))
	copy(out, r.requirements)
	return out, nil
}
