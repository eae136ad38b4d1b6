// Package parcelrepo keeps parcels in process memory. Parcels live for the
// lifetime of the process and are lost on restart.
package parcelrepo

import (
	"context"
	"sort"
	"sync"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

var _ ports.ParcelRepository = (*Repository)(nil)

// Repository is the parcel registry. The map is guarded by an RWMutex;
// each parcel guards its own history, so lookups never block on event appends
// of other parcels.
type Repository struct {
	mu      sync.RWMutex
	parcels map[string]*parcel.Parcel
}

// NewRepository creates an empty registry.
func NewRepository() *Repository {
	return &Repository{
		parcels: make(map[string]*parcel.Parcel),
	}
}

// Add inserts a parcel. The check for an existing ID and the insert happen
// under one write lock.
func (r *Repository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parcels[id]; ok {
		return errs.NewObjectAlreadyExistsError("parcel", id)
	}
	r.parcels[id] = aggregate
	return nil
}

// Get returns the parcel or *errs.ObjectNotFoundError.
func (r *Repository) Get(ctx context.Context, id kernel.ParcelID) (*parcel.Parcel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	p, ok := r.parcels[id.String()]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("parcel", id.String())
	}
	return p, nil
}

// GetAllAwaitingLeg scans every parcel and returns those whose next expected
// leg is legID, sorted by ID.
func (r *Repository) GetAllAwaitingLeg(ctx context.Context, legID string) ([]*parcel.Parcel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*parcel.Parcel, 0)
	for _, p := range r.snapshot() {
		if p.AwaitsLeg(legID) {
			result = append(result, p)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID().String() < result[j].ID().String()
	})
	return result, nil
}

// CountAwaitingByLeg groups the parcels that still expect a departure by
// their next leg.
func (r *Repository) CountAwaitingByLeg(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, p := range r.snapshot() {
		if next, ok := p.NextExpectedLeg(); ok {
			counts[next]++
		}
	}
	return counts, nil
}

// Len returns the number of registered parcels.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.parcels)
}

// snapshot copies the parcel pointers so scans do not hold the map lock while
// taking per-parcel locks.
func (r *Repository) snapshot() []*parcel.Parcel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*parcel.Parcel, 0, len(r.parcels))
	for _, p := range r.parcels {
		all = append(all, p)
	}
	return all
}
