package legrepo

import (
	"context"
	"errors"
	"fmt"

	"parcels/internal/core/domain/model/leg"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the SQLSTATE Postgres reports for a duplicate key.
const uniqueViolation = "23505"

var _ ports.LegRepository = (*GormLegRepository)(nil)

// GormLegRepository implements ports.LegRepository using GORM.
type GormLegRepository struct {
	db *gorm.DB
}

// NewGormLegRepository creates a leg repository over db, which may be a
// transaction.
func NewGormLegRepository(db *gorm.DB) *GormLegRepository {
	return &GormLegRepository{db: db}
}

// Add inserts a leg. A taken ID yields *errs.ObjectAlreadyExistsError.
func (r *GormLegRepository) Add(ctx context.Context, l *leg.Leg) error {
	if err := l.Validate(); err != nil {
		return err
	}

	dto := fromDomain(l)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsError("leg", l.ID())
		}
		return err
	}
	return nil
}

// LoadLegs returns every stored leg in insertion order.
func (r *GormLegRepository) LoadLegs(ctx context.Context) ([]*leg.Leg, error) {
	var dtos []LegDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	legs := make([]*leg.Leg, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("leg %s: %w", dto.ID, err)
		}
		legs = append(legs, l)
	}
	return legs, nil
}

// Count returns the number of stored legs.
func (r *GormLegRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&LegDTO{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
