package actionlogrepo

import (
	"context"

	"school/internal/adapters/out/postgres/dberr"
	"school/internal/core/ports"

	"gorm.io/gorm"
)

const entityKind = "action log"

// GormActionLogRepository implements ports.ActionLogRepository using GORM.
// Records are written outside the action transaction so rolled back
// actions are audited too.
type GormActionLogRepository struct {
	db *gorm.DB
}

// NewGormActionLogRepository returns a repository writing to db.
func NewGormActionLogRepository(db *gorm.DB) *GormActionLogRepository {
	return &GormActionLogRepository{db: db}
}

// Append persists record.
func (r *GormActionLogRepository) Append(ctx context.Context, record ports.ActionRecord) error {
	dto := fromRecord(record)
	err := r.db.WithContext(ctx).Create(&dto).Error
	return dberr.Translate(err, entityKind, record.ID)
}

// ListByFacade returns the latest records of a facade, newest first.
func (r *GormActionLogRepository) ListByFacade(ctx context.Context, facade string, limit int) ([]ports.ActionRecord, error) {
	var dtos []ActionLogDTO
	err := r.db.WithContext(ctx).
		Where("facade = ?", facade).
		Order("started_at DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]ports.ActionRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toRecord(dto))
	}
	return records, nil
}
