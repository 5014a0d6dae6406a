package grouprepo

import (
	"context"

	"school/internal/adapters/out/postgres/dberr"
	"school/internal/adapters/out/postgres/txctx"
	"school/internal/core/domain/model/group"
	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStudentsGroupRepository implements ports.StudentsGroupRepository using GORM.
type GormStudentsGroupRepository struct {
	db *gorm.DB
}

// NewGormStudentsGroupRepository uses the transaction bound to ctx when there is one.
func NewGormStudentsGroupRepository(db *gorm.DB) *GormStudentsGroupRepository {
	return &GormStudentsGroupRepository{db: db}
}

// FindByID retrieves a students group by ID.
func (r *GormStudentsGroupRepository) FindByID(ctx context.Context, id kernel.ID) (*group.StudentsGroup, error) {
	var dto StudentsGroupDTO
	if err := txctx.DB(ctx, r.db).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, dberr.NotFound(err, group.EntityKind, id)
	}
	return toDomain(dto)
}

// Save inserts a transient group or updates an existing one.
func (r *GormStudentsGroupRepository) Save(ctx context.Context, p *group.StudentsGroup) (*group.StudentsGroup, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(p)
	db := txctx.DB(ctx, r.db)
	if p.ID().IsTransient() {
		if err := db.Create(&dto).Error; err != nil {
			return nil, dberr.Translate(err, group.EntityKind, p.ID())
		}
		return toDomain(dto)
	}

	result := db.Model(&StudentsGroupDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return nil, dberr.Translate(result.Error, group.EntityKind, p.ID())
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError(group.EntityKind, p.ID())
	}
	return toDomain(dto)
}

// Restore writes the snapshot back under its ID.
func (r *GormStudentsGroupRepository) Restore(ctx context.Context, p *group.StudentsGroup) error {
	dto := fromDomain(p)
	err := txctx.DB(ctx, r.db).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
	return dberr.Translate(err, group.EntityKind, p.ID())
}

// Delete removes the group.
func (r *GormStudentsGroupRepository) Delete(ctx context.Context, id kernel.ID) error {
	err := txctx.DB(ctx, r.db).Delete(&StudentsGroupDTO{}, id.Int64()).Error
	return dberr.Translate(err, group.EntityKind, id)
}
