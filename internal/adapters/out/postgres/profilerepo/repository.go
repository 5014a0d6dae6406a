package profilerepo

import (
	"context"

	"school/internal/adapters/out/postgres/dberr"
	"school/internal/adapters/out/postgres/txctx"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/profile"
	"school/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProfileRepository implements ports.ProfileRepository using GORM.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository uses the transaction bound to ctx when there is one.
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByID retrieves a profile by ID.
func (r *GormProfileRepository) FindByID(ctx context.Context, id kernel.ID) (*profile.Profile, error) {
	var dto ProfileDTO
	if err := txctx.DB(ctx, r.db).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, dberr.NotFound(err, profile.EntityKind, id)
	}
	return toDomain(dto)
}

// Save inserts a transient profile or updates an existing one.
func (r *GormProfileRepository) Save(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(p)
	db := txctx.DB(ctx, r.db)
	if p.ID().IsTransient() {
		if err := db.Create(&dto).Error; err != nil {
			return nil, dberr.Translate(err, profile.EntityKind, p.ID())
		}
		return toDomain(dto)
	}

	result := db.Model(&ProfileDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return nil, dberr.Translate(result.Error, profile.EntityKind, p.ID())
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError(profile.EntityKind, p.ID())
	}
	return toDomain(dto)
}

// Restore writes the snapshot back under its ID.
func (r *GormProfileRepository) Restore(ctx context.Context, p *profile.Profile) error {
	dto := fromDomain(p)
	err := txctx.DB(ctx, r.db).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
	return dberr.Translate(err, profile.EntityKind, p.ID())
}

// Delete removes the profile. The store keeps profiles that are still
// referenced and a business rule error is returned.
func (r *GormProfileRepository) Delete(ctx context.Context, id kernel.ID) error {
	err := txctx.DB(ctx, r.db).Delete(&ProfileDTO{}, id.Int64()).Error
	return dberr.Translate(err, profile.EntityKind, id)
}

// referencingTables hold a profile_id column restricted to profiles.id.
var referencingTables = []string{"authority_persons", "students"}

// CountReferences returns how many authority persons and students use the profile.
func (r *GormProfileRepository) CountReferences(ctx context.Context, profileID kernel.ID) (int64, error) {
	db := txctx.DB(ctx, r.db)
	var total int64
	for _, table := range referencingTables {
		var count int64
		if err := db.Table(table).Where("profile_id = ?", profileID.Int64()).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}
