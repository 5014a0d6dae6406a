package personrepo

import (
	"context"

	"school/internal/adapters/out/postgres/dberr"
	"school/internal/adapters/out/postgres/txctx"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
	"school/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAuthorityPersonRepository implements ports.AuthorityPersonRepository using GORM.
type GormAuthorityPersonRepository struct {
	db *gorm.DB
}

// NewGormAuthorityPersonRepository uses the transaction bound to ctx when there is one.
func NewGormAuthorityPersonRepository(db *gorm.DB) *GormAuthorityPersonRepository {
	return &GormAuthorityPersonRepository{db: db}
}

// FindByID retrieves an authority person by ID.
func (r *GormAuthorityPersonRepository) FindByID(ctx context.Context, id kernel.ID) (*person.AuthorityPerson, error) {
	var dto AuthorityPersonDTO
	if err := txctx.DB(ctx, r.db).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, dberr.NotFound(err, person.EntityKind, id)
	}
	return toDomain(dto)
}

// Save inserts a transient authority person or updates an existing one.
func (r *GormAuthorityPersonRepository) Save(ctx context.Context, p *person.AuthorityPerson) (*person.AuthorityPerson, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(p)
	db := txctx.DB(ctx, r.db)
	if p.ID().IsTransient() {
		if err := db.Create(&dto).Error; err != nil {
			return nil, dberr.Translate(err, person.EntityKind, p.ID())
		}
		return toDomain(dto)
	}

	result := db.Model(&AuthorityPersonDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return nil, dberr.Translate(result.Error, person.EntityKind, p.ID())
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError(person.EntityKind, p.ID())
	}
	return toDomain(dto)
}

// Restore writes the snapshot back under its ID.
func (r *GormAuthorityPersonRepository) Restore(ctx context.Context, p *person.AuthorityPerson) error {
	dto := fromDomain(p)
	err := txctx.DB(ctx, r.db).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
	return dberr.Translate(err, person.EntityKind, p.ID())
}

// Delete removes the authority person. Deans are kept by the faculty
// foreign key and a business rule error is returned.
func (r *GormAuthorityPersonRepository) Delete(ctx context.Context, id kernel.ID) error {
	err := txctx.DB(ctx, r.db).Delete(&AuthorityPersonDTO{}, id.Int64()).Error
	return dberr.Translate(err, person.EntityKind, id)
}
