// Package personrepo persists authority persons.
package personrepo

import (
	"school/internal/adapters/out/postgres/profilerepo"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
)

// AuthorityPersonDTO represents the database structure for persisting
// authority persons. The profile reference is nullable.
type AuthorityPersonDTO struct {
	ID        int64                   `gorm:"primaryKey;autoIncrement"`
	ProfileID *int64                  `gorm:"uniqueIndex"`
	Profile   *profilerepo.ProfileDTO `gorm:"foreignKey:ProfileID;constraint:OnDelete:RESTRICT"`
	Title     string                  `gorm:"type:varchar(64)"`
	FirstName string                  `gorm:"type:varchar(255);not null"`
	LastName  string                  `gorm:"type:varchar(255);not null"`
	Gender    string                  `gorm:"type:varchar(16);not null"`
}

// TableName overrides GORM's default naming convention.
func (AuthorityPersonDTO) TableName() string {
	return "authority_persons"
}

func fromDomain(p *person.AuthorityPerson) AuthorityPersonDTO {
	return AuthorityPersonDTO{
		ID:        p.ID().Int64(),
		ProfileID: optionalID(p.ProfileID()),
		Title:     p.Title(),
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
		Gender:    p.Gender().String(),
	}
}

func toDomain(dto AuthorityPersonDTO) (*person.AuthorityPerson, error) {
	gender, err := kernel.ParseGender(dto.Gender)
	if err != nil {
		return nil, err
	}
	return person.NewAuthorityPerson(
		kernel.ID(dto.ID), requiredID(dto.ProfileID), dto.Title, dto.FirstName, dto.LastName, gender)
}

func optionalID(id kernel.ID) *int64 {
	if id.IsTransient() {
		return nil
	}
	v := id.Int64()
	return &v
}

func requiredID(v *int64) kernel.ID {
	if v == nil {
		return kernel.NoID
	}
	return kernel.ID(*v)
}
