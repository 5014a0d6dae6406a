// Package profilerepo persists profiles.
package profilerepo

import (
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/profile"
)

// ProfileDTO represents the database structure for persisting profiles.
type ProfileDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Kind     string `gorm:"type:varchar(16);not null;index"`
	Email    string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(32)"`
	Location string `gorm:"type:varchar(255)"`
	PhotoURL string `gorm:"type:varchar(512)"`
}

// TableName overrides GORM's default naming convention.
func (ProfileDTO) TableName() string {
	return "profiles"
}

func fromDomain(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:       p.ID().Int64(),
		Kind:     p.Kind().String(),
		Email:    p.Email(),
		Phone:    p.Phone(),
		Location: p.Location(),
		PhotoURL: p.PhotoURL(),
	}
}

func toDomain(dto ProfileDTO) (*profile.Profile, error) {
	kind, err := profile.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	return profile.NewProfile(kernel.ID(dto.ID), kind, dto.Email, dto.Phone, dto.Location, dto.PhotoURL)
}
