package profile

import (
	"errors"
	"fmt"
	"net/mail"

	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/errs"
)

// EntityKind names profiles in errors and audit records.
const EntityKind = "profile"

var (
	// ErrProfileIsNotConstructed is returned when a Profile was not created through NewProfile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

	// ErrProfileIsReferenced is the rule violated when deleting a profile a person or a student still uses.
	ErrProfileIsReferenced = errors.New("profile is referenced")
)

// Profile is the personal record behind an authority person or a student:
// contact data and photo. A person and its profile are created and deleted
// together.
//
// Profile invariants:
//   - Kind is Principal or Student
//   - Email, when present, is a valid address
//   - Identity is NoID until persisted
type Profile struct {
	id       kernel.ID
	kind     Kind
	email    string
	phone    string
	location string
	photoURL string

	isConstructed bool
}

// NewProfile creates a Profile. Pass kernel.NoID for a profile that was not
// persisted yet.
//
// Example:
//
//	p, err := profile.NewProfile(kernel.NoID, profile.Principal, "dean@school.edu", "+100", "Main campus", "")
//	if err != nil {
//	    return err
//	}
func NewProfile(id kernel.ID, kind Kind, email, phone, location, photoURL string) (*Profile, error) {
	p := &Profile{
		phone:         phone,
		location:      location,
		photoURL:      photoURL,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setKind(kind),
		p.setEmail(email),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Profile was created through NewProfile.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// IsEqual compares profiles by identity.
func (p *Profile) IsEqual(other *Profile) bool {
	return other != nil && !p.id.IsTransient() && p.id == other.id
}

func (p *Profile) ID() kernel.ID    { return p.id }
func (p *Profile) Kind() Kind       { return p.kind }
func (p *Profile) Email() string    { return p.email }
func (p *Profile) Phone() string    { return p.phone }
func (p *Profile) Location() string { return p.location }
func (p *Profile) PhotoURL() string { return p.photoURL }

// WithID returns a copy of the profile carrying id.
func (p *Profile) WithID(id kernel.ID) *Profile {
	cp := *p
	cp.id = id
	return &cp
}

// CheckDeletable returns a business rule error while a person or a student
// refers to the profile.
func (p *Profile) CheckDeletable(references int64) error {
	if references > 0 {
		return errs.NewBusinessRuleError(ErrProfileIsReferenced, EntityKind, p.id)
	}
	return nil
}

func (p *Profile) setID(id kernel.ID) error {
	if err := id.ValidateOptional(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	p.kind = kind
	return nil
}

func (p *Profile) setEmail(email string) error {
	if email == "" {
		return nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q: %w", email, err))
	}
	p.email = addr.Address
	return nil
}
