// Package person provides the AuthorityPerson aggregate: staff members such
// as deans and principals. Every authority person owns exactly one profile.
package person

import (
	"errors"

	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/errs"
)

// EntityKind names authority persons in errors and audit records.
const EntityKind = "authority person"

var (
	ErrAuthorityPersonIsNotConstructed = errors.New(
		"AuthorityPerson must be created via NewAuthorityPerson constructor",
	)

	// ErrPersonManagesFaculty is the rule violated when deleting a dean.
	ErrPersonManagesFaculty = errors.New("authority person manages faculty")
)

// AuthorityPerson is a member of staff. ProfileID stays NoID until the
// profile is persisted.
type AuthorityPerson struct {
	id        kernel.ID
	profileID kernel.ID
	title     string
	firstName string
	lastName  string
	gender    kernel.Gender

	isConstructed bool
}

// NewAuthorityPerson creates an AuthorityPerson.
//
// Example:
//
//	p, err := person.NewAuthorityPerson(kernel.NoID, kernel.NoID, "Dean", "Ada", "Lovelace", kernel.Female)
func NewAuthorityPerson(
	id, profileID kernel.ID,
	title, firstName, lastName string,
	gender kernel.Gender,
) (*AuthorityPerson, error) {
	p := &AuthorityPerson{
		title:         title,
		isConstructed: true,
	}

	if err := errors.Join(
		id.ValidateOptional(),
		profileID.ValidateOptional(),
		p.setName(firstName, lastName),
		gender.Validate(),
	); err != nil {
		return nil, err
	}

	p.id = id
	p.profileID = profileID
	p.gender = gender
	return p, nil
}

// Validate ensures the person was created through NewAuthorityPerson.
func (p *AuthorityPerson) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrAuthorityPersonIsNotConstructed
	}
	return nil
}

func (p *AuthorityPerson) ID() kernel.ID         { return p.id }
func (p *AuthorityPerson) ProfileID() kernel.ID  { return p.profileID }
func (p *AuthorityPerson) Title() string         { return p.title }
func (p *AuthorityPerson) FirstName() string     { return p.firstName }
func (p *AuthorityPerson) LastName() string      { return p.lastName }
func (p *AuthorityPerson) Gender() kernel.Gender { return p.gender }

// FullName returns "First Last".
func (p *AuthorityPerson) FullName() string {
	return p.firstName + " " + p.lastName
}

// WithID returns a copy carrying id.
func (p *AuthorityPerson) WithID(id kernel.ID) *AuthorityPerson {
	cp := *p
	cp.id = id
	return &cp
}

// WithProfileID returns a copy linked to the profile profileID.
func (p *AuthorityPerson) WithProfileID(profileID kernel.ID) *AuthorityPerson {
	cp := *p
	cp.profileID = profileID
	return &cp
}

func (p *AuthorityPerson) setName(firstName, lastName string) error {
	var err error
	if firstName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("first name"))
	}
	if lastName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("last name"))
	}
	p.firstName = firstName
	p.lastName = lastName
	return err
}
