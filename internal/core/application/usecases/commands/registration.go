package commands

import (
	"errors"

	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
	"school/internal/core/domain/model/profile"
	"school/internal/core/domain/model/student"
	"school/internal/pkg/guard"
)

var ErrRegistrationIsNotConstructed = errors.New(
	"Registration must be created via NewAuthorityPersonRegistration or NewStudentRegistration",
)

// Registration is the input of the create-with-profile macros: the entity
// and the profile created before it.
//
// Example:
//
//	p, _ := person.NewAuthorityPerson(kernel.NoID, kernel.NoID, "Dr.", "Ada", "Lovelace", kernel.Female)
//	reg, err := NewAuthorityPersonRegistration(p, nil)
//	if err != nil {
//	    return err
//	}
//	c := macro.CreateContext(ctx, command.InputOf(reg))
type Registration[E entity] struct {
	entity  E
	profile *profile.Profile

	guard guard.ConstructorGuard
}

// NewAuthorityPersonRegistration registers p with pr. A nil pr registers an
// empty principal profile.
func NewAuthorityPersonRegistration(
	p *person.AuthorityPerson,
	pr *profile.Profile,
) (Registration[*person.AuthorityPerson], error) {
	return newRegistration(p, pr, profile.Principal)
}

// NewStudentRegistration registers s with pr. A nil pr registers an empty
// student profile.
func NewStudentRegistration(s *student.Student, pr *profile.Profile) (Registration[*student.Student], error) {
	return newRegistration(s, pr, profile.Student)
}

func newRegistration[E entity](e E, pr *profile.Profile, kind profile.Kind) (Registration[E], error) {
	if pr == nil {
		var err error
		if pr, err = profile.NewProfile(kernel.NoID, kind, "", "", "", ""); err != nil {
			return Registration[E]{}, err
		}
	}

	if err := errors.Join(e.Validate(), pr.Validate()); err != nil {
		return Registration[E]{}, err
	}

	return Registration[E]{
		entity:  e,
		profile: pr,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the registration was created through its constructor.
func (r Registration[E]) Validate() error {
	return r.guard.Validate(ErrRegistrationIsNotConstructed)
}

func (r Registration[E]) Entity() E {
	return r.entity
}

func (r Registration[E]) Profile() *profile.Profile {
	return r.profile
}
