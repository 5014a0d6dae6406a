package kernel

import (
	"fmt"
	"strings"

	"school/internal/pkg/errs"
)

// Gender of a person or student.
type Gender int

const (
	// UnknownGender catches uninitialized values.
	UnknownGender Gender = iota
	Male
	Female
)

func getGenderStrings() map[Gender]string {
	return map[Gender]string{
		UnknownGender: "UNKNOWN",
		Male:          "MALE",
		Female:        "FEMALE",
	}
}

// ParseGender converts the string form ("MALE", "female") to a Gender.
func ParseGender(s string) (Gender, error) {
	for g, str := range getGenderStrings() {
		if g != UnknownGender && strings.EqualFold(str, s) {
			return g, nil
		}
	}
	return UnknownGender, errs.NewValueIsInvalidErrorWithCause("gender", fmt.Errorf("%q is not a valid gender", s))
}

// Validate rejects UnknownGender and out of range values.
func (g Gender) Validate() error {
	if g != Male && g != Female {
		return errs.NewValueIsOutOfRangeError("gender", int(g), int(Male), int(Female))
	}
	return nil
}

// String implements fmt.Stringer.
func (g Gender) String() string {
	if str, ok := getGenderStrings()[g]; ok {
		return str
	}
	return getGenderStrings()[UnknownGender]
}
