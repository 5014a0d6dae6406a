package profile

import (
	"fmt"
	"strings"

	"school/internal/pkg/errs"
)

// Kind tells which role a profile belongs to.
type Kind int

const (
	UnknownKind Kind = iota
	Principal
	Student
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "UNKNOWN",
		Principal:   "PRINCIPAL",
		Student:     "STUDENT",
	}
}

// ParseKind converts a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != UnknownKind && strings.EqualFold(str, s) {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("profile kind", fmt.Errorf("%q is not a valid kind", s))
}

func (k Kind) Validate() error {
	if k != Principal && k != Student {
		return errs.NewValueIsInvalidErrorWithCause("profile kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return getKindStrings()[UnknownKind]
}
