package kernel

import (
	"fmt"
	"strconv"

	"school/internal/pkg/errs"
)

// ID is the persistent identity of an entity. The zero value means the
// entity has not been persisted yet.
type ID int64

// NoID is the identity of a transient entity.
const NoID ID = 0

// NewID returns the identity v. Only positive values identify persisted entities.
func NewID(v int64) (ID, error) {
	id := ID(v)
	if err := id.Validate(); err != nil {
		return NoID, err
	}
	return id, nil
}

// ParseID parses a decimal identity, as found in URL paths.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return NoID, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(v)
}

// IsTransient reports whether the identity is not assigned yet.
func (id ID) IsTransient() bool {
	return id == NoID
}

// Validate checks that id identifies a persisted entity.
func (id ID) Validate() error {
	if id <= NoID {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

// ValidateOptional accepts NoID or a valid identity.
func (id ID) ValidateOptional() error {
	if id.IsTransient() {
		return nil
	}
	return id.Validate()
}

// Int64 returns the raw value.
func (id ID) Int64() int64 {
	return int64(id)
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
