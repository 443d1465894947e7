package user

import (
	"fmt"
)

// ConflictError reports that another record already holds the requested
// unique-field value. It carries the identifying fields of the conflicting
// record so the caller can echo them back.
type ConflictError struct {
	ID       ID
	Email    *string
	Phone    *string
	Username *string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("unique value already taken by user %d", e.ID)
}

// UniqueImmutableError reports an attempt to change the value of the field
// the record is keyed by.
type UniqueImmutableError struct {
	Unique  UniqueField
	Value   string // the stored value
	Current string // the value the request tried to set
}

func (e *UniqueImmutableError) Error() string {
	return fmt.Sprintf("unique field %q cannot be changed", e.Unique)
}
