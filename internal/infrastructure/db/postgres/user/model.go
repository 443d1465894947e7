package user

import (
	"time"
)

// User mirrors the users table. The five flag columns are stored as
// smallint 0/1 and coerced to booleans by the mapper.
type (
	User struct {
		ID               uint64
		Firstname        *string
		Lastname         *string
		Nickname         *string
		Fullname         *string
		Email            *string
		EmailVerified    int16
		Phone            *string
		PhoneCountryCode *string
		PhoneVerified    int16
		Username         *string
		Gender           string
		Birthdate        *time.Time
		IDCard           *string

		CreatedBy string
		UniqueBy  string

		Deleted   int16
		DeletedAt *time.Time
		Ready     int16
		ReadyAt   *time.Time
		Banned    int16
		BannedAt  *time.Time

		BannedReason *string
		BannedBy     *uint64
	}
	Users []*User
)
