package user

import (
	"time"
)

type (
	ID uint64

	// UniqueField names the column a record is keyed by. Chosen once at
	// creation and immutable afterwards.
	UniqueField string

	Gender string

	User struct {
		ID               ID
		Firstname        *string
		Lastname         *string
		Nickname         *string
		Fullname         *string
		Email            *string
		EmailVerified    bool
		Phone            *string
		PhoneCountryCode *string
		PhoneVerified    bool
		Username         *string
		Gender           Gender
		Birthdate        *time.Time
		IDCard           *string

		CreatedBy string
		UniqueBy  UniqueField

		Deleted   bool
		DeletedAt *time.Time
		Ready     bool
		ReadyAt   *time.Time
		Banned    bool
		BannedAt  *time.Time

		BannedReason *string
		BannedBy     *ID
	}
	Users []*User
)

const (
	UniqueByEmail    UniqueField = "email"
	UniqueByPhone    UniqueField = "phone"
	UniqueByUsername UniqueField = "username"
)

const (
	GenderUnknown        Gender = "UNKNOWN"
	GenderMale           Gender = "MALE"
	GenderFemale         Gender = "FEMALE"
	GenderRatherNotToSay Gender = "RATHER_NOT_TO_SAY"
)

func (f UniqueField) Valid() bool {
	switch f {
	case UniqueByEmail, UniqueByPhone, UniqueByUsername:
		return true
	}
	return false
}

func (g Gender) Valid() bool {
	switch g {
	case GenderUnknown, GenderMale, GenderFemale, GenderRatherNotToSay:
		return true
	}
	return false
}

// UniqueValue returns the value of the record's designated unique field.
func (u *User) UniqueValue() string {
	var v *string
	switch u.UniqueBy {
	case UniqueByEmail:
		v = u.Email
	case UniqueByPhone:
		v = u.Phone
	case UniqueByUsername:
		v = u.Username
	}
	if v == nil {
		return ""
	}
	return *v
}

// Patch is the set of fields an update may touch. Nil means "not supplied";
// absent fields are left untouched by the generated statement.
type Patch struct {
	Firstname        *string
	Lastname         *string
	Nickname         *string
	Fullname         *string
	Email            *string
	EmailVerified    *bool
	Phone            *string
	PhoneCountryCode *string
	PhoneVerified    *bool
	Username         *string
	Gender           *Gender
	Birthdate        *time.Time
	IDCard           *string
	Deleted          *bool
	Ready            *bool
	Banned           *bool
	BannedReason     *string
	BannedBy         *ID
}

// FieldValue returns the patch value for one of the unique-candidate fields.
func (p Patch) FieldValue(f UniqueField) *string {
	switch f {
	case UniqueByEmail:
		return p.Email
	case UniqueByPhone:
		return p.Phone
	case UniqueByUsername:
		return p.Username
	}
	return nil
}

// Empty reports whether the patch carries no field at all.
func (p Patch) Empty() bool {
	return p.Firstname == nil && p.Lastname == nil && p.Nickname == nil &&
		p.Fullname == nil && p.Email == nil && p.EmailVerified == nil &&
		p.Phone == nil && p.PhoneCountryCode == nil && p.PhoneVerified == nil &&
		p.Username == nil && p.Gender == nil && p.Birthdate == nil &&
		p.IDCard == nil && p.Deleted == nil && p.Ready == nil &&
		p.Banned == nil && p.BannedReason == nil && p.BannedBy == nil
}
