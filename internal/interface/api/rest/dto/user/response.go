package user

import (
	"time"
)

type (
	User struct {
		ID               uint64     `json:"id"`
		Firstname        *string    `json:"firstname"`
		Lastname         *string    `json:"lastname"`
		Nickname         *string    `json:"nickname"`
		Fullname         *string    `json:"fullname"`
		Email            *string    `json:"email"`
		EmailVerified    bool       `json:"emailVerified"`
		Phone            *string    `json:"phone"`
		PhoneCountryCode *string    `json:"phoneCountryCode"`
		PhoneVerified    bool       `json:"phoneVerified"`
		Username         *string    `json:"username"`
		Gender           string     `json:"gender"`
		Birthdate        *time.Time `json:"birthdate"`
		IDCard           *string    `json:"idCard"`
		CreatedBy        string     `json:"createdBy"`
		UniqueBy         string     `json:"uniqueBy"`
		Deleted          bool       `json:"deleted"`
		DeletedAt        *time.Time `json:"deletedAt"`
		Ready            bool       `json:"ready"`
		ReadyAt          *time.Time `json:"readyAt"`
		Banned           bool       `json:"banned"`
		BannedAt         *time.Time `json:"bannedAt"`
		BannedReason     *string    `json:"bannedReason"`
		BannedBy         *uint64    `json:"bannedBy"`
	}
	Users []User
)
