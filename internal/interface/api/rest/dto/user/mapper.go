package user

import (
	"errors"
	"time"

	domain "user-record-service/internal/domain/user"
)

func ToResponseUser(uDomain domain.User) User {
	var u = User{
		ID:               uint64(uDomain.ID),
		Firstname:        uDomain.Firstname,
		Lastname:         uDomain.Lastname,
		Nickname:         uDomain.Nickname,
		Fullname:         uDomain.Fullname,
		Email:            uDomain.Email,
		EmailVerified:    uDomain.EmailVerified,
		Phone:            uDomain.Phone,
		PhoneCountryCode: uDomain.PhoneCountryCode,
		PhoneVerified:    uDomain.PhoneVerified,
		Username:         uDomain.Username,
		Gender:           string(uDomain.Gender),
		Birthdate:        uDomain.Birthdate,
		IDCard:           uDomain.IDCard,
		CreatedBy:        uDomain.CreatedBy,
		UniqueBy:         string(uDomain.UniqueBy),
		Deleted:          uDomain.Deleted,
		DeletedAt:        uDomain.DeletedAt,
		Ready:            uDomain.Ready,
		ReadyAt:          uDomain.ReadyAt,
		Banned:           uDomain.Banned,
		BannedAt:         uDomain.BannedAt,
		BannedReason:     uDomain.BannedReason,
		BannedBy:         (*uint64)(uDomain.BannedBy),
	}

	return u
}

func ToResponseUsers(usDomain domain.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(req CreateRequest) domain.User {
	var verified = func(v *bool) bool { return v != nil && *v }

	return domain.User{
		Firstname:        req.Firstname,
		Lastname:         req.Lastname,
		Fullname:         req.Fullname,
		Email:            req.Email,
		EmailVerified:    verified(req.EmailVerified),
		Phone:            req.Phone,
		PhoneCountryCode: req.PhoneCountryCode,
		PhoneVerified:    verified(req.PhoneVerified),
		Username:         req.Username,
		Gender:           domain.GenderUnknown,
		UniqueBy:         domain.UniqueField(req.Unique),
	}
}

func ToDomainPatch(req UpdateRequest) (domain.Patch, error) {
	p := domain.Patch{
		Firstname:        req.Firstname,
		Lastname:         req.Lastname,
		Nickname:         req.Nickname,
		Fullname:         req.Fullname,
		Email:            req.Email,
		EmailVerified:    req.EmailVerified,
		Phone:            req.Phone,
		PhoneCountryCode: req.PhoneCountryCode,
		PhoneVerified:    req.PhoneVerified,
		Username:         req.Username,
		IDCard:           req.IDCard,
		Deleted:          req.Deleted,
		Ready:            req.Ready,
		Banned:           req.Banned,
		BannedReason:     req.BannedReason,
		BannedBy:         (*domain.ID)(req.BannedBy),
	}

	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		p.Gender = &g
	}
	if req.Birthdate != nil {
		d, err := time.Parse("2006-01-02", *req.Birthdate)
		if err != nil {
			return domain.Patch{}, errors.New("invalid birthdate format, want YYYY-MM-DD")
		}
		p.Birthdate = &d
	}

	return p, nil
}
