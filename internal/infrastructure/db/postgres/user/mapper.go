package user

import (
	domain "user-record-service/internal/domain/user"
)

// fromDBModel coerces the stored 0/1 flag columns to booleans.
func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:               domain.ID(model.ID),
		Firstname:        model.Firstname,
		Lastname:         model.Lastname,
		Nickname:         model.Nickname,
		Fullname:         model.Fullname,
		Email:            model.Email,
		EmailVerified:    model.EmailVerified == 1,
		Phone:            model.Phone,
		PhoneCountryCode: model.PhoneCountryCode,
		PhoneVerified:    model.PhoneVerified == 1,
		Username:         model.Username,
		Gender:           domain.Gender(model.Gender),
		Birthdate:        model.Birthdate,
		IDCard:           model.IDCard,

		CreatedBy: model.CreatedBy,
		UniqueBy:  domain.UniqueField(model.UniqueBy),

		Deleted:   model.Deleted == 1,
		DeletedAt: model.DeletedAt,
		Ready:     model.Ready == 1,
		ReadyAt:   model.ReadyAt,
		Banned:    model.Banned == 1,
		BannedAt:  model.BannedAt,

		BannedReason: model.BannedReason,
		BannedBy:     (*domain.ID)(model.BannedBy),
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
