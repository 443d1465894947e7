package rest

// Envelope is the uniform response body: an HTTP-like code, an opaque i18n
// message key (resolved caller-side), optional payload and pagination meta.
type Envelope struct {
	Code int    `json:"code"`
	I18n string `json:"i18n,omitempty"`
	Data any    `json:"data,omitempty"`
	Meta *Meta  `json:"meta,omitempty"`
}

// Meta carries the search pagination info. Total and Last are computed from
// the returned page's row count, not the full matching set.
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Last  int `json:"last"`
}

const (
	I18nUserCreated          = "USER_CREATED"
	I18nUserUpdated          = "USER_UPDATED"
	I18nUserDeleted          = "USER_DELETED"
	I18nUserFound            = "USER_FOUND"
	I18nUserNotFound         = "USER_NOT_FOUND"
	I18nUniqueAlreadyExists  = "UNIQUE_ALREADY_EXISTS"
	I18nUniqueCannotBeChange = "UNIQUE_CANNOT_BE_CHANGED"
	I18nNeedPhoneCountryCode = "NEED_PHONE_COUNTRY_CODE"
	I18nValidationError      = "VALIDATION_ERROR"
	I18nCreatorRequired      = "CREATOR_REQUIRED"
	I18nInternalServerError  = "#INTERNAL_SERVER_ERROR"
)
