package validator

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	domain "user-record-service/internal/domain/user"
	"user-record-service/internal/interface/api/rest/dto/user"
)

const (
	maxStringLen      = 255
	maxCountryCodeLen = 4

	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

var countryCodeRe = regexp.MustCompile(`^\+\d{1,3}$`)

// CountryCodePattern is echoed in field-level error details.
const CountryCodePattern = "/^+d{1,3}$/"

// FieldError is one field-level entry of a 422 response's data array.
type FieldError struct {
	Field   string `json:"field"`
	Type    string `json:"type,omitempty"`
	Max     int    `json:"max,omitempty"`
	Pattern string `json:"pattern,omitempty"`
	Message string `json:"message"`
}

func fieldErr(field, typ, message string) FieldError {
	return FieldError{Field: field, Type: typ, Message: message}
}

// NeedPhoneCountryCode is the detail entry for a phone-keyed create that
// omits the country code.
func NeedPhoneCountryCode() []FieldError {
	return []FieldError{{
		Field:   "phoneCountryCode",
		Type:    "string",
		Max:     maxCountryCodeLen,
		Pattern: CountryCodePattern,
		Message: "The 'phoneCountryCode' field is required.",
	}}
}

// length limits are character limits, not byte limits
func checkMax(errs *[]FieldError, field string, v *string) {
	if v != nil && utf8.RuneCountInString(*v) > maxStringLen {
		*errs = append(*errs, FieldError{
			Field:   field,
			Type:    "string",
			Max:     maxStringLen,
			Message: fmt.Sprintf("The '%s' field length must be less than or equal to %d characters.", field, maxStringLen),
		})
	}
}

func checkEmail(errs *[]FieldError, v *string) {
	if v == nil {
		return
	}
	if _, err := mail.ParseAddress(*v); err != nil {
		*errs = append(*errs, fieldErr("email", "email", "The 'email' field must be a valid e-mail address."))
	}
}

func checkCountryCode(errs *[]FieldError, v *string) {
	if v == nil {
		return
	}
	if utf8.RuneCountInString(*v) > maxCountryCodeLen || !countryCodeRe.MatchString(*v) {
		*errs = append(*errs, FieldError{
			Field:   "phoneCountryCode",
			Type:    "string",
			Max:     maxCountryCodeLen,
			Pattern: CountryCodePattern,
			Message: "The 'phoneCountryCode' field fails to match the required pattern.",
		})
	}
}

func ValidateCreate(r user.CreateRequest) []FieldError {
	var errs []FieldError

	unique := domain.UniqueField(r.Unique)
	if !unique.Valid() {
		errs = append(errs, fieldErr("unique", "enum", "The 'unique' field must be one of: email, phone, username."))
		return errs
	}

	checkMax(&errs, "firstname", r.Firstname)
	checkMax(&errs, "lastname", r.Lastname)
	checkMax(&errs, "fullname", r.Fullname)
	checkMax(&errs, "email", r.Email)
	checkEmail(&errs, r.Email)
	checkMax(&errs, "phone", r.Phone)
	checkCountryCode(&errs, r.PhoneCountryCode)
	checkMax(&errs, "username", r.Username)

	// the field selected as unique must carry a value to key the record by
	var selected *string
	switch unique {
	case domain.UniqueByEmail:
		selected = r.Email
	case domain.UniqueByPhone:
		selected = r.Phone
	case domain.UniqueByUsername:
		selected = r.Username
	}
	if selected == nil || strings.TrimSpace(*selected) == "" {
		errs = append(errs, fieldErr(r.Unique, "string",
			fmt.Sprintf("The '%s' field is required when unique is '%s'.", r.Unique, r.Unique)))
	}

	return errs
}

func ValidateUpdate(r user.UpdateRequest) []FieldError {
	var errs []FieldError

	checkMax(&errs, "firstname", r.Firstname)
	checkMax(&errs, "lastname", r.Lastname)
	checkMax(&errs, "nickname", r.Nickname)
	checkMax(&errs, "fullname", r.Fullname)
	checkMax(&errs, "email", r.Email)
	checkEmail(&errs, r.Email)
	checkMax(&errs, "phone", r.Phone)
	checkCountryCode(&errs, r.PhoneCountryCode)
	checkMax(&errs, "username", r.Username)
	checkMax(&errs, "idCard", r.IDCard)
	checkMax(&errs, "bannedReason", r.BannedReason)

	if r.Gender != nil && !domain.Gender(*r.Gender).Valid() {
		errs = append(errs, fieldErr("gender", "enum", "The 'gender' field must be one of: UNKNOWN, MALE, FEMALE, RATHER_NOT_TO_SAY."))
	}
	if r.Birthdate != nil {
		if _, err := time.Parse("2006-01-02", *r.Birthdate); err != nil {
			errs = append(errs, fieldErr("birthdate", "date", "The 'birthdate' field must be a date in YYYY-MM-DD form."))
		}
	}
	if r.BannedBy != nil && *r.BannedBy == 0 {
		errs = append(errs, fieldErr("bannedBy", "number", "The 'bannedBy' field must be a positive integer."))
	}

	return errs
}

func ValidateGetByUnique(r user.GetByUniqueRequest) []FieldError {
	var errs []FieldError

	if !domain.UniqueField(r.Unique).Valid() {
		errs = append(errs, fieldErr("unique", "enum", "The 'unique' field must be one of: email, phone, username."))
	}
	if r.Value == "" {
		errs = append(errs, fieldErr("value", "string", "The 'value' field is required."))
	}

	return errs
}

// ValidateSearch applies the page/limit defaults and bounds.
func ValidateSearch(r user.SearchRequest) (page, limit int, errs []FieldError) {
	page = defaultPage
	if r.Page != nil {
		page = *r.Page
		if page < 1 {
			errs = append(errs, fieldErr("page", "number", "The 'page' field must be a positive integer."))
		}
	}

	limit = defaultLimit
	if r.Limit != nil {
		limit = *r.Limit
		if limit < 1 || limit > maxLimit {
			errs = append(errs, FieldError{
				Field:   "limit",
				Type:    "number",
				Max:     maxLimit,
				Message: fmt.Sprintf("The 'limit' field must be between 1 and %d.", maxLimit),
			})
		}
	}

	return page, limit, errs
}

// ValidateID converts a path id, requiring a positive integer.
func ValidateID(s string) (domain.ID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return domain.ID(id), nil
}

// ValidateForce converts the delete action's force query flag, default false.
func ValidateForce(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	force, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.New("force must be a boolean")
	}
	return force, nil
}
