package user

type (
	// CreateRequest carries the create action's fields. Pointers distinguish
	// absent fields from zero values.
	CreateRequest struct {
		Firstname        *string `json:"firstname"`
		Lastname         *string `json:"lastname"`
		Fullname         *string `json:"fullname"`
		Email            *string `json:"email"`
		EmailVerified    *bool   `json:"emailVerified"`
		Phone            *string `json:"phone"`
		PhoneCountryCode *string `json:"phoneCountryCode"`
		PhoneVerified    *bool   `json:"phoneVerified"`
		Username         *string `json:"username"`
		Unique           string  `json:"unique"`
	}

	// UpdateRequest carries any subset of the mutable fields. createdBy has
	// no field here on purpose: it is stripped from request bodies.
	UpdateRequest struct {
		Firstname        *string `json:"firstname"`
		Lastname         *string `json:"lastname"`
		Nickname         *string `json:"nickname"`
		Fullname         *string `json:"fullname"`
		Email            *string `json:"email"`
		EmailVerified    *bool   `json:"emailVerified"`
		Phone            *string `json:"phone"`
		PhoneCountryCode *string `json:"phoneCountryCode"`
		PhoneVerified    *bool   `json:"phoneVerified"`
		Username         *string `json:"username"`
		Gender           *string `json:"gender"`
		Birthdate        *string `json:"birthdate"`
		IDCard           *string `json:"idCard"`
		Deleted          *bool   `json:"deleted"`
		Ready            *bool   `json:"ready"`
		Banned           *bool   `json:"banned"`
		BannedReason     *string `json:"bannedReason"`
		BannedBy         *uint64 `json:"bannedBy"`
	}

	GetByUniqueRequest struct {
		Unique string `json:"unique"`
		Value  string `json:"value"`
	}

	SearchRequest struct {
		Query string `json:"query"`
		Page  *int   `json:"page"`
		Limit *int   `json:"limit"`
	}
)
