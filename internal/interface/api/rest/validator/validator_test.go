package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-record-service/internal/domain/user"
	"user-record-service/internal/interface/api/rest/dto/user"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func u64Ptr(i uint64) *uint64 { return &i }

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name       string
		req        user.CreateRequest
		wantFields []string
	}{
		{
			name: "valid email-keyed request",
			req:  user.CreateRequest{Email: strPtr("jo@example.com"), Unique: "email"},
		},
		{
			name: "valid phone-keyed request",
			req: user.CreateRequest{
				Phone:            strPtr("612345678"),
				PhoneCountryCode: strPtr("+33"),
				Unique:           "phone",
			},
		},
		{
			name:       "unknown unique selector short-circuits",
			req:        user.CreateRequest{Email: strPtr("not-an-email"), Unique: "gender"},
			wantFields: []string{"unique"},
		},
		{
			name:       "empty unique selector",
			req:        user.CreateRequest{Email: strPtr("jo@example.com")},
			wantFields: []string{"unique"},
		},
		{
			name:       "selected field missing a value",
			req:        user.CreateRequest{Email: strPtr("jo@example.com"), Unique: "username"},
			wantFields: []string{"username"},
		},
		{
			name:       "selected field is blank",
			req:        user.CreateRequest{Email: strPtr("   "), Unique: "email"},
			wantFields: []string{"email"},
		},
		{
			name:       "malformed email",
			req:        user.CreateRequest{Email: strPtr("not-an-email"), Unique: "email"},
			wantFields: []string{"email"},
		},
		{
			name: "overlong firstname",
			req: user.CreateRequest{
				Firstname: strPtr(strings.Repeat("a", 256)),
				Email:     strPtr("jo@example.com"),
				Unique:    "email",
			},
			wantFields: []string{"firstname"},
		},
		{
			name: "multibyte firstname counts runes, not bytes",
			req: user.CreateRequest{
				Firstname: strPtr(strings.Repeat("é", 255)), // 510 bytes, 255 runes
				Email:     strPtr("jo@example.com"),
				Unique:    "email",
			},
		},
		{
			name: "256 multibyte runes exceed the limit",
			req: user.CreateRequest{
				Firstname: strPtr(strings.Repeat("é", 256)),
				Email:     strPtr("jo@example.com"),
				Unique:    "email",
			},
			wantFields: []string{"firstname"},
		},
		{
			name: "country code without plus sign",
			req: user.CreateRequest{
				Phone:            strPtr("612345678"),
				PhoneCountryCode: strPtr("33"),
				Unique:           "phone",
			},
			wantFields: []string{"phoneCountryCode"},
		},
		{
			name: "country code too long",
			req: user.CreateRequest{
				Phone:            strPtr("612345678"),
				PhoneCountryCode: strPtr("+12345"),
				Unique:           "phone",
			},
			wantFields: []string{"phoneCountryCode"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCreate(tt.req)
			if tt.wantFields == nil {
				assert.Nil(t, errs)
				return
			}
			require.Len(t, errs, len(tt.wantFields))
			for i, f := range tt.wantFields {
				assert.Equal(t, f, errs[i].Field)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name       string
		req        user.UpdateRequest
		wantFields []string
	}{
		{
			name: "empty patch is fine",
			req:  user.UpdateRequest{},
		},
		{
			name: "valid gender and birthdate",
			req: user.UpdateRequest{
				Gender:    strPtr("FEMALE"),
				Birthdate: strPtr("1990-04-02"),
			},
		},
		{
			name:       "unknown gender",
			req:        user.UpdateRequest{Gender: strPtr("OTHER")},
			wantFields: []string{"gender"},
		},
		{
			name:       "lowercase gender rejected",
			req:        user.UpdateRequest{Gender: strPtr("male")},
			wantFields: []string{"gender"},
		},
		{
			name:       "birthdate in the wrong layout",
			req:        user.UpdateRequest{Birthdate: strPtr("02/04/1990")},
			wantFields: []string{"birthdate"},
		},
		{
			name:       "zero bannedBy",
			req:        user.UpdateRequest{BannedBy: u64Ptr(0)},
			wantFields: []string{"bannedBy"},
		},
		{
			name:       "malformed email",
			req:        user.UpdateRequest{Email: strPtr("nope")},
			wantFields: []string{"email"},
		},
		{
			name:       "overlong bannedReason",
			req:        user.UpdateRequest{BannedReason: strPtr(strings.Repeat("x", 300))},
			wantFields: []string{"bannedReason"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateUpdate(tt.req)
			if tt.wantFields == nil {
				assert.Nil(t, errs)
				return
			}
			require.Len(t, errs, len(tt.wantFields))
			for i, f := range tt.wantFields {
				assert.Equal(t, f, errs[i].Field)
			}
		})
	}
}

func TestValidateGetByUnique(t *testing.T) {
	errs := ValidateGetByUnique(user.GetByUniqueRequest{Unique: "email", Value: "jo@example.com"})
	assert.Nil(t, errs)

	errs = ValidateGetByUnique(user.GetByUniqueRequest{Unique: "idCard", Value: "x"})
	require.Len(t, errs, 1)
	assert.Equal(t, "unique", errs[0].Field)

	errs = ValidateGetByUnique(user.GetByUniqueRequest{Unique: "email"})
	require.Len(t, errs, 1)
	assert.Equal(t, "value", errs[0].Field)
}

func TestValidateSearch(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		page, limit, errs := ValidateSearch(user.SearchRequest{})
		require.Nil(t, errs)
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, limit)
	})

	t.Run("explicit bounds kept", func(t *testing.T) {
		page, limit, errs := ValidateSearch(user.SearchRequest{Page: intPtr(3), Limit: intPtr(100)})
		require.Nil(t, errs)
		assert.Equal(t, 3, page)
		assert.Equal(t, 100, limit)
	})

	t.Run("page below one", func(t *testing.T) {
		_, _, errs := ValidateSearch(user.SearchRequest{Page: intPtr(0)})
		require.Len(t, errs, 1)
		assert.Equal(t, "page", errs[0].Field)
	})

	t.Run("limit above the cap", func(t *testing.T) {
		_, _, errs := ValidateSearch(user.SearchRequest{Limit: intPtr(101)})
		require.Len(t, errs, 1)
		assert.Equal(t, "limit", errs[0].Field)
		assert.Equal(t, 100, errs[0].Max)
	})
}

func TestValidateID(t *testing.T) {
	id, err := ValidateID("42")
	require.NoError(t, err)
	assert.Equal(t, domain.ID(42), id)

	for _, bad := range []string{"", "abc", "0", "-1", "1.5"} {
		_, err = ValidateID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestValidateForce(t *testing.T) {
	force, err := ValidateForce("")
	require.NoError(t, err)
	assert.False(t, force)

	force, err = ValidateForce("true")
	require.NoError(t, err)
	assert.True(t, force)

	force, err = ValidateForce("1")
	require.NoError(t, err)
	assert.True(t, force)

	_, err = ValidateForce("maybe")
	assert.Error(t, err)
}
