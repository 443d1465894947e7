package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-record-service/internal/domain/user"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildAnyByUniqueValue(t *testing.T) {
	tests := []struct {
		name    string
		field   domain.UniqueField
		wantErr bool
		wantSQL string
	}{
		{
			name:    "email column",
			field:   domain.UniqueByEmail,
			wantSQL: `SELECT ` + userColumns + ` FROM users WHERE email = $1`,
		},
		{
			name:    "phone column",
			field:   domain.UniqueByPhone,
			wantSQL: `SELECT ` + userColumns + ` FROM users WHERE phone = $1`,
		},
		{
			name:    "column names outside the allow-list are rejected",
			field:   domain.UniqueField("id; DROP TABLE users"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			sql, err := BuildAnyByUniqueValue(tt.field)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
		})
	}
}

func TestBuildOwnedByUnique(t *testing.T) {
	sql, err := BuildOwnedByUnique(domain.UniqueByUsername)
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT `+userColumns+` FROM users WHERE username = $1 AND created_by = $2 AND unique_by = $3`,
		sql,
	)

	_, err = BuildOwnedByUnique(domain.UniqueField("created_by"))
	require.Error(t, err)
}

func TestBuildUpdate(t *testing.T) {
	tests := []struct {
		name     string
		patch    domain.Patch
		wantErr  bool
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "empty patch is an error",
			patch:   domain.Patch{},
			wantErr: true,
		},
		{
			name:     "single string field",
			patch:    domain.Patch{Firstname: strPtr("Jo")},
			wantSQL:  `UPDATE users SET firstname = $1 WHERE id = $2`,
			wantArgs: []any{"Jo", uint64(7)},
		},
		{
			name:     "booleans are written as 0/1",
			patch:    domain.Patch{EmailVerified: boolPtr(true), PhoneVerified: boolPtr(false)},
			wantSQL:  `UPDATE users SET email_verified = $1, phone_verified = $2 WHERE id = $3`,
			wantArgs: []any{int16(1), int16(0), uint64(7)},
		},
		{
			name:     "flag set true pins its timestamp",
			patch:    domain.Patch{Ready: boolPtr(true)},
			wantSQL:  `UPDATE users SET ready = $1, ready_at = now() WHERE id = $2`,
			wantArgs: []any{int16(1), uint64(7)},
		},
		{
			name:     "banned cleared also clears the reason",
			patch:    domain.Patch{Banned: boolPtr(false)},
			wantSQL:  `UPDATE users SET banned = $1, banned_at = NULL, banned_reason = NULL WHERE id = $2`,
			wantArgs: []any{int16(0), uint64(7)},
		},
		{
			name:     "explicit reason wins over the implicit clear",
			patch:    domain.Patch{Banned: boolPtr(false), BannedReason: strPtr("appealed")},
			wantSQL:  `UPDATE users SET banned = $1, banned_reason = $2, banned_at = NULL WHERE id = $3`,
			wantArgs: []any{int16(0), "appealed", uint64(7)},
		},
		{
			name: "mixed fields keep column order and side effects",
			patch: domain.Patch{
				Email:   strPtr("jo@example.com"),
				Deleted: boolPtr(true),
				Banned:  boolPtr(false),
			},
			wantSQL: `UPDATE users SET email = $1, deleted = $2, banned = $3, ` +
				`deleted_at = now(), banned_at = NULL, banned_reason = NULL WHERE id = $4`,
			wantArgs: []any{"jo@example.com", int16(1), int16(0), uint64(7)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := BuildUpdate(domain.ID(7), tt.patch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildSearch(t *testing.T) {
	t.Run("empty query scopes by creator only", func(t *testing.T) {
		sql, args := BuildSearch("svc-a", "", 10, 0)
		assert.Equal(t,
			`SELECT `+userColumns+` FROM users WHERE created_by = $1 LIMIT $2 OFFSET $3`,
			sql,
		)
		assert.Equal(t, []any{"svc-a", 10, 0}, args)
	})

	t.Run("non-empty query is bound once and matched against every column", func(t *testing.T) {
		sql, args := BuildSearch("svc-a", "jo", 25, 50)
		assert.Equal(t,
			`SELECT `+userColumns+` FROM users WHERE created_by = $1 AND (`+
				`firstname LIKE $2 OR lastname LIKE $2 OR nickname LIKE $2 OR fullname LIKE $2 OR `+
				`email LIKE $2 OR phone LIKE $2 OR username LIKE $2 OR id_card LIKE $2`+
				`) LIMIT $3 OFFSET $4`,
			sql,
		)
		assert.Equal(t, []any{"svc-a", "%jo%", 25, 50}, args)
	})

	t.Run("query text never reaches the SQL string", func(t *testing.T) {
		sql, args := BuildSearch("svc-a", "'; DROP TABLE users; --", 10, 0)
		assert.NotContains(t, sql, "DROP TABLE")
		assert.Contains(t, args, "%'; DROP TABLE users; --%")
	})
}
