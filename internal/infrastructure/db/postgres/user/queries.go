package user

import (
	"fmt"
	"strconv"
	"strings"

	domain "user-record-service/internal/domain/user"
)

const userColumns = `id, firstname, lastname, nickname, fullname, email, email_verified, phone, phone_country_code, phone_verified, username, gender, birthdate, id_card, created_by, unique_by, deleted, deleted_at, ready, ready_at, banned, banned_at, banned_reason, banned_by`

const (
	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	SelectOwnedUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND created_by = $2
	`
	InsertUser = `
		INSERT INTO users (firstname, lastname, nickname, fullname, email, email_verified, phone, phone_country_code, phone_verified, username, gender, birthdate, id_card, created_by, unique_by, deleted, ready, banned, banned_reason, banned_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id
	`
	SoftDeleteUser = `
		UPDATE users
		SET deleted = 1, deleted_at = now()
		WHERE id = $1 AND created_by = $2
	`
	HardDeleteUser = `DELETE FROM users WHERE id = $1 AND created_by = $2`
)

// uniqueColumns is the allow-list for the dynamically chosen unique column.
// Column names are never taken from request input directly.
var uniqueColumns = map[domain.UniqueField]string{
	domain.UniqueByEmail:    "email",
	domain.UniqueByPhone:    "phone",
	domain.UniqueByUsername: "username",
}

// searchColumns is the fixed list of columns matched by the search action.
var searchColumns = []string{
	"firstname", "lastname", "nickname", "fullname",
	"email", "phone", "username", "id_card",
}

// BuildAnyByUniqueValue renders the table-wide lookup used by the create
// conflict check: any record holding the value in the selected column.
func BuildAnyByUniqueValue(field domain.UniqueField) (string, error) {
	col, ok := uniqueColumns[field]
	if !ok {
		return "", fmt.Errorf("unknown unique column %q", field)
	}
	return `SELECT ` + userColumns + ` FROM users WHERE ` + col + ` = $1`, nil
}

// BuildOwnedByUnique renders the getByUnique lookup: the record must belong
// to the caller and be keyed by the requested selector.
func BuildOwnedByUnique(field domain.UniqueField) (string, error) {
	col, ok := uniqueColumns[field]
	if !ok {
		return "", fmt.Errorf("unknown unique column %q", field)
	}
	return `SELECT ` + userColumns + ` FROM users WHERE ` + col + ` = $1 AND created_by = $2 AND unique_by = $3`, nil
}

// BuildUpdate renders a single parameterized UPDATE covering every supplied
// patch field, plus the flag timestamp side effects: a flag set true pins its
// timestamp to now(), set false clears it (banned additionally clears
// banned_reason). Booleans are written as 0/1.
func BuildUpdate(id domain.ID, patch domain.Patch) (string, []any, error) {
	var (
		sets []string
		args []any
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	setStr := func(col string, v *string) {
		if v != nil {
			set(col, *v)
		}
	}
	setFlag := func(col string, v *bool) {
		if v != nil {
			set(col, boolToInt(*v))
		}
	}

	setStr("firstname", patch.Firstname)
	setStr("lastname", patch.Lastname)
	setStr("nickname", patch.Nickname)
	setStr("fullname", patch.Fullname)
	setStr("email", patch.Email)
	setFlag("email_verified", patch.EmailVerified)
	setStr("phone", patch.Phone)
	setStr("phone_country_code", patch.PhoneCountryCode)
	setFlag("phone_verified", patch.PhoneVerified)
	setStr("username", patch.Username)
	if patch.Gender != nil {
		set("gender", string(*patch.Gender))
	}
	if patch.Birthdate != nil {
		set("birthdate", *patch.Birthdate)
	}
	setStr("id_card", patch.IDCard)
	setFlag("deleted", patch.Deleted)
	setFlag("ready", patch.Ready)
	setFlag("banned", patch.Banned)
	setStr("banned_reason", patch.BannedReason)
	if patch.BannedBy != nil {
		set("banned_by", uint64(*patch.BannedBy))
	}

	// flag/timestamp pairing
	for _, f := range []struct {
		flag   *bool
		tsCol  string
		banned bool
	}{
		{patch.Deleted, "deleted_at", false},
		{patch.Ready, "ready_at", false},
		{patch.Banned, "banned_at", true},
	} {
		if f.flag == nil {
			continue
		}
		if *f.flag {
			sets = append(sets, f.tsCol+" = now()")
		} else {
			sets = append(sets, f.tsCol+" = NULL")
			// a column may be assigned only once per statement; an explicit
			// banned_reason in the patch wins over the implicit clear
			if f.banned && patch.BannedReason == nil {
				sets = append(sets, "banned_reason = NULL")
			}
		}
	}

	if len(sets) == 0 {
		return "", nil, fmt.Errorf("empty update for user %d", id)
	}

	args = append(args, uint64(id))
	sql := "UPDATE users SET " + strings.Join(sets, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args))

	return sql, args, nil
}

// BuildSearch renders the creator-scoped substring search. A non-empty query
// is bound once and matched with LIKE against every column in searchColumns,
// combined with OR.
func BuildSearch(createdBy, query string, limit, offset int) (string, []any) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE created_by = $1`
	args := []any{createdBy}

	if query != "" {
		args = append(args, "%"+query+"%")
		likes := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			likes[i] = col + " LIKE $2"
		}
		sql += " AND (" + strings.Join(likes, " OR ") + ")"
	}

	args = append(args, limit)
	sql += " LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	sql += " OFFSET $" + strconv.Itoa(len(args))

	return sql, args
}

func boolToInt(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

// insertArgs lays out the InsertUser bind values from a domain record.
func insertArgs(req domain.User) []any {
	gender := string(req.Gender)
	if gender == "" {
		gender = string(domain.GenderUnknown)
	}
	return []any{
		req.Firstname,
		req.Lastname,
		req.Nickname,
		req.Fullname,
		req.Email,
		boolToInt(req.EmailVerified),
		req.Phone,
		req.PhoneCountryCode,
		boolToInt(req.PhoneVerified),
		req.Username,
		gender,
		req.Birthdate,
		req.IDCard,
		req.CreatedBy,
		string(req.UniqueBy),
		boolToInt(req.Deleted),
		boolToInt(req.Ready),
		boolToInt(req.Banned),
		req.BannedReason,
		(*uint64)(req.BannedBy),
	}
}
