package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domain "user-record-service/internal/domain/user"
	"user-record-service/internal/infrastructure/db/postgres"
)

// DB is the slice of pgxpool.Pool the repository needs. pgxmock satisfies it
// too, which is what the repository tests run against.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.Firstname,
		&u.Lastname,
		&u.Nickname,
		&u.Fullname,
		&u.Email,
		&u.EmailVerified,
		&u.Phone,
		&u.PhoneCountryCode,
		&u.PhoneVerified,
		&u.Username,
		&u.Gender,
		&u.Birthdate,
		&u.IDCard,

		&u.CreatedBy,
		&u.UniqueBy,

		&u.Deleted,
		&u.DeletedAt,
		&u.Ready,
		&u.ReadyAt,
		&u.Banned,
		&u.BannedAt,

		&u.BannedReason,
		&u.BannedBy,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) FetchByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchOwnedByID(ctx context.Context, createdBy string, id domain.ID) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectOwnedUserByID, uint64(id), createdBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchAnyByUniqueValue(ctx context.Context, field domain.UniqueField, value string) (*domain.User, error) {
	sql, err := BuildAnyByUniqueValue(field)
	if err != nil {
		return nil, err
	}

	u, err := scanUser(r.db.QueryRow(ctx, sql, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchByUnique(ctx context.Context, createdBy string, field domain.UniqueField, value string) (*domain.User, error) {
	sql, err := BuildOwnedByUnique(field)
	if err != nil {
		return nil, err
	}

	u, err := scanUser(r.db.QueryRow(ctx, sql, value, createdBy, string(field)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) Insert(ctx context.Context, req domain.User) (domain.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, InsertUser, insertArgs(req)...).Scan(&id); err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return 0, fmt.Errorf("insert user: unique violation: %w", err)
		}
		return 0, err
	}

	return domain.ID(id), nil
}

func (r *Repository) Update(ctx context.Context, id domain.ID, patch domain.Patch) error {
	sql, args, err := BuildUpdate(id, patch)
	if err != nil {
		return err
	}
	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) SoftDelete(ctx context.Context, createdBy string, id domain.ID) error {
	_, err := r.db.Exec(ctx, SoftDeleteUser, uint64(id), createdBy)
	return err
}

func (r *Repository) HardDelete(ctx context.Context, createdBy string, id domain.ID) error {
	_, err := r.db.Exec(ctx, HardDeleteUser, uint64(id), createdBy)
	return err
}

func (r *Repository) Search(ctx context.Context, createdBy, query string, limit, offset int) (domain.Users, error) {
	sql, args := BuildSearch(createdBy, query, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}
