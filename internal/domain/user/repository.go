package user

import (
	"context"
)

type Repository interface {
	FetchByID(ctx context.Context, id ID) (*User, error)
	FetchOwnedByID(ctx context.Context, createdBy string, id ID) (*User, error)
	FetchAnyByUniqueValue(ctx context.Context, field UniqueField, value string) (*User, error)
	FetchByUnique(ctx context.Context, createdBy string, field UniqueField, value string) (*User, error)
	Insert(ctx context.Context, req User) (ID, error)
	Update(ctx context.Context, id ID, patch Patch) error
	SoftDelete(ctx context.Context, createdBy string, id ID) error
	HardDelete(ctx context.Context, createdBy string, id ID) error
	Search(ctx context.Context, createdBy, query string, limit, offset int) (Users, error)
}
