package ports

import (
	"context"

	"user-record-service/internal/domain/user"
)

type UserRecordService interface {
	Create(ctx context.Context, createdBy string, req user.User) (*user.User, error)
	Update(ctx context.Context, id user.ID, patch user.Patch) (*user.User, error)
	DeleteByID(ctx context.Context, createdBy string, id user.ID, force bool) error
	FindByID(ctx context.Context, createdBy string, id user.ID) (*user.User, error)
	FindByUnique(ctx context.Context, createdBy string, field user.UniqueField, value string) (*user.User, error)
	Search(ctx context.Context, createdBy, query string, page, limit int) (user.Users, error)
}
