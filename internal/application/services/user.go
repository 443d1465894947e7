package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"user-record-service/internal/application/ports"
	domain "user-record-service/internal/domain/user"
	"user-record-service/internal/infrastructure/mq"
	"user-record-service/internal/interface/api/rest/dto/user"
)

// UserRecordService runs each action as a single validate → query → shape
// pass. The create conflict lookup and the update read-then-write are not
// wrapped in transactions; concurrent requests on the same unique value or
// row can interleave.
type UserRecordService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserRecordService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserRecordService {
	return &UserRecordService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserRecordService) Create(ctx context.Context, createdBy string, req domain.User) (*domain.User, error) {
	existing, err := us.userRepository.FetchAnyByUniqueValue(ctx, req.UniqueBy, req.UniqueValue())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{
			ID:       existing.ID,
			Email:    existing.Email,
			Phone:    existing.Phone,
			Username: existing.Username,
		}
	}

	req.CreatedBy = createdBy
	req.Deleted = false
	req.Ready = false
	req.Banned = false

	id, err := us.userRepository.Insert(ctx, req)
	if err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, fmt.Errorf("inserted user %d not found on re-read", id)
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodPost,
		UserID:  uint64(uRet.ID),
		Payload: user.ToResponseUser(*uRet),
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserRecordService) Update(ctx context.Context, id domain.ID, patch domain.Patch) (*domain.User, error) {
	u, err := us.userRepository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	if v := patch.FieldValue(u.UniqueBy); v != nil && *v != u.UniqueValue() {
		return nil, &domain.UniqueImmutableError{
			Unique:  u.UniqueBy,
			Value:   u.UniqueValue(),
			Current: *v,
		}
	}

	if !patch.Empty() {
		if err = us.userRepository.Update(ctx, id, patch); err != nil {
			return nil, err
		}
	}

	uRet, err := us.userRepository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPatch,
			UserID:  uint64(uRet.ID),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserRecordService) DeleteByID(ctx context.Context, createdBy string, id domain.ID, force bool) error {
	var err error
	if force {
		err = us.userRepository.HardDelete(ctx, createdBy, id)
	} else {
		err = us.userRepository.SoftDelete(ctx, createdBy, id)
	}
	if err != nil {
		return err
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Method: http.MethodDelete,
		UserID: uint64(id),
	}

	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserRecordService) FindByID(ctx context.Context, createdBy string, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchOwnedByID(ctx, createdBy, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserRecordService) FindByUnique(ctx context.Context, createdBy string, field domain.UniqueField, value string) (*domain.User, error) {
	u, err := us.userRepository.FetchByUnique(ctx, createdBy, field, value)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserRecordService) Search(ctx context.Context, createdBy, query string, page, limit int) (domain.Users, error) {
	offset := (page - 1) * limit
	users, err := us.userRepository.Search(ctx, createdBy, query, limit, offset)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_search_total").Inc()

	return users, nil
}
