package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-record-service/internal/application/ports"
	domain "user-record-service/internal/domain/user"
	"user-record-service/internal/infrastructure/jwt"
	"user-record-service/internal/interface/api/rest/dto/user"
	"user-record-service/internal/interface/api/rest/middleware"
	"user-record-service/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserRecordService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserRecordService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	creator := middleware.CreatorMiddleware(jwtService)
	r.POST(RouteUserCreate, creator, uc.CreateHandler)
	r.PATCH(RouteUserByID, creator, uc.UpdateHandler)
	r.DELETE(RouteUserDelete, creator, uc.DeleteHandler)
	r.GET(RouteUserGetByID, creator, uc.GetByIDHandler)
	r.POST(RouteUserGet, creator, uc.GetByUniqueHandler)
	r.POST(RouteUserSearch, creator, uc.SearchHandler)

	return uc
}

func (uc *UserController) CreateHandler(c *gin.Context) {
	var req user.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
		})
		return
	}
	// a phone-keyed record cannot be created without its country code;
	// checked before the field validations so this response wins whatever
	// else the body is missing
	if req.Unique == string(domain.UniqueByPhone) &&
		(req.PhoneCountryCode == nil || *req.PhoneCountryCode == "") {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nNeedPhoneCountryCode,
			Data: validator.NeedPhoneCountryCode(),
		})
		return
	}

	if errs := validator.ValidateCreate(req); errs != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
			Data: errs,
		})
		return
	}

	u, err := uc.userService.Create(
		c.Request.Context(),
		c.GetString(middleware.CtxCreator),
		user.ToDomainUser(req),
	)
	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusBadRequest, Envelope{
				Code: http.StatusBadRequest,
				I18n: I18nUniqueAlreadyExists,
				Data: gin.H{
					"id":       uint64(conflict.ID),
					"email":    conflict.Email,
					"phone":    conflict.Phone,
					"username": conflict.Username,
				},
			})
			return
		}
		uc.logger.Error("Create() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Envelope{Code: http.StatusInternalServerError})
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Code: http.StatusOK,
		I18n: I18nUserCreated,
		Data: user.ToResponseUser(*u),
	})
}

func (uc *UserController) UpdateHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
			Data: []validator.FieldError{{
				Field:   "id",
				Type:    "number",
				Message: "The 'id' field must be a positive integer.",
			}},
		})
		return
	}

	var req user.UpdateRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
		})
		return
	}
	if errs := validator.ValidateUpdate(req); errs != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
			Data: errs,
		})
		return
	}

	patch, err := user.ToDomainPatch(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
		})
		return
	}

	u, err := uc.userService.Update(c.Request.Context(), id, patch)
	if err != nil {
		var immutable *domain.UniqueImmutableError
		if errors.As(err, &immutable) {
			c.JSON(http.StatusBadRequest, Envelope{
				Code: http.StatusBadRequest,
				I18n: I18nUniqueCannotBeChange,
				Data: gin.H{
					"unique":  string(immutable.Unique),
					"value":   immutable.Value,
					"current": immutable.Current,
				},
			})
			return
		}
		uc.logger.Error("Update() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Envelope{Code: http.StatusInternalServerError})
		return
	}

	if u == nil {
		c.JSON(http.StatusNotFound, Envelope{
			Code: http.StatusNotFound,
			I18n: I18nUserNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Code: http.StatusOK,
		I18n: I18nUserUpdated,
		Data: user.ToResponseUser(*u),
	})
}

func (uc *UserController) DeleteHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
			Data: []validator.FieldError{{
				Field:   "id",
				Type:    "number",
				Message: "The 'id' field must be a positive integer.",
			}},
		})
		return
	}

	force, err := validator.ValidateForce(c.Query("force"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
			Data: []validator.FieldError{{
				Field:   "force",
				Type:    "boolean",
				Message: "The 'force' field must be a boolean.",
			}},
		})
		return
	}

	if err = uc.userService.DeleteByID(
		c.Request.Context(),
		c.GetString(middleware.CtxCreator),
		id,
		force,
	); err != nil {
		uc.logger.Error("DeleteByID() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Envelope{Code: http.StatusInternalServerError})
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Code: http.StatusOK,
		I18n: I18nUserDeleted,
	})
}

func (uc *UserController) GetByIDHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
			Data: []validator.FieldError{{
				Field:   "id",
				Type:    "number",
				Message: "The 'id' field must be a positive integer.",
			}},
		})
		return
	}

	u, err := uc.userService.FindByID(
		c.Request.Context(),
		c.GetString(middleware.CtxCreator),
		id,
	)
	if err != nil {
		uc.logger.Error("FindByID() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Envelope{
			Code: http.StatusInternalServerError,
			I18n: I18nInternalServerError,
		})
		return
	}

	if u == nil {
		c.JSON(http.StatusNotFound, Envelope{
			Code: http.StatusNotFound,
			I18n: I18nUserNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Code: http.StatusOK,
		I18n: I18nUserFound,
		Data: user.ToResponseUser(*u),
	})
}

func (uc *UserController) GetByUniqueHandler(c *gin.Context) {
	var req user.GetByUniqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
		})
		return
	}
	if errs := validator.ValidateGetByUnique(req); errs != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
			Data: errs,
		})
		return
	}

	u, err := uc.userService.FindByUnique(
		c.Request.Context(),
		c.GetString(middleware.CtxCreator),
		domain.UniqueField(req.Unique),
		req.Value,
	)
	if err != nil {
		uc.logger.Error("FindByUnique() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Envelope{
			Code: http.StatusInternalServerError,
			I18n: I18nInternalServerError,
		})
		return
	}

	if u == nil {
		c.JSON(http.StatusNotFound, Envelope{
			Code: http.StatusNotFound,
			I18n: I18nUserNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Code: http.StatusOK,
		I18n: I18nUserFound,
		Data: user.ToResponseUser(*u),
	})
}

func (uc *UserController) SearchHandler(c *gin.Context) {
	var req user.SearchRequest
	// an empty body means defaults
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
		})
		return
	}

	page, limit, errs := validator.ValidateSearch(req)
	if errs != nil {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Code: http.StatusUnprocessableEntity,
			I18n: I18nValidationError,
			Data: errs,
		})
		return
	}

	users, err := uc.userService.Search(
		c.Request.Context(),
		c.GetString(middleware.CtxCreator),
		req.Query,
		page,
		limit,
	)
	if err != nil {
		uc.logger.Error("Search() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Envelope{
			Code: http.StatusInternalServerError,
			I18n: I18nInternalServerError,
		})
		return
	}

	// total/last come from the returned page's size, not the full matching
	// count: kept as the original behaves.
	total := len(users)
	last := (total + limit - 1) / limit

	c.JSON(http.StatusOK, Envelope{
		Code: http.StatusOK,
		I18n: I18nUserFound,
		Data: user.ToResponseUsers(users),
		Meta: &Meta{
			Page:  page,
			Limit: limit,
			Total: total,
			Last:  last,
		},
	})
}
