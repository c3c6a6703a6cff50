package user

import (
	"context"
	"time"

	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/contextutil"
	usererrors "github.com/gorvensalaveria/manila-payroll-backend/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id uint) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, id uint, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all users failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(users), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get user by id failed", zap.Uint("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*u), nil
}

func (s *service) runPreChecks(ctx context.Context, username, email string, excludeID uint) error {
	taken, err := s.repo.ExistsByUsername(ctx, username, excludeID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if taken {
		return usererrors.ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if taken {
		return usererrors.ErrUserEmailTaken
	}

	return nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	req.Normalize()
	s.logger.Debug("create user requested",
		zap.String("request_id", rid),
		zap.String("username", req.Username),
	)

	if err := s.runPreChecks(ctx, req.Username, req.Email, 0); err != nil {
		return UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create user hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.Role,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create user success",
		zap.String("request_id", rid),
		zap.Uint("user_id", u.ID),
	)

	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateUserRequest) (UserResponse, error) {
	s.logger.Debug("update user requested", zap.Uint("user_id", id))

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := s.runPreChecks(ctx, req.Username, req.Email, id); err != nil {
		return UserResponse{}, err
	}

	u.Username = req.Username
	u.Email = req.Email
	u.FullName = req.FullName
	if req.Role != "" {
		u.Role = req.Role
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("update user hash password failed", zap.Error(err))
			return UserResponse{}, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update user success", zap.Uint("user_id", id))

	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debug("delete user requested", zap.Uint("user_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete user failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete user success", zap.Uint("user_id", id))
	return nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(users []User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u)
	}
	return res
}
