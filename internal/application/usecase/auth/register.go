package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HPainhas/DevConnector/internal/domain/user"
	"github.com/HPainhas/DevConnector/pkg/apperror"
	"github.com/HPainhas/DevConnector/pkg/auth"
	"github.com/HPainhas/DevConnector/pkg/gravatar"
	"github.com/HPainhas/DevConnector/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	AccessToken string
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		Avatar:       gravatar.URL(input.Email),
		PasswordHash: hash,
		Date:         time.Now().UTC(),
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, apperror.NewValidation([]apperror.FieldError{
				{Msg: "User already exists", Param: "email"},
			})
		}
		return nil, apperror.NewInternal("failed to create user", err)
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", u.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	uc.logger.Info("User registered", zap.String("user_id", u.ID.String()))
	return &RegisterOutput{AccessToken: token}, nil
}
