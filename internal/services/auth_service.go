package services

import (
	"context"
	"errors"

	"moto_portal/internal/auth"
	"moto_portal/internal/logger"
	"moto_portal/internal/services/dto"
	"moto_portal/pkg/apperrors"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	authorizer auth.Authorizer
}

func NewAuthService(authorizer auth.Authorizer) AuthService {
	return &authService{authorizer: authorizer}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	token, err := s.authorizer.Login(ctx, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logger.CtxWarn(ctx, "Admin login failed")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Admin logged in")
	return &dto.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(token.TTL.Seconds()),
	}, nil
}
