package usecase

import (
	"context"

	"github.com/golangid/attendo/internal/modules/account/domain"
)

// AccountUsecase abstraction
type AccountUsecase interface {
	Signup(ctx context.Context, req *domain.RequestSignup) error
	Login(ctx context.Context, req *domain.RequestLogin) (domain.ResponseLogin, error)
	GetProfile(ctx context.Context, id string) (domain.ResponseProfile, error)
}
