package usecase

import (
	"context"

	"github.com/golangid/attendo/internal/modules/resource/domain"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
)

// ResourceUsecase abstraction
type ResourceUsecase interface {
	AddResource(ctx context.Context, req *domain.RequestResource) (shareddomain.Resource, error)
	GetAllResource(ctx context.Context) ([]shareddomain.Resource, error)
}
