package usecase

import (
	"context"

	"github.com/golangid/attendo/internal/modules/event/domain"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
)

// EventUsecase abstraction
type EventUsecase interface {
	CreateEvent(ctx context.Context, req *domain.RequestEvent) (shareddomain.Event, error)
	GetAllEvent(ctx context.Context) ([]shareddomain.Event, error)
	// GetMyEvents resolve joined event of account, never return nil slice on success
	GetMyEvents(ctx context.Context, email string) ([]shareddomain.Event, error)
}
