package usecase

import (
	"context"

	"github.com/golangid/attendo/internal/modules/feedback/domain"
)

// FeedbackUsecase abstraction
type FeedbackUsecase interface {
	SubmitFeedback(ctx context.Context, req *domain.RequestFeedback) error
}
