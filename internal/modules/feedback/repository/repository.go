package repository

import (
	"context"

	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
)

// FeedbackRepository abstract interface, write only
type FeedbackRepository interface {
	Insert(ctx context.Context, data *shareddomain.Feedback) error
}
