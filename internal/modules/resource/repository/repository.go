package repository

import (
	"context"

	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
)

// ResourceRepository abstract interface
type ResourceRepository interface {
	Insert(ctx context.Context, data *shareddomain.Resource) error
	FetchAll(ctx context.Context) ([]shareddomain.Resource, error)
}
