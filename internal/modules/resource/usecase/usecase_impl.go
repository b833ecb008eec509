package usecase

import (
	"context"

	"github.com/golangid/attendo/internal/modules/resource/domain"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"github.com/golangid/attendo/pkg/shared/repository"
	"github.com/golangid/attendo/pkg/tracer"
)

type resourceUsecaseImpl struct {
	repoMongo repository.RepoMongo
}

// NewResourceUsecase usecase impl constructor
func NewResourceUsecase(repoMongo repository.RepoMongo) ResourceUsecase {
	return &resourceUsecaseImpl{
		repoMongo: repoMongo,
	}
}

func (uc *resourceUsecaseImpl) AddResource(ctx context.Context, req *domain.RequestResource) (data shareddomain.Resource, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResourceUsecase:AddResource")
	defer func() { trace.SetError(err); trace.Finish() }()

	data = req.Deserialize()
	err = uc.repoMongo.ResourceRepo().Insert(ctx, &data)
	return
}

func (uc *resourceUsecaseImpl) GetAllResource(ctx context.Context) (data []shareddomain.Resource, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResourceUsecase:GetAllResource")
	defer func() { trace.SetError(err); trace.Finish() }()

	return uc.repoMongo.ResourceRepo().FetchAll(ctx)
}
