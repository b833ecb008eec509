package usecase

import (
	"context"

	"github.com/golangid/attendo/internal/modules/event/domain"
	"github.com/golangid/attendo/pkg/helper"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"github.com/golangid/attendo/pkg/shared/repository"
	"github.com/golangid/attendo/pkg/tracer"
)

type eventUsecaseImpl struct {
	repoMongo repository.RepoMongo
}

// NewEventUsecase usecase impl constructor
func NewEventUsecase(repoMongo repository.RepoMongo) EventUsecase {
	return &eventUsecaseImpl{
		repoMongo: repoMongo,
	}
}

func (uc *eventUsecaseImpl) CreateEvent(ctx context.Context, req *domain.RequestEvent) (data shareddomain.Event, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventUsecase:CreateEvent")
	defer func() { trace.SetError(err); trace.Finish() }()

	data = req.Deserialize()
	err = uc.repoMongo.EventRepo().Insert(ctx, &data)
	return
}

func (uc *eventUsecaseImpl) GetAllEvent(ctx context.Context) (data []shareddomain.Event, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventUsecase:GetAllEvent")
	defer func() { trace.SetError(err); trace.Finish() }()

	return uc.repoMongo.EventRepo().FetchAll(ctx)
}

func (uc *eventUsecaseImpl) GetMyEvents(ctx context.Context, email string) (data []shareddomain.Event, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventUsecase:GetMyEvents")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("email", helper.MaskEmail(email))
	account, err := uc.repoMongo.AccountRepo().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	data, err = uc.repoMongo.EventRepo().FindByIDs(ctx, account.EventsJoined)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []shareddomain.Event{}
	}
	return data, nil
}
