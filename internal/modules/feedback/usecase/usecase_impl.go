package usecase

import (
	"context"
	"time"

	"github.com/golangid/attendo/internal/modules/feedback/domain"
	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/shared/repository"
	"github.com/golangid/attendo/pkg/tracer"
)

type feedbackUsecaseImpl struct {
	repoMongo repository.RepoMongo
	now       func() time.Time
}

// NewFeedbackUsecase usecase impl constructor
func NewFeedbackUsecase(repoMongo repository.RepoMongo) FeedbackUsecase {
	return &feedbackUsecaseImpl{
		repoMongo: repoMongo,
		now:       time.Now,
	}
}

func (uc *feedbackUsecaseImpl) SubmitFeedback(ctx context.Context, req *domain.RequestFeedback) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "FeedbackUsecase:SubmitFeedback")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("email", helper.MaskEmail(req.Email))
	data := req.Deserialize(uc.now().UTC())
	return uc.repoMongo.FeedbackRepo().Insert(ctx, &data)
}
