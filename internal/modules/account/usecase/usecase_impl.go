package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zapcore"

	"github.com/golangid/attendo/internal/modules/account/domain"
	"github.com/golangid/attendo/pkg/codebase/factory/dependency"
	"github.com/golangid/attendo/pkg/credential"
	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/logger"
	"github.com/golangid/attendo/pkg/metrics"
	"github.com/golangid/attendo/pkg/shared"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"github.com/golangid/attendo/pkg/shared/repository"
	"github.com/golangid/attendo/pkg/tracer"
)

type accountUsecaseImpl struct {
	repoMongo repository.RepoMongo
	hasher    credential.Hasher
	metrics   *metrics.Metrics
}

// NewAccountUsecase usecase impl constructor
func NewAccountUsecase(deps dependency.Dependency, repoMongo repository.RepoMongo) AccountUsecase {
	return &accountUsecaseImpl{
		repoMongo: repoMongo,
		hasher:    deps.GetHasher(),
		metrics:   deps.GetMetrics(),
	}
}

func (uc *accountUsecaseImpl) Signup(ctx context.Context, req *domain.RequestSignup) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AccountUsecase:Signup")
	defer func() { trace.SetError(err); trace.Finish() }()

	result := metrics.ResultCreated
	defer func() {
		if err != nil {
			result = metrics.ResultError
			if shared.IsKind(err, shared.KindConflict) {
				result = metrics.ResultConflict
			}
		}
		uc.metrics.ObserveSignup(result)
	}()

	_, err = uc.repoMongo.AccountRepo().FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return shared.NewConflictError("Email already exists")
	case !shared.IsKind(err, shared.KindNotFound):
		return err
	}

	digest, err := uc.hasher.Hash(req.Password)
	if err != nil {
		return shared.NewInternalError("Server error", err)
	}

	account := shareddomain.Account{
		Username: req.Username,
		Email:    req.Email,
		Password: digest,
		Status:   shareddomain.AccountStatusPending,
	}
	// unique index on email still guard concurrent signup with same email
	if err = uc.repoMongo.AccountRepo().Insert(ctx, &account); err != nil {
		return err
	}

	logger.LogCtx(ctx, zapcore.InfoLevel, "account created: "+helper.MaskEmail(req.Email), "AccountUsecase:Signup")
	return nil
}

func (uc *accountUsecaseImpl) Login(ctx context.Context, req *domain.RequestLogin) (res domain.ResponseLogin, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AccountUsecase:Login")
	defer func() { trace.SetError(err); trace.Finish() }()

	account, err := uc.repoMongo.AccountRepo().FindByEmail(ctx, req.Email)
	if err != nil {
		return res, err
	}

	if !uc.hasher.Verify(req.Password, account.Password) {
		return res, shared.NewInvalidCredentialError("Invalid password")
	}

	// pending account is not blocked, caller interpret the status
	res.Status = account.Status
	trace.SetTag("status", account.Status)
	return res, nil
}

func (uc *accountUsecaseImpl) GetProfile(ctx context.Context, id string) (res domain.ResponseProfile, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AccountUsecase:GetProfile")
	defer func() { trace.SetError(err); trace.Finish() }()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return res, shared.NewNotFoundError("User not found")
	}

	account, err := uc.repoMongo.AccountRepo().FindByID(ctx, objectID)
	if err != nil {
		return res, err
	}
	res.Serialize(&account)
	return res, nil
}
