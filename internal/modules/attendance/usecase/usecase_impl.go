package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zapcore"

	"github.com/golangid/attendo/internal/modules/attendance/domain"
	"github.com/golangid/attendo/pkg/codebase/factory/dependency"
	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/locker"
	"github.com/golangid/attendo/pkg/logger"
	"github.com/golangid/attendo/pkg/metrics"
	"github.com/golangid/attendo/pkg/shared"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"github.com/golangid/attendo/pkg/shared/repository"
	"github.com/golangid/attendo/pkg/tracer"
)

const defaultJoinLockTimeout = 5 * time.Second

type attendanceUsecaseImpl struct {
	repoMongo   repository.RepoMongo
	locker      locker.Locker
	lockTimeout time.Duration
	metrics     *metrics.Metrics
	codeGen     func() (string, error)
}

// NewAttendanceUsecase usecase impl constructor, join of the same email is serialized with locker
func NewAttendanceUsecase(deps dependency.Dependency, repoMongo repository.RepoMongo, lockTimeout time.Duration) AttendanceUsecase {
	if lockTimeout <= 0 {
		lockTimeout = defaultJoinLockTimeout
	}
	return &attendanceUsecaseImpl{
		repoMongo:   repoMongo,
		locker:      deps.GetLocker(),
		lockTimeout: lockTimeout,
		metrics:     deps.GetMetrics(),
		codeGen:     GenerateJoinCode,
	}
}

func (uc *attendanceUsecaseImpl) JoinEvent(ctx context.Context, req *domain.RequestJoin) (res domain.ResponseJoin, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AttendanceUsecase:JoinEvent")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("email", helper.MaskEmail(req.Email))
	defer func() {
		result := metrics.ResultError
		if err == nil {
			result = metrics.ResultExisting
			if res.Created {
				result = metrics.ResultCreated
			}
		}
		uc.metrics.ObserveJoin(result)
	}()

	unlock, err := uc.locker.Lock(ctx, "join:"+req.Email, uc.lockTimeout)
	if err != nil {
		return res, shared.NewInternalError("Server error", err)
	}
	defer unlock()

	code, err := uc.codeGen()
	if err != nil {
		return res, shared.NewInternalError("Server error", err)
	}

	participant := shareddomain.Participant{
		Name:         req.Name,
		Email:        req.Email,
		UniqueNumber: code,
	}
	created, err := uc.repoMongo.ParticipantRepo().FindOrCreateByEmail(ctx, &participant)
	if err != nil {
		return res, err
	}
	res.UniqueNumber = participant.UniqueNumber
	res.Created = created
	trace.SetTag("created", created)

	if req.EventID != "" {
		uc.linkAccountEvent(ctx, req.Email, req.EventID)
	}
	return res, nil
}

// linkAccountEvent record joined event in account with the same email, best effort
func (uc *attendanceUsecaseImpl) linkAccountEvent(ctx context.Context, email, eventID string) {
	const scope = "AttendanceUsecase:linkAccountEvent"

	objectID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		logger.LogCtx(ctx, zapcore.WarnLevel, "skip link account event, invalid event id: "+eventID, scope)
		return
	}
	if _, err := uc.repoMongo.EventRepo().FindByID(ctx, objectID); err != nil {
		logger.LogCtx(ctx, zapcore.WarnLevel, "skip link account event: "+err.Error(), scope)
		return
	}
	if err := uc.repoMongo.AccountRepo().AddJoinedEvent(ctx, email, objectID); err != nil {
		level := zapcore.ErrorLevel
		if shared.IsKind(err, shared.KindNotFound) {
			level = zapcore.DebugLevel
		}
		logger.LogCtx(ctx, level, "skip link account event: "+err.Error(), scope)
	}
}

func (uc *attendanceUsecaseImpl) VerifyParticipant(ctx context.Context, code string) (data shareddomain.Participant, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AttendanceUsecase:VerifyParticipant")
	defer func() { trace.SetError(err); trace.Finish() }()

	defer func() {
		switch {
		case err == nil:
			uc.metrics.ObserveVerify(metrics.ResultVerified)
		case shared.IsKind(err, shared.KindNotFound):
			uc.metrics.ObserveVerify(metrics.ResultNotFound)
		default:
			uc.metrics.ObserveVerify(metrics.ResultError)
		}
	}()

	// single atomic $inc, concurrent verification of one code never lose an increment
	data, err = uc.repoMongo.ParticipantRepo().IncrementAttendance(ctx, code)
	if err != nil {
		return data, err
	}
	trace.SetTag("attendance", data.Attendance)
	return data, nil
}

func (uc *attendanceUsecaseImpl) GetAttendanceReport(ctx context.Context) (data []shareddomain.Participant, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AttendanceUsecase:GetAttendanceReport")
	defer func() { trace.SetError(err); trace.Finish() }()

	return uc.repoMongo.ParticipantRepo().FetchAll(ctx, true)
}

func (uc *attendanceUsecaseImpl) GetAllParticipant(ctx context.Context) (data []shareddomain.Participant, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AttendanceUsecase:GetAllParticipant")
	defer func() { trace.SetError(err); trace.Finish() }()

	return uc.repoMongo.ParticipantRepo().FetchAll(ctx, false)
}
