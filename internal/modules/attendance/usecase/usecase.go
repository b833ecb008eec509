package usecase

import (
	"context"

	"github.com/golangid/attendo/internal/modules/attendance/domain"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
)

// AttendanceUsecase abstraction
type AttendanceUsecase interface {
	// JoinEvent is idempotent by email, repeated join return the first issued code
	JoinEvent(ctx context.Context, req *domain.RequestJoin) (domain.ResponseJoin, error)
	VerifyParticipant(ctx context.Context, code string) (shareddomain.Participant, error)
	// GetAttendanceReport sorted by attendance descending, tie by insertion order
	GetAttendanceReport(ctx context.Context) ([]shareddomain.Participant, error)
	GetAllParticipant(ctx context.Context) ([]shareddomain.Participant, error)
}
