package repository

import (
	"context"

	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
)

// ParticipantRepository abstract interface
type ParticipantRepository interface {
	// FindOrCreateByEmail insert data when no participant registered with data.Email,
	// data is replaced with the stored participant and created report whether it was inserted
	FindOrCreateByEmail(ctx context.Context, data *shareddomain.Participant) (created bool, err error)
	// IncrementAttendance atomically add one attendance, return participant after update
	IncrementAttendance(ctx context.Context, code string) (shareddomain.Participant, error)
	FetchAll(ctx context.Context, sortByAttendance bool) ([]shareddomain.Participant, error)
}
