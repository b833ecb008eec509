package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/golangid/attendo/pkg/shared"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
)

const participantNamespace = "attendo.students"

func participantDoc(id primitive.ObjectID, email, code string, attendance int) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Bob"},
		{Key: "email", Value: email},
		{Key: "uniqueNumber", Value: code},
		{Key: "attendance", Value: attendance},
	}
}

func TestParticipantRepoMongo_FindOrCreateByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("Testcase #1: Positive, existing participant keep stored code", func(mt *mtest.T) {
		existingID := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: participantDoc(existingID, "b@x.com", "482913", 3)},
		})

		repo := NewParticipantRepoMongo(mt.DB, mt.DB)
		data := &shareddomain.Participant{Name: "Bob", Email: "b@x.com", UniqueNumber: "111111"}
		created, err := repo.FindOrCreateByEmail(context.Background(), data)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existingID, data.ID)
		assert.Equal(t, "482913", data.UniqueNumber)
		assert.Equal(t, 3, data.Attendance)
	})

	mt.Run("Testcase #2: Negative, driver error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "write failed"}))

		repo := NewParticipantRepoMongo(mt.DB, mt.DB)
		created, err := repo.FindOrCreateByEmail(context.Background(), &shareddomain.Participant{Email: "b@x.com"})
		assert.Error(t, err)
		assert.False(t, created)
	})

	mt.Run("Testcase #3: Positive, duplicate key on concurrent upsert read the winner", func(mt *mtest.T) {
		winnerID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11000, Message: "E11000 duplicate key error"}),
			mtest.CreateCursorResponse(0, participantNamespace, mtest.FirstBatch, participantDoc(winnerID, "b@x.com", "777777", 0)),
		)

		repo := NewParticipantRepoMongo(mt.DB, mt.DB)
		data := &shareddomain.Participant{Name: "Bob", Email: "b@x.com", UniqueNumber: "123456"}
		created, err := repo.FindOrCreateByEmail(context.Background(), data)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "777777", data.UniqueNumber)
	})
}

func TestParticipantRepoMongo_IncrementAttendance(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("Testcase #1: Positive", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: participantDoc(primitive.NewObjectID(), "b@x.com", "482913", 2)},
		})

		repo := NewParticipantRepoMongo(mt.DB, mt.DB)
		participant, err := repo.IncrementAttendance(context.Background(), "482913")
		assert.NoError(t, err)
		assert.Equal(t, 2, participant.Attendance)
	})

	mt.Run("Testcase #2: Negative, unknown code", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		repo := NewParticipantRepoMongo(mt.DB, mt.DB)
		_, err := repo.IncrementAttendance(context.Background(), "000000")
		assert.True(t, shared.IsKind(err, shared.KindNotFound))
	})
}

func TestParticipantRepoMongo_FetchAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("Testcase #1: Positive", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, participantNamespace, mtest.FirstBatch,
			participantDoc(primitive.NewObjectID(), "a@x.com", "100001", 5),
			participantDoc(primitive.NewObjectID(), "b@x.com", "100002", 2),
		))

		repo := NewParticipantRepoMongo(mt.DB, mt.DB)
		participants, err := repo.FetchAll(context.Background(), true)
		require.NoError(mt, err)
		require.Len(mt, participants, 2)
		assert.Equal(mt, 5, participants[0].Attendance)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		var sortDoc bson.D
		require.NoError(mt, started.Command.Lookup("sort").Unmarshal(&sortDoc))
		assert.Equal(mt, bson.D{{Key: "attendance", Value: int32(-1)}, {Key: "_id", Value: int32(1)}}, sortDoc)
	})

	mt.Run("Testcase #2: Positive, natural order without sort", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, participantNamespace, mtest.FirstBatch,
			participantDoc(primitive.NewObjectID(), "b@x.com", "100002", 2),
			participantDoc(primitive.NewObjectID(), "a@x.com", "100001", 5),
		))

		repo := NewParticipantRepoMongo(mt.DB, mt.DB)
		participants, err := repo.FetchAll(context.Background(), false)
		require.NoError(mt, err)
		require.Len(mt, participants, 2)
		assert.Equal(mt, "b@x.com", participants[0].Email)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		_, err = started.Command.LookupErr("sort")
		assert.Error(mt, err)
	})

	mt.Run("Testcase #3: Negative", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		repo := NewParticipantRepoMongo(mt.DB, mt.DB)
		_, err := repo.FetchAll(context.Background(), false)
		assert.Error(t, err)
	})
}
