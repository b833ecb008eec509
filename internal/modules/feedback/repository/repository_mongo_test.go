package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
)

func TestFeedbackRepoMongo_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("Testcase #1: Positive", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := NewFeedbackRepoMongo(mt.DB)
		data := &shareddomain.Feedback{Name: "Bob", Email: "b@x.com", Message: "great", Date: time.Now()}
		assert.NoError(t, repo.Insert(context.Background(), data))
		assert.False(t, data.ID.IsZero())
	})

	mt.Run("Testcase #2: Negative", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "write failed"}))

		repo := NewFeedbackRepoMongo(mt.DB)
		assert.Error(t, repo.Insert(context.Background(), &shareddomain.Feedback{Message: "great"}))
	})
}
