package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"github.com/golangid/attendo/pkg/tracer"
)

type feedbackRepoMongo struct {
	writeDB    *mongo.Database
	collection string
}

// NewFeedbackRepoMongo mongo repo constructor
func NewFeedbackRepoMongo(writeDB *mongo.Database) FeedbackRepository {
	return &feedbackRepoMongo{
		writeDB, shareddomain.Feedback{}.CollectionName(),
	}
}

func (r *feedbackRepoMongo) Insert(ctx context.Context, data *shareddomain.Feedback) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "FeedbackRepoMongo:Insert")
	defer func() { trace.SetError(err); trace.Finish() }()

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	_, err = r.writeDB.Collection(r.collection).InsertOne(ctx, data)
	return
}
