package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/shared"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"github.com/golangid/attendo/pkg/tracer"
)

type accountRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewAccountRepoMongo mongo repo constructor
func NewAccountRepoMongo(readDB, writeDB *mongo.Database) AccountRepository {
	return &accountRepoMongo{
		readDB, writeDB, shareddomain.Account{}.CollectionName(),
	}
}

func (r *accountRepoMongo) FindByEmail(ctx context.Context, email string) (data shareddomain.Account, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AccountRepoMongo:FindByEmail")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("email", helper.MaskEmail(email))
	err = r.readDB.Collection(r.collection).FindOne(ctx, bson.M{"email": email}).Decode(&data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = shared.NewNotFoundError("User not found")
	}
	return
}

func (r *accountRepoMongo) FindByID(ctx context.Context, id primitive.ObjectID) (data shareddomain.Account, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AccountRepoMongo:FindByID")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("id", id.Hex())
	err = r.readDB.Collection(r.collection).FindOne(ctx, bson.M{"_id": id}).Decode(&data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = shared.NewNotFoundError("User not found")
	}
	return
}

func (r *accountRepoMongo) Insert(ctx context.Context, data *shareddomain.Account) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AccountRepoMongo:Insert")
	defer func() { trace.SetError(err); trace.Finish() }()

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	if data.EventsJoined == nil {
		// $addToSet cannot be applied on null field
		data.EventsJoined = []primitive.ObjectID{}
	}
	_, err = r.writeDB.Collection(r.collection).InsertOne(ctx, data)
	if mongo.IsDuplicateKeyError(err) {
		err = shared.NewConflictError("Email already exists")
	}
	return
}

func (r *accountRepoMongo) AddJoinedEvent(ctx context.Context, email string, eventID primitive.ObjectID) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AccountRepoMongo:AddJoinedEvent")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("email", helper.MaskEmail(email))
	trace.SetTag("event_id", eventID.Hex())
	res, err := r.writeDB.Collection(r.collection).UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$addToSet": bson.M{"eventsJoined": eventID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return shared.NewNotFoundError("User not found")
	}
	return nil
}
