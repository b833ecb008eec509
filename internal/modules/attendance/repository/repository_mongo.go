package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/shared"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"github.com/golangid/attendo/pkg/tracer"
)

type participantRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewParticipantRepoMongo mongo repo constructor
func NewParticipantRepoMongo(readDB, writeDB *mongo.Database) ParticipantRepository {
	return &participantRepoMongo{
		readDB, writeDB, shareddomain.Participant{}.CollectionName(),
	}
}

func (r *participantRepoMongo) FindOrCreateByEmail(ctx context.Context, data *shareddomain.Participant) (created bool, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ParticipantRepoMongo:FindOrCreateByEmail")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("email", helper.MaskEmail(data.Email))
	newID := primitive.NewObjectID()
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":          newID,
			"name":         data.Name,
			"uniqueNumber": data.UniqueNumber,
			"attendance":   0,
		},
	}

	var stored shareddomain.Participant
	err = r.writeDB.Collection(r.collection).FindOneAndUpdate(ctx, bson.M{"email": data.Email}, update, opts).Decode(&stored)
	if mongo.IsDuplicateKeyError(err) {
		// lost the upsert race against concurrent join with same email
		err = r.writeDB.Collection(r.collection).FindOne(ctx, bson.M{"email": data.Email}).Decode(&stored)
	}
	if err != nil {
		return false, err
	}

	*data = stored
	created = stored.ID == newID
	trace.SetTag("created", created)
	return created, nil
}

func (r *participantRepoMongo) IncrementAttendance(ctx context.Context, code string) (data shareddomain.Participant, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ParticipantRepoMongo:IncrementAttendance")
	defer func() { trace.SetError(err); trace.Finish() }()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.writeDB.Collection(r.collection).FindOneAndUpdate(ctx,
		bson.M{"uniqueNumber": code},
		bson.M{"$inc": bson.M{"attendance": 1}},
		opts,
	).Decode(&data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = shared.NewNotFoundError("Student not found!")
	}
	return
}

func (r *participantRepoMongo) FetchAll(ctx context.Context, sortByAttendance bool) (data []shareddomain.Participant, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ParticipantRepoMongo:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	findOptions := options.Find()
	if sortByAttendance {
		// tie broken by insertion order
		findOptions.SetSort(bson.D{{Key: "attendance", Value: -1}, {Key: "_id", Value: 1}})
	}
	trace.SetTag("sort_by_attendance", sortByAttendance)

	cur, err := r.readDB.Collection(r.collection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	data = []shareddomain.Participant{}
	err = cur.All(ctx, &data)
	return
}
