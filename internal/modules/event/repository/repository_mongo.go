package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/golangid/attendo/pkg/shared"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"github.com/golangid/attendo/pkg/tracer"
)

type eventRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewEventRepoMongo mongo repo constructor
func NewEventRepoMongo(readDB, writeDB *mongo.Database) EventRepository {
	return &eventRepoMongo{
		readDB, writeDB, shareddomain.Event{}.CollectionName(),
	}
}

func (r *eventRepoMongo) Insert(ctx context.Context, data *shareddomain.Event) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventRepoMongo:Insert")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.Log("data", data)

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	_, err = r.writeDB.Collection(r.collection).InsertOne(ctx, data)
	return
}

func (r *eventRepoMongo) FetchAll(ctx context.Context) (data []shareddomain.Event, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventRepoMongo:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	cur, err := r.readDB.Collection(r.collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	data = []shareddomain.Event{}
	err = cur.All(ctx, &data)
	return
}

func (r *eventRepoMongo) FindByID(ctx context.Context, id primitive.ObjectID) (data shareddomain.Event, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventRepoMongo:FindByID")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("id", id.Hex())
	err = r.readDB.Collection(r.collection).FindOne(ctx, bson.M{"_id": id}).Decode(&data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = shared.NewNotFoundError("Event not found")
	}
	return
}

func (r *eventRepoMongo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (data []shareddomain.Event, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventRepoMongo:FindByIDs")
	defer func() { trace.SetError(err); trace.Finish() }()

	data = []shareddomain.Event{}
	if len(ids) == 0 {
		return data, nil
	}

	where := bson.M{"_id": bson.M{"$in": ids}}
	trace.SetTag("query", where)
	cur, err := r.readDB.Collection(r.collection).Find(ctx, where)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var found []shareddomain.Event
	if err = cur.All(ctx, &found); err != nil {
		return nil, err
	}

	// follow order of given ids
	byID := make(map[primitive.ObjectID]shareddomain.Event, len(found))
	for _, event := range found {
		byID[event.ID] = event
	}
	for _, id := range ids {
		if event, ok := byID[id]; ok {
			data = append(data, event)
		}
	}
	return data, nil
}
