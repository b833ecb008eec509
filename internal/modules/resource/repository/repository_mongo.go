package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"github.com/golangid/attendo/pkg/tracer"
)

type resourceRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewResourceRepoMongo mongo repo constructor
func NewResourceRepoMongo(readDB, writeDB *mongo.Database) ResourceRepository {
	return &resourceRepoMongo{
		readDB, writeDB, shareddomain.Resource{}.CollectionName(),
	}
}

func (r *resourceRepoMongo) Insert(ctx context.Context, data *shareddomain.Resource) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResourceRepoMongo:Insert")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.Log("data", data)

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	_, err = r.writeDB.Collection(r.collection).InsertOne(ctx, data)
	return
}

func (r *resourceRepoMongo) FetchAll(ctx context.Context) (data []shareddomain.Resource, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ResourceRepoMongo:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	cur, err := r.readDB.Collection(r.collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	data = []shareddomain.Resource{}
	err = cur.All(ctx, &data)
	return
}
