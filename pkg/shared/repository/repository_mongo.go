package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	accountrepo "github.com/golangid/attendo/internal/modules/account/repository"
	attendancerepo "github.com/golangid/attendo/internal/modules/attendance/repository"
	eventrepo "github.com/golangid/attendo/internal/modules/event/repository"
	feedbackrepo "github.com/golangid/attendo/internal/modules/feedback/repository"
	resourcerepo "github.com/golangid/attendo/internal/modules/resource/repository"
	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"github.com/golangid/attendo/pkg/tracer"
)

type (
	// RepoMongo abstraction, persistence gateway handle shared by all usecase
	RepoMongo interface {
		AccountRepo() accountrepo.AccountRepository
		EventRepo() eventrepo.EventRepository
		ParticipantRepo() attendancerepo.ParticipantRepository
		ResourceRepo() resourcerepo.ResourceRepository
		FeedbackRepo() feedbackrepo.FeedbackRepository

		// EnsureIndexes create index needed by repository, idempotent
		EnsureIndexes(ctx context.Context) error
	}

	repoMongoImpl struct {
		readDB, writeDB *mongo.Database

		// register all repository from modules
		accountRepo     accountrepo.AccountRepository
		eventRepo       eventrepo.EventRepository
		participantRepo attendancerepo.ParticipantRepository
		resourceRepo    resourcerepo.ResourceRepository
		feedbackRepo    feedbackrepo.FeedbackRepository
	}
)

// NewRepositoryMongo constructor
func NewRepositoryMongo(readDB, writeDB *mongo.Database) RepoMongo {
	return &repoMongoImpl{
		readDB: readDB, writeDB: writeDB,

		accountRepo:     accountrepo.NewAccountRepoMongo(readDB, writeDB),
		eventRepo:       eventrepo.NewEventRepoMongo(readDB, writeDB),
		participantRepo: attendancerepo.NewParticipantRepoMongo(readDB, writeDB),
		resourceRepo:    resourcerepo.NewResourceRepoMongo(readDB, writeDB),
		feedbackRepo:    feedbackrepo.NewFeedbackRepoMongo(writeDB),
	}
}

func (r *repoMongoImpl) AccountRepo() accountrepo.AccountRepository {
	return r.accountRepo
}

func (r *repoMongoImpl) EventRepo() eventrepo.EventRepository {
	return r.eventRepo
}

func (r *repoMongoImpl) ParticipantRepo() attendancerepo.ParticipantRepository {
	return r.participantRepo
}

func (r *repoMongoImpl) ResourceRepo() resourcerepo.ResourceRepository {
	return r.resourceRepo
}

func (r *repoMongoImpl) FeedbackRepo() feedbackrepo.FeedbackRepository {
	return r.feedbackRepo
}

func (r *repoMongoImpl) EnsureIndexes(ctx context.Context) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "RepoMongo:EnsureIndexes")
	defer func() { trace.SetError(err); trace.Finish() }()

	indexes := map[string][]mongo.IndexModel{
		shareddomain.Account{}.CollectionName(): {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		shareddomain.Participant{}.CollectionName(): {
			// join upsert by email rely on this unique index
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "uniqueNumber", Value: 1}}},
			{Keys: bson.D{{Key: "attendance", Value: -1}, {Key: "_id", Value: 1}}},
		},
	}
	for _, collection := range []string{shareddomain.Account{}.CollectionName(), shareddomain.Participant{}.CollectionName()} {
		if _, err = r.writeDB.Collection(collection).Indexes().CreateMany(ctx, indexes[collection]); err != nil {
			return err
		}
	}
	return nil
}
