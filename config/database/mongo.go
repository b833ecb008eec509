package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/golangid/attendo/pkg/logger"
)

// MongoInstance read and write database handle
type MongoInstance struct {
	DBRead, DBWrite *mongo.Database
}

// ReadDB method
func (m *MongoInstance) ReadDB() *mongo.Database {
	return m.DBRead
}

// WriteDB method
func (m *MongoInstance) WriteDB() *mongo.Database {
	return m.DBWrite
}

// Health ping primary of each connection
func (m *MongoInstance) Health(ctx context.Context) error {
	if m.DBWrite != nil {
		if err := m.DBWrite.Client().Ping(ctx, readpref.Primary()); err != nil {
			return fmt.Errorf("mongo_write: %w", err)
		}
	}
	if m.DBRead != nil && m.DBRead != m.DBWrite {
		if err := m.DBRead.Client().Ping(ctx, readpref.Primary()); err != nil {
			return fmt.Errorf("mongo_read: %w", err)
		}
	}
	return nil
}

// Disconnect method
func (m *MongoInstance) Disconnect(ctx context.Context) (err error) {
	defer logger.LogWithDefer("\x1b[33;5mmongodb\x1b[0m: disconnect...")()

	if m.DBWrite != nil {
		if err := m.DBWrite.Client().Disconnect(ctx); err != nil {
			return err
		}
	}
	if m.DBRead != nil && m.DBRead != m.DBWrite {
		err = m.DBRead.Client().Disconnect(ctx)
	}
	return
}

// InitMongoDB return mongo db read & write instance,
// if read dsn is empty the write connection is shared for read.
// Database name is taken from dsn path, fallback to defaultDatabase
func InitMongoDB(ctx context.Context, writeDSN, readDSN, defaultDatabase string, opts ...*options.ClientOptions) (*MongoInstance, error) {
	defer logger.LogWithDefer("Load MongoDB connection...")()

	writeDB, err := ConnectMongoDB(ctx, writeDSN, defaultDatabase, opts...)
	if err != nil {
		return nil, err
	}
	if readDSN == "" {
		return &MongoInstance{DBRead: writeDB, DBWrite: writeDB}, nil
	}

	readDB, err := ConnectMongoDB(ctx, readDSN, defaultDatabase, opts...)
	if err != nil {
		writeDB.Client().Disconnect(ctx)
		return nil, err
	}
	return &MongoInstance{DBRead: readDB, DBWrite: writeDB}, nil
}

// ConnectMongoDB connect to mongodb with dsn
func ConnectMongoDB(ctx context.Context, dsn, defaultDatabase string, opts ...*options.ClientOptions) (*mongo.Database, error) {
	connDSN, err := connstring.ParseAndValidate(dsn)
	if err != nil {
		return nil, fmt.Errorf("mongodb dsn: %w", err)
	}

	clientOpts := []*options.ClientOptions{
		options.Client().ApplyURI(connDSN.String()),
		options.Client().SetConnectTimeout(10 * time.Second),
		options.Client().SetServerSelectionTimeout(10 * time.Second),
	}
	clientOpts = append(clientOpts, opts...)

	client, err := mongo.Connect(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	dbName := connDSN.Database
	if dbName == "" {
		dbName = defaultDatabase
	}
	return client.Database(dbName), nil
}
