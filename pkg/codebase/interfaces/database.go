package interfaces

import (
	"context"

	"github.com/gomodule/redigo/redis"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDatabase abstraction
type MongoDatabase interface {
	ReadDB() *mongo.Database
	WriteDB() *mongo.Database
	Health(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

// RedisPool abstraction
type RedisPool interface {
	ReadPool() *redis.Pool
	WritePool() *redis.Pool
	Health(ctx context.Context) error
	Disconnect(ctx context.Context) error
}
