package mongo

import (
	"context"
	"time"

	"canteen/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeoutSeconds = 10
)

// Connection bundles the mongo client with the application database handle
// and the configured per-operation timeouts.
type Connection struct {
	Client       *mongo.Client
	Database     *mongo.Database
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func New(config *config.Config) *Connection {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeoutSeconds*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.DB.Mongo.URI))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping MongoDB")
	}

	log.Info().
		Str("database", config.DB.Mongo.Database).
		Msg("Connected to MongoDB")

	return &Connection{
		Client:       client,
		Database:     client.Database(config.DB.Mongo.Database),
		ReadTimeout:  secondsOrDefault(config.DB.Mongo.ReadTimeoutSeconds),
		WriteTimeout: secondsOrDefault(config.DB.Mongo.WriteTimeoutSeconds),
	}
}

// WithReadTimeout wraps the context with the configured read timeout. Inside a
// transaction the session context is returned unchanged, since wrapping it
// would break transaction semantics.
func (c *Connection) WithReadTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return c.withTimeout(ctx, c.ReadTimeout)
}

// WithWriteTimeout wraps the context with the configured write timeout.
func (c *Connection) WithWriteTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return c.withTimeout(ctx, c.WriteTimeout)
}

func (c *Connection) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, timeout)
}

// Ping verifies database connectivity, used by the health probe.
func (c *Connection) Ping(ctx context.Context) error {
	ctx, cancel := c.WithReadTimeout(ctx)
	defer cancel()

	return c.Client.Ping(ctx, readpref.Primary())
}

func secondsOrDefault(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = defaultTimeoutSeconds
	}

	return time.Duration(seconds) * time.Second
}
