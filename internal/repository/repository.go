package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"linkshortener/internal/config"
)

const (
	linksCollection      = "links"
	accessLogsCollection = "access_logs"
	adminsCollection     = "admins"
	countersCollection   = "counters"

	linkCounterID = "links"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrUnavailable  = errors.New("database unavailable")
	ErrClickCount   = errors.New("click count not updated")
)

// Repository is the MongoDB-backed store for links, access logs and admins.
type Repository struct {
	client     *mongo.Client
	links      *mongo.Collection
	accessLogs *mongo.Collection
	admins     *mongo.Collection
	counters   *mongo.Collection
}

func New(ctx context.Context, cfg *config.MongoConfig) (*Repository, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(cfg.Database)
	r := &Repository{
		client:     client,
		links:      db.Collection(linksCollection),
		accessLogs: db.Collection(accessLogsCollection),
		admins:     db.Collection(adminsCollection),
		counters:   db.Collection(countersCollection),
	}

	if err := r.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return r, nil
}

func (r *Repository) ensureIndexes(ctx context.Context) error {
	_, err := r.links.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// One live link per slug. Deleted links keep their versioned slug
			// and are outside the partial filter.
			Keys: bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().
				SetName("slug_active_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "deleted", Value: false}}),
		},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = r.accessLogs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}, {Key: "ts", Value: -1}}},
		{Keys: bson.D{{Key: "ts", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = r.admins.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *Repository) Ping(ctx context.Context) error {
	return wrapErr(r.client.Ping(ctx, readpref.Primary()))
}

func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// wrapErr translates driver errors into the package sentinels while keeping
// the original error in the chain.
func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case mongo.IsTimeout(err),
		mongo.IsNetworkError(err),
		errors.Is(err, mongo.ErrClientDisconnected),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return err
	}
}

// Drop removes the whole database. Used by integration tests.
func (r *Repository) Drop(ctx context.Context) error {
	return r.links.Database().Drop(ctx)
}
