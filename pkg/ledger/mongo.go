package ledger

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/logomark/logomark/pkg/errors"
)

// Mongo is a MongoDB-backed ledger for durable, globally scoped uniqueness.
// A unique index on the hash field makes Insert atomic: the database rejects
// the second writer, not application code.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig holds connection settings for the Mongo backend.
type MongoConfig struct {
	URI        string
	Database   string // defaults to "logomark"
	Collection string // defaults to "ledger"
}

// NewMongo connects, verifies the connection, and ensures the unique index.
func NewMongo(ctx context.Context, cfg MongoConfig) (*Mongo, error) {
	if cfg.Database == "" {
		cfg.Database = "logomark"
	}
	if cfg.Collection == "" {
		cfg.Collection = "ledger"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerUnavailable, err, "mongo ledger at %s", cfg.URI)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerUnavailable, err, "mongo ping")
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "hash", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerUnavailable, err, "ensure hash index")
	}
	return &Mongo{client: client, coll: coll}, nil
}

// Contains queries for the hash.
func (m *Mongo) Contains(ctx context.Context, hash string) (bool, error) {
	err := m.coll.FindOne(ctx, bson.M{"hash": hash}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeLedgerUnavailable, err, "exists check")
	}
	return true, nil
}

// Insert writes the entry; the unique index turns races into ErrDuplicate.
func (m *Mongo) Insert(ctx context.Context, e Entry) error {
	_, err := m.coll.InsertOne(ctx, e)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeLedgerUnavailable, err, "insert")
	}
	return nil
}

// Close disconnects the client.
func (m *Mongo) Close() error {
	return m.client.Disconnect(context.Background())
}

// Ensure Mongo implements Ledger.
var _ Ledger = (*Mongo)(nil)
