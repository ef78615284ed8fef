package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mygaadi/mygaadi/internal/common"
)

// MongoAdapter keeps snapshots in a managed document database. It is the
// "remote" backing store variant; the client requires only read-your-writes
// consistency within one session.
type MongoAdapter struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type snapshotDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Key       string    `bson:"key"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// OpenMongo connects to the document database at uri and verifies
// reachability with a ping.
func OpenMongo(ctx context.Context, uri, database string) (*MongoAdapter, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to document store: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging document store: %w", err)
	}
	return &MongoAdapter{
		client: client,
		coll:   client.Database(database).Collection("snapshots"),
	}, nil
}

func docID(userID, key string) string {
	return userID + "/" + key
}

func (a *MongoAdapter) Load(ctx context.Context, userID, key string) ([]byte, error) {
	var doc snapshotDoc
	err := a.coll.FindOne(ctx, bson.M{"_id": docID(userID, key)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w: %w", key, common.ErrStorageRead, err)
	}
	return doc.Payload, nil
}

func (a *MongoAdapter) Save(ctx context.Context, userID, key string, payload []byte) error {
	doc := snapshotDoc{
		ID:        docID(userID, key),
		UserID:    userID,
		Key:       key,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := a.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("saving snapshot %s: %w", key, err)
	}
	return nil
}

func (a *MongoAdapter) Delete(ctx context.Context, userID, key string) error {
	_, err := a.coll.DeleteOne(ctx, bson.M{"_id": docID(userID, key)})
	if err != nil {
		return fmt.Errorf("deleting snapshot %s: %w", key, err)
	}
	return nil
}

func (a *MongoAdapter) DeleteKeys(ctx context.Context, userID string, keys []string) error {
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, docID(userID, key))
	}
	_, err := a.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("deleting snapshots: %w", err)
	}
	return nil
}

func (a *MongoAdapter) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.client.Disconnect(ctx)
}
