// Package document stores inventory records in a MongoDB collection, one
// document per key with the key as _id.
package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"garment-stock/core/reconcile"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// record is the stored document shape.
type record struct {
	Key     string    `bson:"_id"`
	Type    string    `bson:"type"`
	Code    string    `bson:"code"`
	Color   string    `bson:"color"`
	Size    string    `bson:"size"`
	Fabric  string    `bson:"fabric"`
	Qty     int       `bson:"qty"`
	Notes   string    `bson:"notes"`
	AddedAt time.Time `bson:"added_at"`
}

func fromRecord(r reconcile.Record) record {
	return record{
		Key: r.Key, Type: r.Type, Code: r.Code, Color: r.Color, Size: r.Size,
		Fabric: r.Fabric, Qty: r.Qty, Notes: r.Notes, AddedAt: r.AddedAt.UTC(),
	}
}

func (d record) toRecord() reconcile.Record {
	return reconcile.Record{
		Key: d.Key, Type: d.Type, Code: d.Code, Color: d.Color, Size: d.Size,
		Fabric: d.Fabric, Qty: d.Qty, Notes: d.Notes, AddedAt: d.AddedAt.UTC(),
	}
}

// Store implements reconcile.Store over a collection.
type Store struct {
	coll *mongo.Collection
}

// New creates a store backed by coll.
func New(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

// EnsureIndexes creates the secondary indexes used by filtered listings.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "fabric", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (s *Store) GetAll(ctx context.Context) ([]reconcile.Record, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer cur.Close(ctx)

	var docs []record
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	out := make([]reconcile.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toRecord())
	}
	return out, nil
}

func (s *Store) GetByKey(ctx context.Context, key string) (*reconcile.Record, error) {
	var doc record
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	rec := doc.toRecord()
	return &rec, nil
}

func (s *Store) Upsert(ctx context.Context, rec reconcile.Record) error {
	doc := fromRecord(rec)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.Key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert %q: %w", rec.Key, err)
	}
	return nil
}

func (s *Store) UpdateQuantity(ctx context.Context, key string, qty int) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": key}, bson.M{"$set": bson.M{"qty": qty}})
	if err != nil {
		return fmt.Errorf("failed to update %q: %w", key, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("record %q does not exist", key)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// DeleteBatch removes every key with a single $in query.
func (s *Store) DeleteBatch(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": keys}}); err != nil {
		return fmt.Errorf("failed to delete %d keys: %w", len(keys), err)
	}
	return nil
}
