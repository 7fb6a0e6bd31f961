package docstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoGateway implements Gateway on top of a MongoDB database handle.
// The driver owns connection pooling; the gateway holds no other state.
type MongoGateway struct {
	db *mongo.Database
}

func NewMongoGateway(db *mongo.Database) *MongoGateway {
	return &MongoGateway{db: db}
}

func (m *MongoGateway) Insert(ctx context.Context, collection string, doc any) (string, error) {
	d, err := stripID(doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w: %w", collection, ErrWrite, err)
	}
	id := primitive.NewObjectID()
	d = append(bson.D{{Key: "_id", Value: id}}, d...)

	res, err := m.db.Collection(collection).InsertOne(ctx, d)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w: %w", collection, ErrWrite, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return id.Hex(), nil
}

func (m *MongoGateway) Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.Raw, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := m.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w: %w", collection, ErrRead, err)
	}
	defer cur.Close(ctx)

	out := []bson.Raw{}
	for cur.Next(ctx) {
		doc := make(bson.Raw, len(cur.Current))
		copy(doc, cur.Current)
		out = append(out, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w: %w", collection, ErrRead, err)
	}
	return out, nil
}

func (m *MongoGateway) Status(ctx context.Context) Status {
	st := Status{Available: true, Database: m.db.Name()}
	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		st.Err = err
		return st
	}
	st.Collections = capCollections(names)
	return st
}
