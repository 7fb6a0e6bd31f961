// Package docstore is the single access point to the document database.
//
// Callers hand it typed records and BSON filters; it hands back raw BSON
// documents and string identifiers. Three gateways implement the contract:
// MongoGateway for production, MemoryGateway for tests and local runs, and
// the Unavailable sentinel used when no connection could be established at
// startup.
package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrUnavailable = errors.New("database not available")
	ErrWrite       = errors.New("document write failed")
	ErrRead        = errors.New("document read failed")
)

// MaxStatusCollections caps the collection names reported by Status.
const MaxStatusCollections = 10

// Gateway inserts and queries documents by collection name.
type Gateway interface {
	// Insert stores doc in collection and returns the generated identifier
	// as a hex string. Any _id carried by doc is discarded.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// Query returns up to limit documents matching filter in natural order.
	// A limit of 0 returns every match.
	Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.Raw, error)
	// Status reports connectivity for diagnostics. It never fails.
	Status(ctx context.Context) Status
}

// Status is a best-effort connectivity snapshot.
type Status struct {
	Available   bool
	Database    string
	Collections []string
	Err         error
}

type unavailable struct {
	reason error
}

// Unavailable returns the degraded gateway. Every Insert and Query fails
// with ErrUnavailable; reason, when non-nil, is attached to the error.
func Unavailable(reason error) Gateway {
	return unavailable{reason: reason}
}

func (u unavailable) err() error {
	if u.reason == nil {
		return fmt.Errorf("%w: check DATABASE_URL and DATABASE_NAME", ErrUnavailable)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, u.reason)
}

func (u unavailable) Insert(context.Context, string, any) (string, error) {
	return "", u.err()
}

func (u unavailable) Query(context.Context, string, bson.M, int64) ([]bson.Raw, error) {
	return nil, u.err()
}

func (u unavailable) Status(context.Context) Status {
	return Status{Available: false, Err: u.reason}
}

// IsUnavailable reports whether g is the degraded sentinel.
func IsUnavailable(g Gateway) bool {
	if i, ok := g.(*instrumented); ok {
		g = i.next
	}
	_, ok := g.(unavailable)
	return ok
}

// stripID marshals doc and removes any top-level _id.
func stripID(doc any) (bson.D, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	out := d[:0]
	for _, e := range d {
		if e.Key == "_id" {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func capCollections(names []string) []string {
	if len(names) > MaxStatusCollections {
		return names[:MaxStatusCollections]
	}
	return names
}
