package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryGateway is an in-process Gateway used by tests and local runs.
// Documents are kept per collection in insertion order.
type MemoryGateway struct {
	mu          sync.RWMutex
	collections map[string][]bson.Raw
	// FailWrites / FailReads force ErrWrite / ErrRead; used by tests.
	FailWrites error
	FailReads  error
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{collections: make(map[string][]bson.Raw)}
}

func (m *MemoryGateway) Insert(_ context.Context, collection string, doc any) (string, error) {
	if m.FailWrites != nil {
		return "", fmt.Errorf("insert into %s: %w: %w", collection, ErrWrite, m.FailWrites)
	}
	d, err := stripID(doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w: %w", collection, ErrWrite, err)
	}
	id := primitive.NewObjectID()
	raw, err := bson.Marshal(append(bson.D{{Key: "_id", Value: id}}, d...))
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w: %w", collection, ErrWrite, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], raw)
	return id.Hex(), nil
}

func (m *MemoryGateway) Query(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.Raw, error) {
	if m.FailReads != nil {
		return nil, fmt.Errorf("query %s: %w: %w", collection, ErrRead, m.FailReads)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []bson.Raw{}
	for _, raw := range m.collections[collection] {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		var doc bson.M
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("query %s: %w: %w", collection, ErrRead, err)
		}
		ok, err := Match(doc, filter)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w: %w", collection, ErrRead, err)
		}
		if ok {
			out = append(out, raw)
		}
	}
	return out, nil
}

func (m *MemoryGateway) Status(context.Context) Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return Status{Available: true, Database: "memory", Collections: capCollections(names)}
}

// Len returns the number of documents stored in collection.
func (m *MemoryGateway) Len(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collections[collection])
}
