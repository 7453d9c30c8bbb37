package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/team-voting/internal/repository/document"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ document.Backend = (*Backend)(nil)

const CollectionName = "documents"

// record - строка коллекции documents, _id совпадает с именем документа.
// payload хранится строкой, поэтому поврежденный JSON сохраняется как есть.
type record struct {
	ID        string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type Backend struct {
	collection *mongo.Collection
}

func NewBackend(db *mongo.Database) *Backend {
	return NewBackendWithCollection(db.Collection(CollectionName))
}

func NewBackendWithCollection(collection *mongo.Collection) *Backend {
	return &Backend{collection: collection}
}

func (b *Backend) Read(ctx context.Context, kind document.Kind) ([]byte, error) {
	var res record
	err := b.collection.FindOne(ctx, bson.M{"_id": string(kind)}).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, document.ErrNotExist
		}
		return nil, fmt.Errorf("failed to fetch document from mongo: %w", err)
	}
	return []byte(res.Payload), nil
}

func (b *Backend) Write(ctx context.Context, kind document.Kind, data []byte) error {
	doc := record{
		ID:        string(kind),
		Payload:   string(data),
		UpdatedAt: time.Now().UTC(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := b.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return fmt.Errorf("document upsert failed: %w", err)
	}
	return nil
}
