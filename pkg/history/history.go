// Package history records completed renders.
//
// A [Record] captures what was asked for and what came back (never the image
// bytes). Backends implement [Store]:
//   - [NullStore]: discards records
//   - [MemoryStore]: bounded in-process ring, newest first
//   - [MongoStore]: a MongoDB collection, for the HTTP service
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultLimit is the number of records Recent returns when limit ≤ 0.
const DefaultLimit = 20

// MaxLimit caps the number of records a single Recent call returns.
const MaxLimit = 500

// Record is one completed render.
type Record struct {
	ID          string        `json:"id" bson:"_id"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	Operation   string        `json:"operation" bson:"operation"`
	A           []string      `json:"a" bson:"a"`
	B           []string      `json:"b" bson:"b"`
	Sort        bool          `json:"sort" bson:"sort"`
	Result      []string      `json:"result" bson:"result"`
	Cardinality int           `json:"cardinality" bson:"cardinality"`
	Width       int           `json:"width" bson:"width"`
	Height      int           `json:"height" bson:"height"`
	ImageSize   int           `json:"image_size" bson:"image_size"`
	Cached      bool          `json:"cached" bson:"cached"`
	Duration    time.Duration `json:"duration_ns" bson:"duration_ns"`
}

// NewRecord returns a record with a fresh random ID and the current time.
func NewRecord() Record {
	return Record{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
}

// Store persists records.
type Store interface {
	// Append stores r. r.ID must be set.
	Append(ctx context.Context, r Record) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// clampLimit normalises a caller-supplied limit.
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// NullStore discards every record.
type NullStore struct{}

func (NullStore) Append(context.Context, Record) error          { return nil }
func (NullStore) Recent(context.Context, int) ([]Record, error) { return nil, nil }
func (NullStore) Close() error                                  { return nil }

var _ Store = NullStore{}
