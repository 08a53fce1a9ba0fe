// Package store persists named layouts for the server API.
//
// A Record pairs an input graph with the layout document computed from it.
// Two backends are provided: an in-memory store for tests and single-node
// deployments, and a MongoDB store for durable multi-instance setups.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spherelab/constellation/pkg/errors"
	"github.com/spherelab/constellation/pkg/export"
	"github.com/spherelab/constellation/pkg/graph"
)

// Record is a stored layout with its source graph.
type Record struct {
	// ID uniquely identifies the record.
	ID string `json:"id" bson:"_id"`

	// Name is a human-readable label chosen by the caller.
	Name string `json:"name" bson:"name"`

	// Graph is the input the layout was computed from.
	Graph graph.Graph `json:"graph" bson:"graph"`

	// Document is the computed layout.
	Document export.Document `json:"document" bson:"document"`

	// CreatedAt is when the record was stored.
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// NewRecord builds a record with a fresh ID and timestamp.
func NewRecord(name string, g graph.Graph, doc export.Document) Record {
	return Record{
		ID:        uuid.NewString(),
		Name:      name,
		Graph:     g,
		Document:  doc,
		CreatedAt: time.Now().UTC(),
	}
}

// Store persists layout records.
type Store interface {
	// Put stores a record, replacing any record with the same ID.
	Put(ctx context.Context, rec Record) error

	// Get retrieves a record by ID. Returns ErrCodeLayoutNotFound if
	// no record exists.
	Get(ctx context.Context, id string) (Record, error)

	// List returns all records sorted by creation time, newest first.
	List(ctx context.Context) ([]Record, error)

	// Delete removes a record by ID. Returns ErrCodeLayoutNotFound if
	// no record exists.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id)
}
