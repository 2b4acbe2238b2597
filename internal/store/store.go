// Package store provides the phrase journal interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/czas/internal/model"
)

// ErrNotFound is returned when no live record has the requested id.
var ErrNotFound = errors.New("record not found")

// PutParams holds parameters for journaling a rendered sentence.
type PutParams struct {
	Input  string
	Text   string
	Style  string
	Source string
}

// GetParams holds parameters for retrieving a record.
type GetParams struct {
	ID string
}

// ListParams holds parameters for listing records.
type ListParams struct {
	Source string
	Style  string
	Limit  int
}

// RmParams holds parameters for deleting a record.
type RmParams struct {
	ID   string
	Hard bool
}

// Store defines the journal interface.
type Store interface {
	// Put appends a record. Returns the created record.
	Put(ctx context.Context, p PutParams) (*model.Record, error)

	// Get retrieves a live record by id.
	Get(ctx context.Context, p GetParams) (*model.Record, error)

	// List lists live records, newest first.
	List(ctx context.Context, p ListParams) ([]model.Record, error)

	// Rm soft-deletes (or hard-deletes) a record.
	Rm(ctx context.Context, p RmParams) error

	// Close closes the store.
	Close() error
}
