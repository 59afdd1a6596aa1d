package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no document matches a query.
var ErrNotFound = errors.New("document not found")

// Operator selects how UpdateDocumentByID applies a modification.
type Operator string

const (
	// OperatorSet overwrites the modified fields.
	OperatorSet Operator = "$set"
	// OperatorAddToSet appends to set-valued fields without duplicating.
	OperatorAddToSet Operator = "$addToSet"
)

// SortField is a single sort criterion for FindDocuments.
type SortField struct {
	Field      string
	Descending bool
}

// FindOptions carries optional query modifiers.
type FindOptions struct {
	Limit int64
	Skip  int64
	Sort  []SortField
}

// Store abstracts document storage operations on the windwords database.
type Store interface {
	// FindDocument returns the first document matching the query, or
	// ErrNotFound.
	FindDocument(ctx context.Context, collection string, query bson.M) (bson.M, error)

	// FindDocumentByID returns the document with the given object id, or
	// ErrNotFound.
	FindDocumentByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error)

	// FindDocuments returns the documents matching the query.
	FindDocuments(ctx context.Context, collection string, query bson.M, opts *FindOptions) ([]bson.M, error)

	// FindID returns the object id of the first document matching the
	// query, or ErrNotFound.
	FindID(ctx context.Context, collection string, query bson.M) (primitive.ObjectID, error)

	// FindIDs returns the object ids of the documents matching the query.
	FindIDs(ctx context.Context, collection string, query bson.M, opts *FindOptions) ([]primitive.ObjectID, error)

	// FindIDInDatabase scans every collection for the given object id and
	// returns the matching document and its collection, or ErrNotFound.
	FindIDInDatabase(ctx context.Context, id primitive.ObjectID) (bson.M, string, error)

	// CountDocuments returns the number of documents matching the query.
	CountDocuments(ctx context.Context, collection string, query bson.M) (int64, error)

	// InsertDocuments inserts the documents, stamping insertion metadata on
	// each, and returns the inserted object ids.
	InsertDocuments(ctx context.Context, collection string, documents []bson.M) ([]primitive.ObjectID, error)

	// UpdateDocumentByID applies the modification under the given operator
	// and returns the document after the update, with modification
	// metadata stamped. Returns ErrNotFound when no document matched.
	UpdateDocumentByID(ctx context.Context, collection string, id primitive.ObjectID, modification bson.M, operator Operator) (bson.M, error)
}

// FindAll returns every document in the collection.
func FindAll(ctx context.Context, s Store, collection string) ([]bson.M, error) {
	return s.FindDocuments(ctx, collection, bson.M{}, nil)
}

// CountCollection returns the total number of documents in the collection.
func CountCollection(ctx context.Context, s Store, collection string) (int64, error) {
	return s.CountDocuments(ctx, collection, bson.M{})
}
