// Package storetest provides an in-memory store.Store for tests.
package storetest

import (
	"context"
	"reflect"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/store"
)

// Ensure Store implements store.Store
var _ store.Store = (*Store)(nil)

// Store is an in-memory store.Store. Queries support equality matching
// on top-level fields, including mongo's scalar-against-array form,
// which covers every lookup the handlers and endpoints perform.
type Store struct {
	mu          sync.Mutex
	collections map[string][]bson.M
	Username    string
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		collections: make(map[string][]bson.M),
		Username:    "test",
	}
}

func matches(document, query bson.M) bool {
	for key, expected := range query {
		if !matchesValue(document[key], expected) {
			return false
		}
	}
	return true
}

// matchesValue applies equality the way mongo does: a scalar query
// value matches an array field when any element equals it.
func matchesValue(value, expected interface{}) bool {
	if reflect.DeepEqual(value, expected) {
		return true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if reflect.DeepEqual(rv.Index(i).Interface(), expected) {
			return true
		}
	}
	return false
}

func (s *Store) FindDocument(ctx context.Context, collection string, query bson.M) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, document := range s.collections[collection] {
		if matches(document, query) {
			return clone(document), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) FindDocumentByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	return s.FindDocument(ctx, collection, bson.M{"_id": id})
}

func (s *Store) FindDocuments(ctx context.Context, collection string, query bson.M, opts *store.FindOptions) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var documents []bson.M
	for _, document := range s.collections[collection] {
		if matches(document, query) {
			documents = append(documents, clone(document))
		}
	}
	if opts != nil {
		if opts.Skip > 0 && opts.Skip < int64(len(documents)) {
			documents = documents[opts.Skip:]
		} else if opts.Skip >= int64(len(documents)) && opts.Skip > 0 {
			documents = nil
		}
		if opts.Limit > 0 && opts.Limit < int64(len(documents)) {
			documents = documents[:opts.Limit]
		}
	}
	return documents, nil
}

func (s *Store) FindID(ctx context.Context, collection string, query bson.M) (primitive.ObjectID, error) {
	document, err := s.FindDocument(ctx, collection, query)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return document["_id"].(primitive.ObjectID), nil
}

func (s *Store) FindIDs(ctx context.Context, collection string, query bson.M, opts *store.FindOptions) ([]primitive.ObjectID, error) {
	documents, err := s.FindDocuments(ctx, collection, query, opts)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(documents))
	for _, document := range documents {
		ids = append(ids, document["_id"].(primitive.ObjectID))
	}
	return ids, nil
}

func (s *Store) FindIDInDatabase(ctx context.Context, id primitive.ObjectID) (bson.M, string, error) {
	for _, collection := range model.Collections() {
		document, err := s.FindDocumentByID(ctx, collection, id)
		if err == nil {
			return document, collection, nil
		}
	}
	return nil, "", store.ErrNotFound
}

func (s *Store) CountDocuments(ctx context.Context, collection string, query bson.M) (int64, error) {
	documents, err := s.FindDocuments(ctx, collection, query, nil)
	if err != nil {
		return 0, err
	}
	return int64(len(documents)), nil
}

func (s *Store) InsertDocuments(ctx context.Context, collection string, documents []bson.M) ([]primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	ids := make([]primitive.ObjectID, 0, len(documents))
	for _, document := range documents {
		id := primitive.NewObjectID()
		document["_id"] = id
		document["metadata"] = bson.M{
			"inserted_date":     now,
			"inserted_username": s.Username,
			"inserted_version":  model.Version,
		}
		s.collections[collection] = append(s.collections[collection], document)
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Store) UpdateDocumentByID(ctx context.Context, collection string, id primitive.ObjectID, modification bson.M, operator store.Operator) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, document := range s.collections[collection] {
		if document["_id"] != id {
			continue
		}
		for path, value := range modification {
			applyPath(document, path, value, operator)
		}
		stampModified(document, s.Username)
		return clone(document), nil
	}
	return nil, store.ErrNotFound
}

// clone copies the maps and link arrays so callers never share state
// with the store's own documents.
func clone(document bson.M) bson.M {
	out := make(bson.M, len(document))
	for key, value := range document {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case bson.M:
		return clone(v)
	case primitive.A:
		out := make(primitive.A, len(v))
		for i, element := range v {
			out[i] = cloneValue(element)
		}
		return out
	default:
		return value
	}
}

// applyPath applies a single dotted-path modification, e.g. "link.church".
func applyPath(document bson.M, path string, value interface{}, operator store.Operator) {
	target := document
	for {
		dot := -1
		for i, r := range path {
			if r == '.' {
				dot = i
				break
			}
		}
		if dot < 0 {
			break
		}
		key := path[:dot]
		path = path[dot+1:]
		next, ok := target[key].(bson.M)
		if !ok {
			next = bson.M{}
			target[key] = next
		}
		target = next
	}

	if operator == store.OperatorAddToSet {
		existing, _ := target[path].(primitive.A)
		for _, element := range existing {
			if reflect.DeepEqual(element, value) {
				return
			}
		}
		target[path] = append(existing, value)
		return
	}
	target[path] = value
}

func stampModified(document bson.M, username string) {
	metadata, ok := document["metadata"].(bson.M)
	if !ok {
		metadata = bson.M{}
		document["metadata"] = metadata
	}
	metadata["modified_date"] = time.Now()
	metadata["modified_username"] = username
	metadata["modified_version"] = model.Version
}
