package handlers

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/store"
)

var (
	// ErrAlreadyExists is returned by Insert when a document with the
	// same identity fields is already stored.
	ErrAlreadyExists = errors.New("handlers: document already exists")

	// ErrNotLinkable is returned when no link rule connects two
	// document kinds.
	ErrNotLinkable = errors.New("handlers: documents are not linkable")
)

// Find returns the stored document matching doc's identity fields.
func Find(ctx context.Context, s store.Store, doc Document) (bson.M, error) {
	return s.FindDocument(ctx, doc.Collection(), Prune(doc.PrimaryData()))
}

// ObjectID returns the object id of the stored document matching doc's
// identity fields.
func ObjectID(ctx context.Context, s store.Store, doc Document) (primitive.ObjectID, error) {
	return s.FindID(ctx, doc.Collection(), Prune(doc.PrimaryData()))
}

// FindByHexID returns the stored document with the hex-encoded object
// id. store.ErrNotFound is wrapped in the error when no document has
// the id.
func FindByHexID(ctx context.Context, s store.Store, collection, hexID string) (bson.M, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, fmt.Errorf("handlers: invalid object id %q: %w", hexID, err)
	}
	return s.FindDocumentByID(ctx, collection, id)
}

// Exists reports whether doc is already stored.
func Exists(ctx context.Context, s store.Store, doc Document) (bool, error) {
	_, err := ObjectID(ctx, s, doc)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert computes the document's fields and stores it. Identity fields
// are merged with the enrichment fields, empty values pruned from
// both. ErrAlreadyExists is returned when the document is stored
// already.
func Insert(ctx context.Context, s store.Store, doc Document) (primitive.ObjectID, error) {
	exists, err := Exists(ctx, s, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if exists {
		return primitive.NilObjectID, ErrAlreadyExists
	}

	secondary, err := doc.SecondaryData(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	document := Prune(doc.PrimaryData())
	for key, value := range Prune(secondary) {
		document[key] = value
	}

	ids, err := s.InsertDocuments(ctx, doc.Collection(), []bson.M{document})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return ids[0], nil
}

// Link records other's object id on doc's stored document, under the
// link field the schema names. To-one rules overwrite the field,
// to-many rules add to a set. Both documents must already be stored.
func Link(ctx context.Context, s store.Store, doc, other Document) error {
	rule, ok := doc.LinkSchema()[other.Kind()]
	if !ok {
		return fmt.Errorf("%w: %s to %s", ErrNotLinkable, doc.Kind(), other.Kind())
	}

	id, err := ObjectID(ctx, s, doc)
	if err != nil {
		return fmt.Errorf("handlers: %s must be inserted before linking: %w", doc.Kind(), err)
	}
	otherID, err := ObjectID(ctx, s, other)
	if err != nil {
		return fmt.Errorf("handlers: %s must be inserted before linking: %w", other.Kind(), err)
	}

	operator := store.OperatorSet
	if rule.Type == model.LinkTypeToMany {
		operator = store.OperatorAddToSet
	}
	_, err = s.UpdateDocumentByID(
		ctx, doc.Collection(), id,
		bson.M{"link." + rule.Field: otherID},
		operator,
	)
	return err
}

// IsLinked reports whether other's object id is already recorded on
// doc's stored document.
func IsLinked(ctx context.Context, s store.Store, doc, other Document) (bool, error) {
	rule, ok := doc.LinkSchema()[other.Kind()]
	if !ok {
		return false, nil
	}

	otherID, err := ObjectID(ctx, s, other)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	ids, err := LinkedIDs(ctx, s, doc, rule.Field)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == otherID {
			return true, nil
		}
	}
	return false, nil
}

// LinkedIDs returns the object id(s) recorded under the given link
// field of doc's stored document.
func LinkedIDs(ctx context.Context, s store.Store, doc Document, field string) ([]primitive.ObjectID, error) {
	document, err := Find(ctx, s, doc)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	links, ok := document["link"].(bson.M)
	if !ok {
		return nil, nil
	}
	return objectIDs(links[field]), nil
}

func objectIDs(value interface{}) []primitive.ObjectID {
	switch v := value.(type) {
	case primitive.ObjectID:
		return []primitive.ObjectID{v}
	case []primitive.ObjectID:
		return v
	case bson.A:
		var ids []primitive.ObjectID
		for _, item := range v {
			if id, ok := item.(primitive.ObjectID); ok {
				ids = append(ids, id)
			}
		}
		return ids
	default:
		return nil
	}
}
