package handlers

import (
	"context"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/windwords/windwords/pkg/model"
)

// Document kinds, used to key link schemas.
const (
	KindChannel = "channel"
	KindChurch  = "church"
	KindSermon  = "sermon"
)

// LinkRule describes how a document links to documents of another
// kind: the field under "link" and whether it holds one id or a set.
type LinkRule struct {
	Field string
	Type  model.LinkType
}

// channelLinkSchema links a channel to the one church it belongs to
// and the many sermons harvested from it.
func channelLinkSchema() map[string]LinkRule {
	return map[string]LinkRule{
		KindChurch: {Field: "church", Type: model.LinkTypeToOne},
		KindSermon: {Field: "sermons", Type: model.LinkTypeToMany},
	}
}

// churchLinkSchema links a church to the many channels and sermons
// that belong to it.
func churchLinkSchema() map[string]LinkRule {
	return map[string]LinkRule{
		KindChannel: {Field: "channels", Type: model.LinkTypeToMany},
		KindSermon:  {Field: "sermons", Type: model.LinkTypeToMany},
	}
}

// sermonLinkSchema links a sermon to the one channel and one church it
// came from.
func sermonLinkSchema() map[string]LinkRule {
	return map[string]LinkRule{
		KindChannel: {Field: "channel", Type: model.LinkTypeToOne},
		KindChurch:  {Field: "church", Type: model.LinkTypeToOne},
	}
}

// Document is a database document backed by a harvested object.
type Document interface {
	// Kind identifies the document type for link schema lookups.
	Kind() string

	// Collection is the collection the document lives in.
	Collection() string

	// PrimaryData resolves the identity fields. Primary fields drive
	// database lookups and must not hold expensive-to-compute values.
	PrimaryData() bson.M

	// SecondaryData resolves the enrichment fields. Secondary fields
	// may be expensive and are only computed prior to insertion.
	SecondaryData(ctx context.Context) (bson.M, error)

	// LinkSchema declares the link rules, keyed by the other
	// document's kind.
	LinkSchema() map[string]LinkRule
}

/// Prune returns a copy of data with empty values removed: nils, empty
// strings, and empty maps and slices. Nested maps are pruned first, so
// a map emptied by pruning is itself dropped.
func Prune(data bson.M) bson.M {
	pruned := make(bson.M, len(data))
	for key, value := range data {
		if nested, ok := value.(bson.M); ok {
			value = Prune(nested)
		}
		if isEmpty(value) {
			continue
		}
		pruned[key] = value
	}
	return pruned
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.String:
		return v.Len() == 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == 0
	default:
		return false
	}
}
