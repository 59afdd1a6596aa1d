package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/windwords/windwords/pkg/model"
)

// StoredDocument refers to an already-stored document by object id, so
// links can be made without re-resolving the backing object.
type StoredDocument struct {
	kind       string
	collection string
	id         primitive.ObjectID
	schema     map[string]LinkRule
}

// StoredChannel refers to a stored channel document.
func StoredChannel(id primitive.ObjectID) *StoredDocument {
	return &StoredDocument{
		kind:       KindChannel,
		collection: model.CollectionChannels,
		id:         id,
		schema:     channelLinkSchema(),
	}
}

// StoredChurch refers to a stored church document.
func StoredChurch(id primitive.ObjectID) *StoredDocument {
	return &StoredDocument{
		kind:       KindChurch,
		collection: model.CollectionChurches,
		id:         id,
		schema:     churchLinkSchema(),
	}
}

// StoredSermon refers to a stored sermon document.
func StoredSermon(id primitive.ObjectID) *StoredDocument {
	return &StoredDocument{
		kind:       KindSermon,
		collection: model.CollectionSermons,
		id:         id,
		schema:     sermonLinkSchema(),
	}
}

func (d *StoredDocument) Kind() string { return d.kind }

func (d *StoredDocument) Collection() string { return d.collection }

func (d *StoredDocument) PrimaryData() bson.M { return bson.M{"_id": d.id} }

func (d *StoredDocument) SecondaryData(context.Context) (bson.M, error) {
	return bson.M{}, nil
}

func (d *StoredDocument) LinkSchema() map[string]LinkRule { return d.schema }
