package mongo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/store"
)

// Ensure Store implements store.Store
var _ store.Store = (*Store)(nil)

const defaultTimeout = 10 * time.Second

// Config holds the connection settings for the windwords cluster.
type Config struct {
	// Username of the connecting database user
	Username string
	// Password of the connecting database user
	Password string
	// Cluster is the Atlas cluster name
	Cluster string
	// Database name (defaults to the windwords database)
	Database string
	// Timeout bounds the initial connection (default 10s)
	Timeout time.Duration
}

// URI returns the mongodb+srv connection string with escaped credentials.
func (c Config) URI() string {
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s.mongodb.net",
		url.QueryEscape(c.Username),
		url.QueryEscape(c.Password),
		c.Cluster,
	)
}

// Store implements store.Store against a MongoDB database.
type Store struct {
	client   *mongo.Client
	db       *mongo.Database
	username string
}

// Connect establishes a connection and verifies it with a ping.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Username == "" || cfg.Password == "" || cfg.Cluster == "" {
		return nil, fmt.Errorf("MONGO_USERNAME, MONGO_PASSWORD and MONGO_CLUSTER are required")
	}

	database := cfg.Database
	if database == "" {
		database = model.DefaultDatabase
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach cluster %q: %w", cfg.Cluster, err)
	}

	return &Store{
		client:   client,
		db:       client.Database(database),
		username: cfg.Username,
	}, nil
}

// NewStoreWithDatabase wraps an existing database handle. Used by tests.
func NewStoreWithDatabase(db *mongo.Database, username string) *Store {
	return &Store{db: db, username: username}
}

// Close disconnects from the cluster.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the populate operations rely on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		model.CollectionChannels: {
			{Keys: bson.D{{Key: "channel_id", Value: 1}}, Options: unique},
		},
		model.CollectionChurches: {
			{Keys: bson.D{{Key: "gpid", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		},
		model.CollectionSermons: {
			{Keys: bson.D{{Key: "video_id", Value: 1}}, Options: unique},
		},
	}
	for collection, models := range indexes {
		if _, err := s.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

// FindDocument returns the first document matching the query.
func (s *Store) FindDocument(ctx context.Context, collection string, query bson.M) (bson.M, error) {
	var document bson.M
	err := s.db.Collection(collection).FindOne(ctx, query).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return document, nil
}

// FindDocumentByID returns the document with the given object id.
func (s *Store) FindDocumentByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	return s.FindDocument(ctx, collection, bson.M{"_id": id})
}

// FindDocuments returns the documents matching the query.
func (s *Store) FindDocuments(ctx context.Context, collection string, query bson.M, opts *store.FindOptions) ([]bson.M, error) {
	findOpts := options.Find()
	if opts != nil {
		if opts.Limit > 0 {
			findOpts.SetLimit(opts.Limit)
		}
		if opts.Skip > 0 {
			findOpts.SetSkip(opts.Skip)
		}
		if len(opts.Sort) > 0 {
			sort := bson.D{}
			for _, field := range opts.Sort {
				direction := 1
				if field.Descending {
					direction = -1
				}
				sort = append(sort, bson.E{Key: field.Field, Value: direction})
			}
			findOpts.SetSort(sort)
		}
	}

	cursor, err := s.db.Collection(collection).Find(ctx, query, findOpts)
	if err != nil {
		return nil, err
	}
	var documents []bson.M
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

// FindID returns the object id of the first document matching the query.
func (s *Store) FindID(ctx context.Context, collection string, query bson.M) (primitive.ObjectID, error) {
	document, err := s.FindDocument(ctx, collection, query)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := document["_id"].(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("document in %s has no object id", collection)
	}
	return id, nil
}

// FindIDs returns the object ids of the documents matching the query.
func (s *Store) FindIDs(ctx context.Context, collection string, query bson.M, opts *store.FindOptions) ([]primitive.ObjectID, error) {
	documents, err := s.FindDocuments(ctx, collection, query, opts)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(documents))
	for _, document := range documents {
		if id, ok := document["_id"].(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// FindIDInDatabase scans every collection for the given object id.
// When the collection is known, FindDocumentByID is the faster lookup.
func (s *Store) FindIDInDatabase(ctx context.Context, id primitive.ObjectID) (bson.M, string, error) {
	for _, collection := range model.Collections() {
		document, err := s.FindDocumentByID(ctx, collection, id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return document, collection, nil
	}
	return nil, "", store.ErrNotFound
}

// CountDocuments returns the number of documents matching the query.
func (s *Store) CountDocuments(ctx context.Context, collection string, query bson.M) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, query)
}

// InsertDocuments inserts the documents with insertion metadata stamped.
func (s *Store) InsertDocuments(ctx context.Context, collection string, documents []bson.M) ([]primitive.ObjectID, error) {
	now := time.Now()
	payload := make([]interface{}, 0, len(documents))
	for _, document := range documents {
		document["metadata"] = bson.M{
			"inserted_date":     now,
			"inserted_username": s.username,
			"inserted_version":  model.Version,
		}
		payload = append(payload, document)
	}

	result, err := s.db.Collection(collection).InsertMany(ctx, payload)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(result.InsertedIDs))
	for _, inserted := range result.InsertedIDs {
		if id, ok := inserted.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// UpdateDocumentByID applies the modification under the given operator and
// returns the updated document with modification metadata stamped.
func (s *Store) UpdateDocumentByID(ctx context.Context, collection string, id primitive.ObjectID, modification bson.M, operator store.Operator) (bson.M, error) {
	if operator == "" {
		operator = store.OperatorSet
	}

	coll := s.db.Collection(collection)
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var document bson.M
	err := coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{string(operator): modification},
		after,
	).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	metadata := bson.M{
		"metadata.modified_date":     time.Now(),
		"metadata.modified_username": s.username,
		"metadata.modified_version":  model.Version,
	}
	if _, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": metadata}); err != nil {
		return nil, err
	}
	return document, nil
}
