package settings

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/tabgrid/pkg/errors"
	"github.com/matzehuels/tabgrid/pkg/observability"
)

// MongoOptions configures the mongo store.
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
}

// Defaults used when MongoOptions leaves a field empty.
const (
	DefaultMongoDatabase   = "tabgrid"
	DefaultMongoCollection = "settings"
)

// mongoDocument is the stored form: the settings fields plus the key as _id.
type mongoDocument struct {
	ID       string `bson:"_id"`
	Settings `bson:",inline"`
}

// MongoStore keeps each profile's settings as one BSON document. Unlike the
// byte backends it stores structured fields, so documents can be queried
// directly in the database.
type MongoStore struct {
	mu     sync.Mutex
	client *mongo.Client
	coll   *mongo.Collection
	key    string
	desc   string
}

// OpenMongoStore connects to MongoDB, pings the server and returns a store
// for the document with _id key.
func OpenMongoStore(ctx context.Context, o MongoOptions, key string) (*MongoStore, error) {
	if o.URI == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "mongo store: uri required")
	}
	if o.Database == "" {
		o.Database = DefaultMongoDatabase
	}
	if o.Collection == "" {
		o.Collection = DefaultMongoCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(o.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStorage, &RetryableError{Err: err}, "ping mongo")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(o.Database).Collection(o.Collection),
		key:    key,
		desc:   fmt.Sprintf("mongo %s.%s _id=%s", o.Database, o.Collection, key),
	}, nil
}

// Get implements Store.
func (s *MongoStore) Get(ctx context.Context) (*Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(ctx)
}

func (s *MongoStore) get(ctx context.Context) (*Settings, error) {
	start := time.Now()
	var doc mongoDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": s.key}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		observability.Store().OnRead(ctx, BackendMongo, false, time.Since(start))
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read %s from mongo", s.key)
	}
	observability.Store().OnRead(ctx, BackendMongo, true, time.Since(start))
	return doc.Settings.Normalize(), nil
}

// Set implements Store. The document is replaced as a whole, upserting it
// on first write.
func (s *MongoStore) Set(ctx context.Context, p Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.get(ctx)
	if err != nil {
		return err
	}

	doc := mongoDocument{ID: s.key, Settings: *cur.Apply(p)}
	start := time.Now()
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": s.key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s to mongo", s.key)
	}
	size := 0
	if raw, err := bson.Marshal(doc); err == nil {
		size = len(raw)
	}
	observability.Store().OnWrite(ctx, BackendMongo, size, time.Since(start))
	return nil
}

// Clear implements Clearer.
func (s *MongoStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": s.key}); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete %s from mongo", s.key)
	}
	return nil
}

// Location implements Locator.
func (s *MongoStore) Location() string { return s.desc }

// Backend returns "mongo".
func (s *MongoStore) Backend() string { return BackendMongo }

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements the optional interfaces.
var (
	_ Store   = (*MongoStore)(nil)
	_ Clearer = (*MongoStore)(nil)
	_ Locator = (*MongoStore)(nil)
)
