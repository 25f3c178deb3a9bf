package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/matzehuels/tabgrid/pkg/errors"
	"github.com/matzehuels/tabgrid/pkg/observability"
)

// Store reads and updates the settings document of one profile.
//
// A missing document reads as [Default]. Set applies the patch to the stored
// document (or to the defaults) and writes the result.
type Store interface {
	Get(ctx context.Context) (*Settings, error)
	Set(ctx context.Context, p Patch) error
	Close() error
}

// Clearer is implemented by stores that can delete their document.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Locator is implemented by stores that can say where the document lives.
type Locator interface {
	Location() string
}

// =============================================================================
// Keys
// =============================================================================

// Keyer builds storage keys for settings documents.
type Keyer interface {
	SettingsKey(profile string) string
}

// DefaultKeyer produces keys of the form "settings:<profile>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the unprefixed keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SettingsKey implements Keyer.
func (DefaultKeyer) SettingsKey(profile string) string { return "settings:" + profile }

// ScopedKeyer wraps a Keyer with a prefix so several tenants can share one
// backend.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "team-a:")
//	keyer.SettingsKey("default") // "team-a:settings:default"
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SettingsKey implements Keyer.
func (k *ScopedKeyer) SettingsKey(profile string) string {
	return k.prefix + k.inner.SettingsKey(profile)
}

// =============================================================================
// Byte backends
// =============================================================================

// Backend is a byte-oriented key-value store a [DocStore] keeps its JSON
// document in.
type Backend interface {
	// Name identifies the backend in logs and hooks ("file", "redis", ...).
	Name() string
	// Get returns the stored bytes and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Location describes where key is stored.
	Location(key string) string
	Close() error
}

// DocStore keeps the settings document as JSON under one key of a Backend.
type DocStore struct {
	mu      sync.Mutex
	backend Backend
	key     string
}

// NewDocStore returns a store for the document at key.
func NewDocStore(b Backend, key string) *DocStore {
	return &DocStore{backend: b, key: key}
}

// Get implements Store.
func (s *DocStore) Get(ctx context.Context) (*Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(ctx)
}

func (s *DocStore) get(ctx context.Context) (*Settings, error) {
	start := time.Now()
	data, ok, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read %s from %s", s.key, s.backend.Name())
	}
	observability.Store().OnRead(ctx, s.backend.Name(), ok, time.Since(start))
	if !ok {
		return Default(), nil
	}

	var doc Settings
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "decode %s", s.key)
	}
	return doc.Normalize(), nil
}

// Set implements Store.
func (s *DocStore) Set(ctx context.Context, p Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.get(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cur.Apply(p), "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", s.key)
	}

	start := time.Now()
	if err := s.backend.Put(ctx, s.key, data); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s to %s", s.key, s.backend.Name())
	}
	observability.Store().OnWrite(ctx, s.backend.Name(), len(data), time.Since(start))
	return nil
}

// Clear implements Clearer.
func (s *DocStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Delete(ctx, s.key); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete %s from %s", s.key, s.backend.Name())
	}
	return nil
}

// Location implements Locator.
func (s *DocStore) Location() string { return s.backend.Location(s.key) }

// Backend returns the name of the underlying backend.
func (s *DocStore) Backend() string { return s.backend.Name() }

// Close closes the backend.
func (s *DocStore) Close() error { return s.backend.Close() }

// =============================================================================
// Opening stores
// =============================================================================

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendDiskv  = "diskv"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Backends lists the names accepted by Open.
var Backends = []string{BackendMemory, BackendFile, BackendDiskv, BackendRedis, BackendMongo}

// Options selects and configures a backend.
type Options struct {
	Backend string
	Profile string
	// Prefix scopes keys (see ScopedKeyer). Empty means unscoped.
	Prefix string
	// Path is the directory of the file and diskv backends.
	Path  string
	Redis RedisOptions
	Mongo MongoOptions
	// ConnectAttempts is how often a network backend is dialed before Open
	// gives up; values below 1 mean 1.
	ConnectAttempts int
	// RetryDelay is the first pause between attempts. Defaults to
	// DefaultRetryDelay.
	RetryDelay time.Duration
}

// Key returns the document key for o.
func (o Options) Key() string {
	keyer := NewDefaultKeyer()
	if o.Prefix != "" {
		keyer = NewScopedKeyer(keyer, o.Prefix)
	}
	return keyer.SettingsKey(o.Profile)
}

// Open creates the store described by o. Network backends are pinged so a
// bad address fails here rather than on the first write.
func Open(ctx context.Context, o Options) (Store, error) {
	if err := errors.ValidateProfile(o.Profile); err != nil {
		return nil, err
	}

	var (
		b   Backend
		err error
	)
	switch o.Backend {
	case BackendMemory:
		b = NewMemoryBackend()
	case BackendFile:
		b, err = NewFileBackend(o.Path)
	case BackendDiskv:
		b, err = NewDiskvBackend(o.Path)
	case BackendRedis:
		err = o.retry(ctx, func() error {
			var rerr error
			b, rerr = NewRedisBackend(ctx, o.Redis)
			return rerr
		})
	case BackendMongo:
		var s *MongoStore
		err := o.retry(ctx, func() error {
			var merr error
			s, merr = OpenMongoStore(ctx, o.Mongo, o.Key())
			return merr
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q (want one of %v)", o.Backend, Backends)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "open %s store", o.Backend)
	}
	return NewDocStore(b, o.Key()), nil
}

func (o Options) retry(ctx context.Context, fn func() error) error {
	delay := o.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}
	return Retry(ctx, o.ConnectAttempts, delay, fn)
}

// Describe returns a short human-readable location of s.
func Describe(s Store) string {
	if l, ok := s.(Locator); ok {
		return l.Location()
	}
	return fmt.Sprintf("%T", s)
}

// Ensure DocStore implements the optional interfaces.
var (
	_ Store   = (*DocStore)(nil)
	_ Clearer = (*DocStore)(nil)
	_ Locator = (*DocStore)(nil)
)
