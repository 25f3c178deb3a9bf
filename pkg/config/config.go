// Package config loads the tabgrid configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/tabgrid/config.toml
// (~/.config/tabgrid/config.toml when XDG_CONFIG_HOME is unset). Every key is
// optional:
//
//	profile = "default"
//
//	[store]
//	backend = "file"            # memory, file, diskv, redis or mongo
//	path    = "~/.local/share/tabgrid"
//	prefix  = ""
//
//	[store.redis]
//	addr     = "localhost:6379"
//	password = ""
//	db       = 0
//
//	[store.mongo]
//	uri        = "mongodb://localhost:27017"
//	database   = "tabgrid"
//	collection = "settings"
//
//	[server]
//	addr = ":8080"
//
//	[log]
//	level = "info"
//
// Environment variables override the file (see [ApplyEnv]).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"

	"github.com/matzehuels/tabgrid/pkg/settings"
)

// AppName names the configuration and data directories.
const AppName = "tabgrid"

// Config is the decoded configuration file.
type Config struct {
	Profile string `toml:"profile"`
	Store   Store  `toml:"store"`
	Server  Server `toml:"server"`
	Log     Log    `toml:"log"`
}

// Store selects the settings backend.
type Store struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
	Prefix  string `toml:"prefix"`

	// ConnectAttempts is how often redis and mongo are dialed at startup.
	ConnectAttempts int   `toml:"connect_attempts"`
	Redis           Redis `toml:"redis"`
	Mongo           Mongo `toml:"mongo"`
}

// Redis configures the redis backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Mongo configures the mongo backend.
type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Server configures `tabgrid serve`.
type Server struct {
	Addr string `toml:"addr"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Profile: "default",
		Store: Store{
			Backend:         settings.BackendFile,
			Path:            DataDir(),
			ConnectAttempts: 3,
			Redis:           Redis{Addr: "localhost:6379"},
			Mongo: Mongo{
				Database:   settings.DefaultMongoDatabase,
				Collection: settings.DefaultMongoCollection,
			},
		},
		Server: Server{Addr: ":8080"},
		Log:    Log{Level: "info"},
	}
}

// Load reads the file at path over the defaults, then applies environment
// overrides. An empty path means [DefaultPath]; a missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand config path: %w", err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	ApplyEnv(cfg, os.Getenv)

	if cfg.Store.Path, err = homedir.Expand(cfg.Store.Path); err != nil {
		return nil, fmt.Errorf("expand store path: %w", err)
	}
	return cfg, nil
}

// Environment variables read by ApplyEnv.
const (
	EnvProfile   = "TABGRID_PROFILE"
	EnvStore     = "TABGRID_STORE"
	EnvStorePath = "TABGRID_STORE_PATH"
	EnvRedisAddr = "TABGRID_REDIS_ADDR"
	EnvMongoURI  = "TABGRID_MONGO_URI"
	EnvAddr      = "TABGRID_ADDR"
)

// ApplyEnv overrides cfg with the non-empty TABGRID_* variables returned by
// getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Profile, EnvProfile)
	set(&cfg.Store.Backend, EnvStore)
	set(&cfg.Store.Path, EnvStorePath)
	set(&cfg.Store.Redis.Addr, EnvRedisAddr)
	set(&cfg.Store.Mongo.URI, EnvMongoURI)
	set(&cfg.Server.Addr, EnvAddr)
}

// StoreOptions converts the store section into settings.Open options.
func (c *Config) StoreOptions() settings.Options {
	return settings.Options{
		Backend: c.Store.Backend,
		Profile: c.Profile,
		Prefix:  c.Store.Prefix,
		Path:    c.Store.Path,

		ConnectAttempts: c.Store.ConnectAttempts,
		Redis: settings.RedisOptions{
			Addr:     c.Store.Redis.Addr,
			Password: c.Store.Redis.Password,
			DB:       c.Store.Redis.DB,
		},
		Mongo: settings.MongoOptions{
			URI:        c.Store.Mongo.URI,
			Database:   c.Store.Mongo.Database,
			Collection: c.Store.Mongo.Collection,
		},
	}
}

// =============================================================================
// Paths
// =============================================================================

// DefaultPath returns the configuration file location using the XDG
// standard (~/.config/tabgrid/config.toml).
func DefaultPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), AppName, "config.toml")
}

// DataDir returns the default store directory using the XDG standard
// (~/.local/share/tabgrid).
func DataDir() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")), AppName)
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := homedir.Dir()
	if err != nil {
		return fallback
	}
	return filepath.Join(home, fallback)
}
