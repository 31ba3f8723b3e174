package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vennsets/pkg/cache"
	"github.com/matzehuels/vennsets/pkg/config"
	"github.com/matzehuels/vennsets/pkg/history"
	"github.com/matzehuels/vennsets/pkg/pipeline"
)

// appName names the cache directory and the binary.
const appName = "vennsets"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the file given by --config, or returns defaults.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(c.configPath)
}

// newRunner builds a pipeline runner with the cache and history backends
// named in cfg. noCache forces the null cache.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config, noCache bool) (*pipeline.Runner, error) {
	var (
		store cache.Cache = cache.NewNullCache()
		err   error
	)
	if !noCache {
		if store, err = newCache(ctx, cfg.Cache, c.Logger); err != nil {
			return nil, err
		}
	}

	hist, err := newHistory(ctx, cfg.History)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	r := pipeline.NewRunner(store, cache.NewScopedKeyer(nil, cfg.Cache.Prefix), c.Logger)
	r.History = hist
	if ttl := cfg.Cache.TTL.Std(); ttl > 0 {
		r.TTL = ttl
	}
	c.Logger.Debug("runner ready", "cache", cfg.Cache.Backend, "history", cfg.History.Backend)
	return r, nil
}

func newCache(ctx context.Context, cfg config.CacheConfig, logger *log.Logger) (cache.Cache, error) {
	switch cfg.Backend {
	case config.BackendFile:
		dir := cfg.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				logger.Warn("no cache directory, caching disabled", "err", err)
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	default:
		return cache.NewNullCache(), nil
	}
}

func newHistory(ctx context.Context, cfg config.HistoryConfig) (history.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return history.NewMemoryStore(cfg.Capacity), nil
	case config.BackendMongo:
		return history.NewMongoStore(ctx, history.MongoOptions{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	default:
		return history.NullStore{}, nil
	}
}

// cacheDir returns the file cache directory, following XDG
// (~/.cache/vennsets by default).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
