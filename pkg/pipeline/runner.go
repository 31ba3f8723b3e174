package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/vennsets/pkg/cache"
	"github.com/matzehuels/vennsets/pkg/history"
	"github.com/matzehuels/vennsets/pkg/observability"
	"github.com/matzehuels/vennsets/pkg/render/venn"
	"github.com/matzehuels/vennsets/pkg/sets"
)

// Runner executes render requests with caching, de-duplication and history.
// Both the CLI and the HTTP service use it.
//
// A Runner holds no per-request state and is safe for concurrent use.
// Concurrent identical requests share a single render; each render still
// draws on its own surface.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	History history.Store
	Logger  *log.Logger
	TTL     time.Duration

	group singleflight.Group
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer uses
// cache.DefaultKeyer, and a nil logger discards output. History defaults to
// history.NullStore and may be replaced before first use.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		History: history.NullStore{},
		Logger:  logger,
		TTL:     DefaultTTL,
	}
}

// cachedImage is the msgpack form of a render cache entry. Set results are
// not cached; recomputing them is cheaper than the round trip.
type cachedImage struct {
	Data   []byte `msgpack:"data"`
	Format string `msgpack:"format"`
	Width  int    `msgpack:"w"`
	Height int    `msgpack:"h"`
}

// Execute validates opts and produces the set result and diagram.
//
// Cache and history failures are logged and never fail the request. ctx is
// checked before work starts; a render in progress runs to completion.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := opts.Logger.With("op", opts.Operation)
	start := time.Now()

	res, err := compute(opts.op, opts.A, opts.B, opts.Sort)
	if err != nil {
		return nil, err
	}
	out := &Result{
		Result:      res,
		Cardinality: res.Len(),
		Stats:       Stats{SizeA: len(opts.A), SizeB: len(opts.B), ComputeTime: time.Since(start)},
	}

	key := r.Keyer.RenderKey(cache.RenderKeyOpts{
		A: opts.A, B: opts.B, Operation: opts.Operation, Scale: opts.Scale,
	})

	if !opts.Refresh {
		if img, ok := r.lookup(ctx, key, logger); ok {
			out.Image = img
			out.CacheInfo.Hit = true
			out.Stats.Total = time.Since(start)
			logger.Debug("served from cache", "cardinality", out.Cardinality)
			r.record(ctx, opts, out, logger)
			return out, nil
		}
	}

	renderStart := time.Now()
	v, err, shared := r.group.Do(key, func() (any, error) {
		return r.render(ctx, key, opts, logger)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		observability.Pipeline().OnDeduplicated(ctx, opts.Operation)
	}
	out.Image = v.(*venn.Image)
	out.CacheInfo.Shared = shared
	out.Stats.RenderTime = time.Since(renderStart)
	out.Stats.Total = time.Since(start)

	logger.Info("rendered diagram",
		"cardinality", out.Cardinality,
		"size", len(out.Image.Data),
		"duration", out.Stats.Total)

	r.record(ctx, opts, out, logger)
	return out, nil
}

func (r *Runner) render(ctx context.Context, key string, opts Options, logger *log.Logger) (*venn.Image, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Operation, len(opts.A), len(opts.B))
	start := time.Now()

	img, err := venn.Render(opts.A, opts.B, opts.op, venn.WithScale(opts.Scale))
	hooks.OnRenderComplete(ctx, opts.Operation, time.Since(start), err)
	if err != nil {
		logger.Error("render failed", "err", err)
		return nil, err
	}
	r.store(ctx, key, img, logger)
	return img, nil
}

func (r *Runner) lookup(ctx context.Context, key string, logger *log.Logger) (*venn.Image, bool) {
	backend := backendName(r.Cache)
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		observability.Cache().OnCacheError(ctx, backend, err)
		logger.Warn("cache read failed", "backend", backend, "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, backend)
		return nil, false
	}

	var entry cachedImage
	if err := msgpack.Unmarshal(data, &entry); err != nil || entry.Format != venn.FormatPNG {
		logger.Warn("discarding unreadable cache entry", "backend", backend, "err", err)
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, backend)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, backend)
	return &venn.Image{Data: entry.Data, Format: entry.Format, Width: entry.Width, Height: entry.Height}, true
}

func (r *Runner) store(ctx context.Context, key string, img *venn.Image, logger *log.Logger) {
	backend := backendName(r.Cache)
	if backend == "null" {
		return
	}
	data, err := msgpack.Marshal(&cachedImage{Data: img.Data, Format: img.Format, Width: img.Width, Height: img.Height})
	if err == nil {
		err = r.Cache.Set(ctx, key, data, r.TTL)
	}
	if err != nil {
		observability.Cache().OnCacheError(ctx, backend, err)
		logger.Warn("cache write failed", "backend", backend, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, backend, len(data))
}

func (r *Runner) record(ctx context.Context, opts Options, res *Result, logger *log.Logger) {
	rec := history.NewRecord()
	rec.Operation = opts.Operation
	rec.A = displayStrings(opts.A)
	rec.B = displayStrings(opts.B)
	rec.Sort = opts.Sort
	rec.Result = res.Result.Strings()
	rec.Cardinality = res.Cardinality
	rec.Width, rec.Height = res.Image.Width, res.Image.Height
	rec.ImageSize = len(res.Image.Data)
	rec.Cached = res.CacheInfo.Hit
	rec.Duration = res.Stats.Total

	if err := r.History.Append(ctx, rec); err != nil {
		logger.Warn("history write failed", "err", err)
	}
}

// Recent returns the latest history records.
func (r *Runner) Recent(ctx context.Context, limit int) ([]history.Record, error) {
	return r.History.Recent(ctx, limit)
}

// Close releases the cache and history backends.
func (r *Runner) Close() error {
	herr := r.History.Close()
	if err := r.Cache.Close(); err != nil {
		return err
	}
	return herr
}

func displayStrings(c sets.Collection) []string {
	out := make([]string, len(c))
	for i, e := range c {
		out[i] = e.String()
	}
	return out
}

func backendName(c cache.Cache) string {
	switch c.(type) {
	case cache.NullCache, *cache.NullCache:
		return "null"
	case *cache.FileCache:
		return "file"
	case *cache.RedisCache:
		return "redis"
	default:
		return "custom"
	}
}
