// Package cache stores rendered diagrams so identical requests skip drawing.
//
// Three backends implement [Cache]:
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP service
//
// Keys are produced by a [Keyer] so every caller derives the same key from the
// same request. [ScopedKeyer] prefixes keys to give deployments separate
// namespaces on a shared backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// A miss is reported as (nil, false, nil); errors are reserved for backend
// failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// RenderKeyOpts identifies one render request.
type RenderKeyOpts struct {
	A, B      any    // element lists, hashed via their JSON encoding
	Operation string // canonical operation name
	Scale     float64
}

// Keyer derives cache keys.
type Keyer interface {
	RenderKey(opts RenderKeyOpts) string
}

// DefaultKeyer hashes request components into "render:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RenderKey returns the key for a render request.
func (DefaultKeyer) RenderKey(opts RenderKeyOpts) string {
	return hashKey("render", opts.Operation, opts.Scale, opts.A, opts.B)
}
