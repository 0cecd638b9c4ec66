package tintsdev

import (
	"strings"
	"sync"

	"github.com/freetint-cli/freetint/filesystem"
	"github.com/freetint-cli/freetint/key"
	"github.com/freetint-cli/freetint/tint"
	"github.com/freetint-cli/freetint/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// cacheData defines the structured format for persisting fetched scales to disk.
type cacheData[K comparable, T any] struct {
	Scales map[K]T `json:"scales"`
}

// cacher provides a generic, thread-safe wrapper for high-level caching operations.
type cacher[K comparable, T any] struct {
	internal   *gache.Cache[*cacheData[K, T]]
	keyWrapper func(K) K
	mu         sync.RWMutex
}

// Get retrieves a value from the cache associated with the specified key.
func (c *cacher[K, T]) Get(key K) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	scale, ok := data.Scales[c.keyWrapper(key)]
	if ok {
		return mo.Some(scale)
	}

	return mo.None[T]()
}

// Set persists a key-value pair to the cache.
func (c *cacher[K, T]) Set(key K, t T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if !expired && data != nil {
		data.Scales[c.keyWrapper(key)] = t
		return c.internal.Set(data)
	}

	internal := &cacheData[K, T]{Scales: make(map[K]T)}
	internal.Scales[c.keyWrapper(key)] = t
	return c.internal.Set(internal)
}

// scaleCacherOnce defers cache construction until the configuration holds
// the response lifetime.
var (
	scaleCacherOnce sync.Once
	scales          *cacher[string, []tint.Tint]
)

// scaleCacher persists fetched scales keyed by "name:hex". A zero lifetime
// keeps responses forever.
func scaleCacher() *cacher[string, []tint.Tint] {
	scaleCacherOnce.Do(func() {
		scales = &cacher[string, []tint.Tint]{
			internal: gache.New[*cacheData[string, []tint.Tint]](
				&gache.Options{
					Path:       where.RemoteScales(),
					Lifetime:   viper.GetDuration(key.RemoteCacheTTL),
					FileSystem: &filesystem.GacheFs{},
				},
			),
			keyWrapper: strings.ToLower,
		}
	})

	return scales
}
