package symbol

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tverin/maplegend/internal/legend"
	"github.com/tverin/maplegend/internal/log"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// CachedProvider wraps a preview provider with an expiring in-memory cache.
// Preview rendering may be slow; builds repeat for the same layers on every
// refresh, so results are keyed by layer identity and target size.
type CachedProvider struct {
	inner legend.PreviewProvider
	cache *gocache.Cache
}

// NewCachedProvider wraps inner with a cache using the given expiration and
// cleanup interval.
func NewCachedProvider(inner legend.PreviewProvider, expiration, cleanup time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: gocache.New(expiration, cleanup),
	}
}

// Preview returns the cached symbol for the layer and size, rendering and
// caching on miss. Absent previews are not cached.
func (p *CachedProvider) Preview(layer legend.Layer, width, height int) legend.Symbol {
	key := previewKey(layer, width, height)

	if value, found := p.cache.Get(key); found {
		sym, ok := value.(legend.Symbol)
		if !ok {
			log.Error(log.CatSymbol, "wrong type assertion when getting value", "key", key)
		} else {
			log.Debug(log.CatSymbol, "cache hit", "key", key)
			return sym
		}
	}

	sym := p.inner.Preview(layer, width, height)
	if sym != nil {
		p.cache.Set(key, sym, gocache.DefaultExpiration)
	}
	return sym
}

// Flush drops all cached previews.
func (p *CachedProvider) Flush() {
	p.cache.Flush()
}

func previewKey(layer legend.Layer, width, height int) string {
	kind := legend.TypeKey("")
	if t := layer.Type(); t != nil {
		kind = t.Key()
	}
	return fmt.Sprintf("%s|%s|%dx%d", kind, layer.DisplayName(), width, height)
}
