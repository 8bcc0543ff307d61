package icon

import (
	"image"

	"github.com/puzpuzpuz/xsync/v3"
)

// Cache maps a resolution key (full path or bare extension) to a decoded
// bitmap. It is append-only for the life of the process: a key, once
// populated, is never overwritten or evicted, and concurrent inserts for
// the same key settle on whichever value landed first.
//
// The cache is owned by the application's composition root and injected
// into the resolution service; it is not ambient global state.
type Cache struct {
	images *xsync.MapOf[string, image.Image]
}

// NewCache creates an empty image cache.
func NewCache() *Cache {
	return &Cache{
		images: xsync.NewMapOf[string, image.Image](),
	}
}

// Get retrieves the image stored under key.
// An empty key is always a miss.
func (c *Cache) Get(key string) (image.Image, bool) {
	if key == "" {
		return nil, false
	}
	return c.images.Load(key)
}

// Put stores img under key unless the key is already populated, and
// returns the image that holds the key after the call. Empty keys and nil
// images are ignored, so failed resolutions are never recorded.
func (c *Cache) Put(key string, img image.Image) image.Image {
	if key == "" || img == nil {
		return img
	}
	actual, _ := c.images.LoadOrStore(key, img)
	return actual
}

// Contains reports whether key is populated.
func (c *Cache) Contains(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.images.Size()
}
