package preview

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// Cache holds decoded source images keyed by file path so repeated preview
// and gravity-suggestion calls against the same file skip the disk read.
//
// Cache is safe for concurrent use. Entries stay in memory until Evict or
// Clear; long-running processes previewing many files should clean up
// periodically.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty image cache ready for use.
func NewCache() *Cache {
	return &Cache{
		images: make(map[string]image.Image),
	}
}

// Load returns the decoded image for path, reading and caching it on first
// use. Supported formats are PNG, JPEG, and GIF.
//
// The cache key is the exact path string; relative and absolute paths to the
// same file occupy separate entries.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	img, ok := c.images[path]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err = image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes a single cached image.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear drops every cached image.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Len reports the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}
