package render

import (
	"bytes"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/youruser/cardforge/internal/faults"
)

// httpTimeout bounds remote image fetches, matching the card image
// download behavior this loader was adapted from.
const httpTimeout = 10 * time.Second

type fontEntry struct {
	once sync.Once
	fnt  *opentype.Font
	err  error
}

type imageEntry struct {
	once sync.Once
	img  image.Image
	err  error
}

// ResourceCache memoizes parsed fonts and decoded images by path.
// Identical image keys return the identical handle, so repeated renders
// share decoded resources instead of re-reading files. Cached handles
// are read-only: images are never adjusted in place, and because a
// font.Face carries mutable glyph buffers the cache keeps only the
// immutable parsed font and mints a fresh face on every GetFont call.
//
// The cache is safe for concurrent use: read-through population is
// atomic per key, so concurrent first accesses trigger a single load.
// Failed loads are never retained; a retry reloads. The cache is
// unbounded and never evicts.
type ResourceCache struct {
	mu     sync.Mutex
	fonts  map[string]*fontEntry
	images map[string]*imageEntry

	loadFont  func(path string) (*opentype.Font, error)
	loadImage func(path string) (image.Image, error)
}

// NewResourceCache returns an empty cache backed by the default loaders:
// fonts via opentype (with the embedded Go Regular fallback for an empty
// path), images via the local filesystem or http(s) download.
func NewResourceCache() *ResourceCache {
	return &ResourceCache{
		fonts:     make(map[string]*fontEntry),
		images:    make(map[string]*imageEntry),
		loadFont:  parseFontFile,
		loadImage: loadImageFile,
	}
}

// GetFont returns a face for (path, size). The parsed font is cached and
// loaded on first access; the face itself is built fresh on every call,
// so callers on different goroutines never touch the same face.
func (c *ResourceCache) GetFont(path string, size int) (font.Face, error) {
	c.mu.Lock()
	e, ok := c.fonts[path]
	if !ok {
		e = &fontEntry{}
		c.fonts[path] = e
	}
	c.mu.Unlock()

	e.once.Do(func() { e.fnt, e.err = c.loadFont(path) })
	if e.err != nil {
		// A failed load must not poison the cache.
		c.mu.Lock()
		if c.fonts[path] == e {
			delete(c.fonts, path)
		}
		c.mu.Unlock()
		return nil, e.err
	}
	face, err := opentype.NewFace(e.fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, faults.Resource("build face for %q at %d: %v", path, size, err)
	}
	return face, nil
}

// GetImage returns the cached image for path, loading it on first access.
func (c *ResourceCache) GetImage(path string) (image.Image, error) {
	c.mu.Lock()
	e, ok := c.images[path]
	if !ok {
		e = &imageEntry{}
		c.images[path] = e
	}
	c.mu.Unlock()

	e.once.Do(func() { e.img, e.err = c.loadImage(path) })
	if e.err != nil {
		c.mu.Lock()
		if c.images[path] == e {
			delete(c.images, path)
		}
		c.mu.Unlock()
		return nil, e.err
	}
	return e.img, nil
}

func parseFontFile(path string) (*opentype.Font, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, faults.Resource("read font %q: %v", path, err)
		}
		data = b
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, faults.Resource("parse font %q: %v", path, err)
	}
	return parsed, nil
}

func loadImageFile(path string) (image.Image, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return downloadImage(path)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, faults.Resource("open image %q: %v", path, err)
	}
	return img, nil
}

func downloadImage(url string) (image.Image, error) {
	client := http.Client{Timeout: httpTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, faults.Resource("download image %q: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, faults.Resource("download image %q: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, faults.Resource("download image %q: %v", url, err)
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, faults.Resource("decode image %q: %v", url, err)
	}
	return img, nil
}
