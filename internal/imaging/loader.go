package imaging

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/shutbox-mcp/internal/report"
)

// ImageCache provides thread-safe caching of decoded game photos.
//
// Images are keyed by the exact path string. Different paths to the same file
// (relative vs absolute) produce separate entries. Cached images stay in memory
// until Evict or Clear is called.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty cache ready for concurrent use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the cached image for path, decoding it from disk on first use.
//
// Supported formats are whatever disintegration/imaging decodes (JPEG, PNG,
// GIF, TIFF, BMP). JPEG EXIF orientation is applied so phone photos of the
// board come out upright, matching the coordinates a detector would report.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes one image from the cache. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// DimensionsResult describes a canvas before and after the renderer's downscale.
type DimensionsResult struct {
	// Width and Height are the source image size in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Scale is the uniform factor applied before painting text (1 = unchanged).
	Scale float64 `json:"scale"`

	// RenderedWidth and RenderedHeight are the annotated output size.
	RenderedWidth  int `json:"rendered_width"`
	RenderedHeight int `json:"rendered_height"`
}

// GetDimensions loads an image and reports its size and the size Annotate
// would produce under layout.
func GetDimensions(cache *ImageCache, path string, layout report.Layout) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := scaledSize(bounds.Dx(), bounds.Dy(), layout.Scale(bounds.Dx(), bounds.Dy()))
	return &DimensionsResult{
		Width:          bounds.Dx(),
		Height:         bounds.Dy(),
		Scale:          layout.Scale(bounds.Dx(), bounds.Dy()),
		RenderedWidth:  w,
		RenderedHeight: h,
	}, nil
}

// scaledSize applies a uniform scale, never going below one pixel.
func scaledSize(width, height int, scale float64) (int, int) {
	if scale >= 1 {
		return width, height
	}
	return max(1, int(float64(width)*scale)), max(1, int(float64(height)*scale))
}
