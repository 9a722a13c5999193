// Package media resolves the natural size of image and sprite sources
// for layout. Only the header of each file is decoded; pixels are the
// drawing backend's problem.
package media

import (
	"image"
	"io/fs"
	"sync"

	// Registered formats beyond the stdlib trio.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Sizer reports the natural pixel size of a named source.
type Sizer interface {
	NaturalSize(source string) (width, height float64, ok bool)
}

// DecodeSizer resolves sources against a filesystem and reads image
// headers with image.DecodeConfig. Results are cached per source;
// failures are cached too, so a missing asset costs one open.
type DecodeSizer struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[string]naturalSize
}

type naturalSize struct {
	w, h float64
	ok   bool
}

// NewDecodeSizer creates a sizer reading from the given filesystem.
func NewDecodeSizer(fsys fs.FS) *DecodeSizer {
	return &DecodeSizer{
		fsys:  fsys,
		cache: make(map[string]naturalSize),
	}
}

// NaturalSize implements Sizer.
func (d *DecodeSizer) NaturalSize(source string) (float64, float64, bool) {
	d.mu.Lock()
	if ns, hit := d.cache[source]; hit {
		d.mu.Unlock()
		return ns.w, ns.h, ns.ok
	}
	d.mu.Unlock()

	ns := d.decode(source)

	d.mu.Lock()
	d.cache[source] = ns
	d.mu.Unlock()
	return ns.w, ns.h, ns.ok
}

func (d *DecodeSizer) decode(source string) naturalSize {
	f, err := d.fsys.Open(source)
	if err != nil {
		return naturalSize{}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return naturalSize{}
	}
	return naturalSize{w: float64(cfg.Width), h: float64(cfg.Height), ok: true}
}

// Invalidate drops a cached entry, for assets replaced on disk.
func (d *DecodeSizer) Invalidate(source string) {
	d.mu.Lock()
	delete(d.cache, source)
	d.mu.Unlock()
}

// Static serves fixed sizes from a map, for tests and embedded assets
// whose dimensions are known ahead of time.
type Static map[string][2]float64

// NaturalSize implements Sizer.
func (s Static) NaturalSize(source string) (float64, float64, bool) {
	dims, ok := s[source]
	if !ok {
		return 0, 0, false
	}
	return dims[0], dims[1], true
}
