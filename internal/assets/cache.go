package assets

import (
	"container/list"
	"image"
	"sync"

	"gioui.org/op/paint"
	"golang.org/x/image/draw"

	"github.com/justyntemme/folderlike/internal/debug"
)

// Cache is an LRU of decoded, downscaled covers ready for painting. Covers
// are resolved on a background goroutine; OnLoad is called after each one is
// stored so the window can redraw.
type Cache struct {
	mu        sync.RWMutex
	entries   map[string]*coverEntry
	lru       *list.List // front = most recent
	gen       uint64     // bumped by Clear; loads started earlier are dropped
	maxSize   int
	maxPixels int

	resolver Resolver
	OnLoad   func(ref string)

	pendingMu sync.Mutex
	pending   map[string]bool
	loadChan  chan string
	stopChan  chan struct{}
	stopOnce  sync.Once
}

type coverEntry struct {
	ref     string
	op      paint.ImageOp
	size    image.Point // size before scaling
	element *list.Element
}

// NewCache starts a cache in front of r holding at most maxEntries covers no
// larger than maxPixels on either side.
func NewCache(r Resolver, maxEntries, maxPixels int) *Cache {
	c := &Cache{
		entries:   make(map[string]*coverEntry),
		lru:       list.New(),
		maxSize:   maxEntries,
		maxPixels: maxPixels,
		resolver:  r,
		pending:   make(map[string]bool),
		loadChan:  make(chan string, 32),
		stopChan:  make(chan struct{}),
	}
	go c.backgroundLoader()
	return c
}

// Get returns the cached cover for ref.
func (c *Cache) Get(ref string) (paint.ImageOp, image.Point, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[ref]
	if !ok {
		return paint.ImageOp{}, image.Point{}, false
	}
	c.lru.MoveToFront(e.element)
	return e.op, e.size, true
}

// RequestLoad queues ref for background loading unless it is cached or
// already queued. Requests are dropped when the queue is full.
func (c *Cache) RequestLoad(ref string) {
	c.mu.RLock()
	_, cached := c.entries[ref]
	c.mu.RUnlock()
	if cached {
		return
	}

	c.pendingMu.Lock()
	if c.pending[ref] {
		c.pendingMu.Unlock()
		return
	}
	c.pending[ref] = true
	c.pendingMu.Unlock()

	select {
	case c.loadChan <- ref:
	default:
		c.pendingMu.Lock()
		delete(c.pending, ref)
		c.pendingMu.Unlock()
	}
}

// Load resolves ref synchronously and stores it.
func (c *Cache) Load(ref string) bool {
	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	img, ok := c.resolver.Lookup(ref)
	if !ok {
		debug.Log(debug.ASSETS, "cache: no cover for %q", ref)
		return false
	}
	orig := img.Bounds().Size()
	return c.put(ref, paint.NewImageOp(c.scale(img)), orig, gen)
}

// Clear drops every cached cover.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*coverEntry)
	c.lru = list.New()
	c.gen++
	c.mu.Unlock()

	c.pendingMu.Lock()
	c.pending = make(map[string]bool)
	c.pendingMu.Unlock()

	debug.Log(debug.ASSETS, "cache: cleared")
}

// Stop shuts the background loader down. It is safe to call more than once.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
}

// Len returns the number of cached covers.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) backgroundLoader() {
	for {
		select {
		case <-c.stopChan:
			return
		case ref := <-c.loadChan:
			ok := c.Load(ref)
			c.pendingMu.Lock()
			delete(c.pending, ref)
			c.pendingMu.Unlock()
			if ok && c.OnLoad != nil {
				c.OnLoad(ref)
			}
		}
	}
}

// scale shrinks src to fit within maxPixels, keeping its aspect ratio.
func (c *Cache) scale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if c.maxPixels <= 0 || (w <= c.maxPixels && h <= c.maxPixels) {
		return src
	}

	var f float64
	if w > h {
		f = float64(c.maxPixels) / float64(w)
	} else {
		f = float64(c.maxPixels) / float64(h)
	}
	nw, nh := max(1, int(float64(w)*f)), max(1, int(float64(h)*f))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// put stores a cover decoded during generation gen. It reports false when
// the cache was cleared since then.
func (c *Cache) put(ref string, op paint.ImageOp, size image.Point, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		debug.Log(debug.ASSETS, "cache: dropped stale %s", ref)
		return false
	}

	if e, ok := c.entries[ref]; ok {
		e.op, e.size = op, size
		c.lru.MoveToFront(e.element)
		return true
	}

	for c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		old := oldest.Value.(*coverEntry)
		delete(c.entries, old.ref)
		c.lru.Remove(oldest)
		debug.Log(debug.ASSETS, "cache: evicted %s", old.ref)
	}

	e := &coverEntry{ref: ref, op: op, size: size}
	e.element = c.lru.PushFront(e)
	c.entries[ref] = e
	return true
}
