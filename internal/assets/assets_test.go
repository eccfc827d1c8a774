package assets

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/justyntemme/folderlike/internal/catalog"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG(%s): %v", path, err)
	}
}

func TestStoreIndexesDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(dir, "cover.png"), 30, 40)
	writePNG(t, filepath.Join(sub, "greek.png"), 10, 10)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(dir, catalog.Default().All())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for _, ref := range []string{"cover", "greek"} {
		if _, ok := s.Path(ref); !ok {
			t.Errorf("Path(%q): expected indexed file", ref)
		}
	}
	if _, ok := s.Path("notes"); ok {
		t.Error("non-image files should not be indexed")
	}

	img, ok := s.Lookup("cover")
	if !ok {
		t.Fatal("Lookup(cover) failed")
	}
	if got := img.Bounds().Size(); got != image.Pt(30, 40) {
		t.Errorf("Lookup(cover) size: expected 30x40, got %v", got)
	}
}

func TestIndexPrefersPNG(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "egypt.png"), 5, 5)
	if err := os.WriteFile(filepath.Join(dir, "egypt.jpg"), []byte("not a jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := indexDir(dir)
	if err != nil {
		t.Fatalf("indexDir: %v", err)
	}
	if filepath.Ext(files["egypt"]) != ".png" {
		t.Errorf("expected png to win, got %s", files["egypt"])
	}
}

func TestStorePlaceholderFallback(t *testing.T) {
	dir := t.TempDir()
	// A corrupt file must fall back to the placeholder.
	if err := os.WriteFile(filepath.Join(dir, "cover4.png"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(dir, catalog.Default().All())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for _, b := range catalog.Default().All() {
		img, ok := s.Lookup(b.ImageRef)
		if !ok {
			t.Errorf("Lookup(%q): catalog covers must always resolve", b.ImageRef)
			continue
		}
		if got := img.Bounds().Size(); b.ImageRef != "cover" && got != image.Pt(PlaceholderWidth, PlaceholderHeight) {
			t.Errorf("placeholder %q size: got %v", b.ImageRef, got)
		}
	}

	if _, ok := s.Lookup("missing"); ok {
		t.Error("unknown ref without a file should not resolve")
	}
}

func TestStoreWithoutDirectory(t *testing.T) {
	s, err := NewStore("", catalog.Default().All())
	if err != nil {
		t.Fatalf("NewStore(\"\"): %v", err)
	}
	if _, ok := s.Lookup("lightning"); !ok {
		t.Error("placeholder expected without a cover directory")
	}
}

func TestRenderPlaceholder(t *testing.T) {
	b := catalog.Book{Title: "Thirst", Author: "Varsha Bajaj", ImageRef: "cover4"}
	img := RenderPlaceholder(b, 100, 150)
	if got := img.Bounds().Size(); got != image.Pt(100, 150) {
		t.Fatalf("size: expected 100x150, got %v", got)
	}

	// Top and bottom of the gradient differ.
	r0, g0, b0, _ := img.At(99, 0).RGBA()
	r1, g1, b1, _ := img.At(99, 149).RGBA()
	if r0 == r1 && g0 == g1 && b0 == b1 {
		t.Error("placeholder should be a vertical gradient")
	}
}

func TestParseHex(t *testing.T) {
	testCases := []struct {
		in       string
		expected color.NRGBA
	}{
		{"#6DC4DD", color.NRGBA{R: 0x6D, G: 0xC4, B: 0xDD, A: 255}},
		{"#000000", color.NRGBA{A: 255}},
		{"6DC4DD", color.NRGBA{A: 255}},
		{"#zzzzzz", color.NRGBA{A: 255}},
		{"", color.NRGBA{A: 255}},
	}
	for _, tc := range testCases {
		if got := parseHex(tc.in); got != tc.expected {
			t.Errorf("parseHex(%q): expected %v, got %v", tc.in, tc.expected, got)
		}
	}
}

type fakeResolver map[string]image.Image

func (f fakeResolver) Lookup(ref string) (image.Image, bool) {
	img, ok := f[ref]
	return img, ok
}

func TestCacheLoadAndEvict(t *testing.T) {
	r := fakeResolver{
		"a": image.NewRGBA(image.Rect(0, 0, 10, 10)),
		"b": image.NewRGBA(image.Rect(0, 0, 10, 10)),
		"c": image.NewRGBA(image.Rect(0, 0, 10, 10)),
	}
	c := NewCache(r, 2, 0)
	defer c.Stop()

	if !c.Load("a") || !c.Load("b") {
		t.Fatal("Load failed")
	}
	// Touch a so b is the eviction candidate.
	if _, _, ok := c.Get("a"); !ok {
		t.Fatal("Get(a) missing")
	}
	c.Load("c")

	if c.Len() != 2 {
		t.Errorf("Len(): expected 2, got %d", c.Len())
	}
	if _, _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, _, ok := c.Get("a"); !ok {
		t.Error("a should still be cached")
	}
	if c.Load("missing") {
		t.Error("Load(missing) should fail")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear: expected 0, got %d", c.Len())
	}
}

// gatedResolver blocks each Lookup until release is closed.
type gatedResolver struct {
	started chan struct{}
	release chan struct{}
}

func (g gatedResolver) Lookup(ref string) (image.Image, bool) {
	g.started <- struct{}{}
	<-g.release
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), true
}

func TestCacheClearDropsInflightLoad(t *testing.T) {
	r := gatedResolver{started: make(chan struct{}, 1), release: make(chan struct{})}
	c := NewCache(r, 4, 0)
	defer c.Stop()

	done := make(chan bool)
	go func() { done <- c.Load("cover") }()

	<-r.started
	c.Clear()
	close(r.release)

	if <-done {
		t.Error("Load started before Clear should report false")
	}
	if c.Len() != 0 {
		t.Errorf("Len() after stale load: expected 0, got %d", c.Len())
	}

	// Loads after the clear are kept.
	if !c.Load("cover") {
		t.Error("Load after Clear should succeed")
	}
	if _, _, ok := c.Get("cover"); !ok {
		t.Error("cover should be cached after a fresh load")
	}
}

func TestCacheScale(t *testing.T) {
	c := NewCache(fakeResolver{}, 4, 100)
	defer c.Stop()

	testCases := []struct {
		w, h     int
		expected image.Point
	}{
		{50, 80, image.Pt(50, 80)},
		{400, 200, image.Pt(100, 50)},
		{200, 400, image.Pt(50, 100)},
	}
	for _, tc := range testCases {
		got := c.scale(image.NewRGBA(image.Rect(0, 0, tc.w, tc.h))).Bounds().Size()
		if got != tc.expected {
			t.Errorf("scale(%dx%d): expected %v, got %v", tc.w, tc.h, tc.expected, got)
		}
	}
}

func TestCacheRequestLoad(t *testing.T) {
	r := fakeResolver{"cover": image.NewRGBA(image.Rect(0, 0, 300, 300))}
	c := NewCache(r, 4, 64)
	defer c.Stop()

	loaded := make(chan string, 1)
	c.OnLoad = func(ref string) { loaded <- ref }
	c.RequestLoad("cover")

	select {
	case ref := <-loaded:
		if ref != "cover" {
			t.Errorf("OnLoad: expected cover, got %s", ref)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for background load")
	}

	_, size, ok := c.Get("cover")
	if !ok {
		t.Fatal("cover not cached after load")
	}
	if size != image.Pt(300, 300) {
		t.Errorf("original size: expected 300x300, got %v", size)
	}
}

func TestWatcherReindexes(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, catalog.Default().All())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	w, err := s.Watch(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if _, ok := s.Path("egypt"); ok {
		t.Fatal("egypt should not be indexed yet")
	}
	writePNG(t, filepath.Join(dir, "egypt.png"), 8, 8)

	select {
	case <-w.Notify():
	case <-time.After(3 * time.Second):
		t.Fatal("no reindex notification after adding a cover")
	}
	if _, ok := s.Path("egypt"); !ok {
		t.Error("egypt should be indexed after the watcher fired")
	}
}

func TestWatchWithoutDirectory(t *testing.T) {
	s, _ := NewStore("", nil)
	if _, err := s.Watch(0); err == nil {
		t.Error("Watch with no directory should fail")
	}
}

// waitIndexed drains watcher notifications until ref is indexed.
func waitIndexed(t *testing.T, s *Store, w *Watcher, ref string) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		if _, ok := s.Path(ref); ok {
			return
		}
		select {
		case <-w.Notify():
		case <-deadline:
			t.Fatalf("%s was not indexed after the watcher fired", ref)
		}
	}
}

func TestWatcherFollowsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "history")
	if err := os.MkdirAll(existing, 0o755); err != nil {
		t.Fatal(err)
	}
	s, err := NewStore(dir, catalog.Default().All())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	w, err := s.Watch(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writePNG(t, filepath.Join(existing, "greek.png"), 8, 8)
	waitIndexed(t, s, w, "greek")

	added := filepath.Join(dir, "crafts")
	if err := os.MkdirAll(added, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(added, "bracelets.png"), 8, 8)
	waitIndexed(t, s, w, "bracelets")
}

func TestStoreFile(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "cover.png"), 12, 18)
	if err := os.WriteFile(filepath.Join(dir, "greek.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := NewStore(dir, catalog.Default().All())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	img, err := s.File("cover")
	if err != nil {
		t.Fatalf("File(cover): %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(12, 18) {
		t.Errorf("File(cover) size: expected 12x18, got %v", got)
	}
	if _, err := s.File("greek"); err == nil {
		t.Error("File(greek): expected decode error")
	}
	if _, err := s.File("egypt"); err == nil {
		t.Error("File(egypt): expected error for a ref with no file")
	}
}
