package assets

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/justyntemme/folderlike/internal/catalog"
)

// Cover gradients, picked per reference.
var palette = [][2]string{
	{"#6DC4DD", "#111B1C"},
	{"#F2A65A", "#3B1F0E"},
	{"#9B8AE6", "#1B1433"},
	{"#7FCB8A", "#0F2A16"},
	{"#E5727A", "#2E0D10"},
	{"#E8D36B", "#2B2508"},
}

func paletteFor(ref string) [2]string {
	h := fnv.New32a()
	h.Write([]byte(ref))
	return palette[h.Sum32()%uint32(len(palette))]
}

// RenderPlaceholder draws a gradient cover with the book's title and author.
func RenderPlaceholder(b catalog.Book, w, h int) image.Image {
	dc := gg.NewContext(w, h)
	colors := paletteFor(b.ImageRef)

	grad := gg.NewLinearGradient(0, 0, 0, float64(h))
	grad.AddColorStop(0, parseHex(colors[0]))
	grad.AddColorStop(1, parseHex(colors[1]))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	margin := 12.0
	dc.DrawStringWrapped(b.Title, margin, margin, 0, 0, float64(w)-2*margin, 1.4, gg.AlignLeft)
	dc.SetRGBA(1, 1, 1, 0.8)
	dc.DrawStringWrapped(b.Author, margin, float64(h)-margin, 0, 1, float64(w)-2*margin, 1.4, gg.AlignLeft)

	return dc.Image()
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parseHex reads a "#RRGGBB" color; malformed input gives opaque black.
func parseHex(s string) color.NRGBA {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{A: 255}
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
