package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Image describes one static image file.
type Image struct {
	Name     string
	Width    int
	Height   int
	Variants []Variant
}

// Variant is a resized WebP copy of an Image.
type Variant struct {
	Name  string
	Width int
}

// Manifest indexes the images in a static directory by filename. A nil
// Manifest is valid and empty.
type Manifest struct {
	images map[string]Image
}

var variantPattern = regexp.MustCompile(`^(.+)-(\d+)w\.webp$`)

// Scan reads every image in dir. A missing directory yields an empty
// manifest; files that cannot be decoded are listed without dimensions.
func Scan(fsys fs.FS, dir string) (*Manifest, error) {
	m := &Manifest{images: make(map[string]Image)}

	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	variants := make(map[string][]Variant)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if match := variantPattern.FindStringSubmatch(name); match != nil {
			w, _ := strconv.Atoi(match[2])
			variants[match[1]] = append(variants[match[1]], Variant{Name: name, Width: w})
			continue
		}
		if !isImage(name) {
			continue
		}

		img := Image{Name: name}
		if IsRaster(name) {
			cfg, err := decodeConfig(fsys, path.Join(dir, name))
			if err != nil {
				log.Printf("[ASSETS] could not decode %s: %v", name, err)
			} else {
				img.Width, img.Height = cfg.Width, cfg.Height
			}
		}
		m.images[name] = img
	}

	for name, img := range m.images {
		vs := variants[stem(name)]
		if len(vs) == 0 {
			continue
		}
		sort.Slice(vs, func(i, j int) bool { return vs[i].Width < vs[j].Width })
		img.Variants = vs
		m.images[name] = img
	}
	return m, nil
}

func decodeConfig(fsys fs.FS, name string) (image.Config, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	return cfg, err
}

// Lookup returns the image registered under name.
func (m *Manifest) Lookup(name string) (Image, bool) {
	if m == nil {
		return Image{}, false
	}
	img, ok := m.images[name]
	return img, ok
}

func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.images)
}

// Names returns the image filenames in sorted order.
func (m *Manifest) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.images))
	for name := range m.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRaster reports whether name is an image format we can decode and resize.
func IsRaster(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}

func isImage(name string) bool {
	return IsRaster(name) || strings.EqualFold(path.Ext(name), ".svg")
}

func stem(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// IsVariant reports whether name is a generated WebP variant.
func IsVariant(name string) bool {
	return variantPattern.MatchString(name)
}

// VariantName is the filename of the width-w WebP variant of name.
func VariantName(name string, w int) string {
	return fmt.Sprintf("%s-%dw.webp", stem(name), w)
}

// EncodeVariant scales img down to width (never up) and encodes it as WebP.
func EncodeVariant(img image.Image, width int, quality float32) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, errors.New("empty image")
	}
	w := width
	if w <= 0 || w > bounds.Dx() {
		w = bounds.Dx()
	}
	h := bounds.Dy() * w / bounds.Dx()
	if h == 0 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Lossless: false, Quality: quality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}
