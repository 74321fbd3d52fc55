// Package export writes the informational pages out as a static site.
package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/wayfarer-travel/site/assets"
	"github.com/wayfarer-travel/site/config"
	"github.com/wayfarer-travel/site/page"
	"github.com/wayfarer-travel/site/sitemap"
	"github.com/wayfarer-travel/site/ui"
)

const variantQuality = 75

// Options control a static export.
type Options struct {
	Registry *page.Registry
	// Static is copied into OutDir before pages are written. May be nil.
	Static  fs.FS
	OutDir  string
	BaseURL string
	// Widths are the WebP variant widths generated for raster images.
	Widths []int
	// Now stamps the sitemap. Defaults to time.Now.
	Now func() time.Time
}

// Result summarises what Site wrote.
type Result struct {
	Pages    []string
	Files    int
	Variants int
}

// Site exports every page in opts.Registry to opts.OutDir as
// <id>/index.html along with sitemap.xml and the static assets.
func Site(ctx context.Context, opts Options) (*Result, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("export: registry is required")
	}
	if opts.OutDir == "" {
		return nil, fmt.Errorf("export: output directory is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", opts.OutDir, err)
	}

	res := &Result{}
	if opts.Static != nil {
		n, err := copyTree(ctx, opts.Static, opts.OutDir)
		if err != nil {
			return nil, err
		}
		res.Files = n
	}

	imageDir := filepath.Join(opts.OutDir, config.ImageDir)
	n, err := writeVariants(ctx, imageDir, opts.Widths)
	if err != nil {
		return nil, err
	}
	res.Variants = n

	manifest, err := assets.Scan(os.DirFS(opts.OutDir), config.ImageDir)
	if err != nil {
		return nil, err
	}
	renderer := ui.NewRenderer(manifest)

	for _, p := range opts.Registry.Pages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := writePage(renderer, opts.OutDir, p); err != nil {
			return nil, err
		}
		res.Pages = append(res.Pages, p.ID)
	}

	set := sitemap.Build(opts.Registry, opts.BaseURL, opts.Now().UTC().Format("2006-01-02"))
	data, err := sitemap.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	if err := os.WriteFile(filepath.Join(opts.OutDir, "sitemap.xml"), data, 0o644); err != nil {
		return nil, err
	}

	log.Printf("[EXPORT] wrote %d pages, %d files, %d variants to %s",
		len(res.Pages), res.Files, res.Variants, opts.OutDir)
	return res, nil
}

func writePage(r *ui.Renderer, outDir string, p page.Page) error {
	if !page.ValidID(p.ID) {
		return fmt.Errorf("export %q: %w", p.ID, page.ErrInvalidID)
	}
	name := filepath.Join(outDir, filepath.FromSlash(PagePath(p.ID)))
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(name), err)
	}
	var buf bytes.Buffer
	if err := r.Document(p).Render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", p.ID, err)
	}
	return os.WriteFile(name, buf.Bytes(), 0o644)
}

// copyTree copies every regular file in src to dst, keeping paths.
func copyTree(ctx context.Context, src fs.FS, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(src, name, target); err != nil {
			return fmt.Errorf("copy %s: %w", name, err)
		}
		count++
		return nil
	})
	return count, err
}

func copyFile(src fs.FS, name, target string) error {
	in, err := src.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// writeVariants generates the WebP variants for every raster image in dir
// that is wider than the variant. Existing variants are left alone.
func writeVariants(ctx context.Context, dir string, widths []int) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", dir, err)
	}

	count := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !assets.IsRaster(name) || assets.IsVariant(name) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return count, err
		}

		img, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("[EXPORT] skipping %s: %v", name, err)
			continue
		}
		for _, w := range widths {
			if w <= 0 || w >= img.Bounds().Dx() {
				continue
			}
			variant := filepath.Join(dir, assets.VariantName(name, w))
			if _, err := os.Stat(variant); err == nil {
				continue
			}
			data, err := assets.EncodeVariant(img, w, variantQuality)
			if err != nil {
				return count, fmt.Errorf("%s at %dw: %w", name, w, err)
			}
			if err := os.WriteFile(variant, data, 0o644); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func decodeFile(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// PagePath is the path a page is exported to, relative to the output root.
func PagePath(id string) string {
	return path.Join(id, "index.html")
}
