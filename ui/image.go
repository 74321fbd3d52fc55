package ui

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/wayfarer-travel/site/config"
	"github.com/wayfarer-travel/site/page"
)

func imageURL(name string) string {
	return "/" + path.Join(config.ImageDir, name)
}

// image renders an <img> for img. When the manifest knows the file it adds
// width and height, and WebP variants turn it into a <picture>. Unknown
// files still render so a missing asset only shows as a broken image.
func (r *Renderer) image(img page.Image, class string, eager bool) g.Node {
	attrs := []g.Node{
		Src(imageURL(img.Src)),
		Alt(img.Alt),
		Class(class),
	}
	if !eager {
		attrs = append(attrs, g.Attr("loading", "lazy"))
	}

	info, ok := r.assets.Lookup(img.Src)
	if ok && info.Width > 0 && info.Height > 0 {
		attrs = append(attrs,
			g.Attr("width", strconv.Itoa(info.Width)),
			g.Attr("height", strconv.Itoa(info.Height)),
		)
	}
	if !ok || len(info.Variants) == 0 {
		return Img(attrs...)
	}

	srcset := make([]string, 0, len(info.Variants))
	for _, v := range info.Variants {
		srcset = append(srcset, fmt.Sprintf("%s %dw", imageURL(v.Name), v.Width))
	}
	return g.El("picture",
		g.El("source",
			Type("image/webp"),
			g.Attr("srcset", strings.Join(srcset, ", ")),
		),
		Img(attrs...),
	)
}
