// file: internals/client/prep.go
package client

import (
	"bytes"
	"image"
	"path"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

/* =========================
   Optional image prep before upload: downscale + re-encode as lossy
   WebP. Phone photos easily blow the 5 MB ceiling; prepping them first
   keeps the blob store small without touching the server.
   ========================= */

type PrepOptions struct {
	MaxWidth  int     // 0 = no downscale
	MaxHeight int
	Quality   float32 // webp quality, default 80
}

func DefaultPrepOptions() PrepOptions {
	return PrepOptions{MaxWidth: 1280, MaxHeight: 1280, Quality: 80}
}

// PrepareWebP decodes a picked jpeg/png/webp image, downscales it to fit
// opt.MaxWidth x opt.MaxHeight (aspect kept) and re-encodes as WebP. The
// returned file carries a .webp name.
func PrepareWebP(f PickedFile, opt PrepOptions) (PickedFile, error) {
	img, err := decodePicked(f)
	if err != nil {
		return PickedFile{}, err
	}

	if opt.MaxWidth > 0 || opt.MaxHeight > 0 {
		w, h := opt.MaxWidth, opt.MaxHeight
		if w <= 0 {
			w = h
		}
		if h <= 0 {
			h = w
		}
		b := img.Bounds()
		if b.Dx() > w || b.Dy() > h {
			img = imaging.Fit(img, w, h, imaging.Lanczos)
		}
	}

	q := opt.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
		return PickedFile{}, err
	}

	name := strings.TrimSuffix(f.Name, path.Ext(f.Name)) + ".webp"
	return PickedFile{Name: name, Data: buf.Bytes(), Modified: f.Modified}, nil
}

func decodePicked(f PickedFile) (image.Image, error) {
	mt := mimetype.Detect(f.Data)
	if mt.Is("image/webp") {
		return webp.Decode(bytes.NewReader(f.Data))
	}
	// imaging handles jpeg and png.
	return imaging.Decode(bytes.NewReader(f.Data))
}
