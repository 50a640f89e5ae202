package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Decoders for image.Decode. fpdf itself only reads PNG, JPEG and GIF,
	// so every logo is re-encoded as PNG before it is registered.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"codeberg.org/go-pdf/fpdf"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const logoName = "codesnack-logo"

// SVG logos are rasterized svgHeight pixels high and at most
// svgMaxWidth pixels wide.
const (
	svgHeight   = 256
	svgMaxWidth = svgHeight * 16
)

// logo is a decoded header image ready for fpdf
type logo struct {
	png    []byte
	width  int
	height int
	format string
}

func decodeLogo(data []byte) (*logo, error) {
	var (
		img    image.Image
		format string
		err    error
	)
	if isSVG(data) {
		img, err = rasterizeSVG(data)
		format = "svg"
	} else {
		img, format, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo: %w", err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("logo has no pixels")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode logo: %w", err)
	}
	return &logo{png: buf.Bytes(), width: b.Dx(), height: b.Dy(), format: format}, nil
}

// draw places the logo in the top-right corner inside the top margin.
func (l *logo) draw(pdf *fpdf.Fpdf, pageWidth, topMargin float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	if pdf.GetImageInfo(logoName) == nil {
		pdf.RegisterImageOptionsReader(logoName, opts, bytes.NewReader(l.png))
	}

	h := topMargin * 0.6
	w := h * float64(l.width) / float64(l.height)
	inset := (topMargin - h) / 2
	pdf.ImageOptions(logoName, pageWidth-w-inset, inset, w, h, false, opts, 0, "")
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}

// rasterizeSVG draws an SVG logo into an RGBA image svgHeight pixels high,
// keeping the view box aspect ratio. View boxes wider than 16:1 are rejected.
func rasterizeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("svg has an empty view box")
	}

	ratio := icon.ViewBox.W / icon.ViewBox.H
	if ratio > svgMaxWidth/svgHeight {
		return nil, fmt.Errorf("svg view box %gx%g is too wide for a logo", icon.ViewBox.W, icon.ViewBox.H)
	}
	h := svgHeight
	w := int(float64(h) * ratio)
	if w < 1 {
		w = 1
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}
