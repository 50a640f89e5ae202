package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/codesnack/codesnack/internal/pagination"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			img.Set(x, y, color.RGBA{R: 255, G: uint8(x * 6), B: 0, A: 255})
		}
	}
	return img
}

func TestRenderPageCount(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		pages int
	}{
		{"empty", "", 1},
		{"short", "Lesson Plan\n\nObjectives", 1},
		{"long", strings.Repeat("line\n", 120), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := pagination.Paginate(tt.text, pagination.DefaultConfig())
			doc, err := NewRenderer().Document(pages, RenderOptions{Title: tt.name})
			if err != nil {
				t.Fatalf("Document() error = %v", err)
			}
			if got := doc.PageCount(); got != tt.pages {
				t.Errorf("PageCount() = %d, want %d", got, tt.pages)
			}
		})
	}
}

func TestRenderWritesPDF(t *testing.T) {
	pages := pagination.Paginate("Study Guide 📚\nwith an emoji", pagination.DefaultConfig())
	var buf bytes.Buffer
	if err := NewRenderer().Render(pages, &buf, RenderOptions{Title: "Study Guide", Creator: "codesnack"}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:8])
	}
	if !bytes.Contains(buf.Bytes(), []byte("%%EOF")) {
		t.Error("output is missing the PDF trailer")
	}
}

func TestRenderFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "dir", "out.pdf")
	pages := pagination.Paginate("hello", pagination.DefaultConfig())
	if err := NewRenderer().RenderFile(pages, out, RenderOptions{}); err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("file is not a PDF")
	}
}

func TestSetLogo(t *testing.T) {
	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, testImage()); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, testImage()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		data   []byte
		format string
	}{
		{"png", pngBuf.Bytes(), "png"},
		{"bmp", bmpBuf.Bytes(), "bmp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer()
			if err := r.SetLogo(tt.data); err != nil {
				t.Fatalf("SetLogo() error = %v", err)
			}
			if r.logo.format != tt.format || r.logo.width != 40 || r.logo.height != 20 {
				t.Errorf("logo = %s %dx%d", r.logo.format, r.logo.width, r.logo.height)
			}

			pages := pagination.Paginate(strings.Repeat("x\n", 60), pagination.DefaultConfig())
			var buf bytes.Buffer
			if err := r.Render(pages, &buf, RenderOptions{}); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte("/Subtype /Image")) {
				t.Error("rendered PDF has no image object")
			}
		})
	}
}

func TestSetLogoSVG(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100">
  <rect x="0" y="0" width="200" height="100" fill="#1f6feb"/>
  <circle cx="100" cy="50" r="30" fill="#ffffff"/>
</svg>`

	r := NewRenderer()
	if err := r.SetLogo([]byte(svg)); err != nil {
		t.Fatalf("SetLogo() error = %v", err)
	}
	if r.logo.format != "svg" || r.logo.width != 2*svgHeight || r.logo.height != svgHeight {
		t.Errorf("logo = %s %dx%d", r.logo.format, r.logo.width, r.logo.height)
	}

	img, err := png.Decode(bytes.NewReader(r.logo.png))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := img.At(10, 10).RGBA(); a == 0 {
		t.Error("rasterized logo is transparent where the rect was drawn")
	}

	if err := r.SetLogo([]byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)); err == nil {
		t.Error("SetLogo() accepted an svg without a view box")
	}
}

func TestSetLogoSVGAspect(t *testing.T) {
	tests := []struct {
		name    string
		viewBox string
		width   int
		wantErr bool
	}{
		{"widest allowed", "0 0 1600 100", svgMaxWidth, false},
		{"tall", "0 0 10 100", svgHeight / 10, false},
		{"degenerate", "0 0 100000 1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="` + tt.viewBox + `"><rect width="10" height="1" fill="#000"/></svg>`
			r := NewRenderer()
			err := r.SetLogo([]byte(svg))
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetLogo() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && r.logo.width != tt.width {
				t.Errorf("width = %d, want %d", r.logo.width, tt.width)
			}
		})
	}
}

func TestSetLogoInvalid(t *testing.T) {
	r := NewRenderer()
	if err := r.SetLogo([]byte("not an image")); err == nil {
		t.Error("SetLogo() accepted garbage")
	}
	if err := r.SetLogo(nil); err != nil || r.logo != nil {
		t.Errorf("SetLogo(nil) = %v, logo %v", err, r.logo)
	}
}

func TestRenderDebug(t *testing.T) {
	var log bytes.Buffer
	r := NewRenderer()
	r.Debug = true
	r.DebugDrawBoxes = true
	r.Log = &log

	pages := pagination.Paginate("plain\nrocket 🚀", pagination.DefaultConfig())
	if _, err := r.Document(pages, RenderOptions{}); err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	out := log.String()
	if !strings.Contains(out, "Rendering 1 pages with Helvetica 12pt") {
		t.Errorf("missing page summary in %q", out)
	}
	if !strings.Contains(out, "Page 1 line 2") {
		t.Errorf("missing encoding warning in %q", out)
	}
}

func TestCoreFont(t *testing.T) {
	tests := map[string]string{
		"":                      "Helvetica",
		"Arial, sans-serif":     "Helvetica",
		"'Times New Roman'":     "Times",
		"serif":                 "Times",
		"Courier New":           "Courier",
		"monospace, whatever":   "Courier",
		"Some Unknown Typeface": "Helvetica",
	}
	for in, want := range tests {
		if got := coreFont(in); got != want {
			t.Errorf("coreFont(%q) = %q, want %q", in, got, want)
		}
	}
}
