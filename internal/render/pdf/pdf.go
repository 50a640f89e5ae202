package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/codesnack/codesnack/internal/pagination"
	"github.com/codesnack/codesnack/internal/text"
)

// Renderer handles rendering to PDF
type Renderer struct {
	// FontFamily is one of the PDF core fonts (Helvetica, Times, Courier)
	FontFamily string
	FontSize   float64
	// Debug enables verbose logging
	Debug bool
	// DebugDrawBoxes draws the left and bottom margin guides on every page
	DebugDrawBoxes bool
	// Log receives debug output; stdout when nil
	Log io.Writer

	logo *logo
}

// RenderOptions contains options for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string

	// TopMargin is the band above the first baseline, used for the logo
	TopMargin float64
	// BottomMargin is only used for debug guides
	BottomMargin float64
}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{
		FontFamily: "Helvetica",
		FontSize:   pagination.DefaultFontSize,
	}
}

// SetLogo decodes an image (PNG, JPEG, GIF, BMP, TIFF, WebP or SVG) to be drawn
// in the header of the first page. Nil data removes the logo.
func (r *Renderer) SetLogo(data []byte) error {
	if data == nil {
		r.logo = nil
		return nil
	}
	l, err := decodeLogo(data)
	if err != nil {
		return err
	}
	r.logo = l
	r.debugf("Loaded %s logo %dx%d\n", l.format, l.width, l.height)
	return nil
}

// Document lays the pages out on an fpdf document without writing it.
// Every page, including an empty one, becomes one PDF page.
func (r *Renderer) Document(pages []*pagination.Page, options RenderOptions) (*fpdf.Fpdf, error) {
	family := coreFont(r.FontFamily)
	size := r.FontSize
	if size <= 0 {
		size = pagination.DefaultFontSize
	}
	topMargin := options.TopMargin
	if topMargin <= 0 {
		topMargin = pagination.DefaultTopMargin
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetProducer(options.Producer, true)

	r.debugf("Rendering %d pages with %s %.0fpt\n", len(pages), family, size)
	for _, page := range pages {
		// Pages carry their own size, so portrait is always passed and
		// landscape pages simply arrive wider than tall.
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		pdf.SetFont(family, "", size)
		pdf.SetTextColor(0, 0, 0)

		if page.Number == 1 && r.logo != nil {
			r.logo.draw(pdf, page.Width, topMargin)
		}

		for i, line := range page.Lines {
			if line.Text == "" {
				continue
			}
			if r.Debug && !text.Encodable(line.Text) {
				r.debugf("Page %d line %d: replacing characters the core fonts cannot show\n", page.Number, i+1)
			}
			// Lines are positioned from the bottom edge, fpdf measures from the top.
			pdf.Text(line.X, page.Height-line.Y, text.EncodeCP1252(line.Text))
		}

		if r.DebugDrawBoxes {
			r.drawGuides(pdf, page, options)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to build PDF: %w", err)
	}
	return pdf, nil
}

// Render renders pages as a PDF to w
func (r *Renderer) Render(pages []*pagination.Page, w io.Writer, options RenderOptions) error {
	pdf, err := r.Document(pages, options)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// RenderFile renders pages to a PDF file, creating its directory if needed
func (r *Renderer) RenderFile(pages []*pagination.Page, outputPath string, options RenderOptions) error {
	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	pdf, err := r.Document(pages, options)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(outputPath)
}

// drawGuides outlines the left margin and the bottom margin
func (r *Renderer) drawGuides(pdf *fpdf.Fpdf, page *pagination.Page, options RenderOptions) {
	bottom := options.BottomMargin
	if bottom <= 0 {
		bottom = pagination.DefaultBottomMargin
	}
	pdf.SetLineWidth(0.5)
	pdf.SetDrawColor(200, 0, 0)
	pdf.Line(0, page.Height-bottom, page.Width, page.Height-bottom)

	if len(page.Lines) > 0 {
		x := page.Lines[0].X
		pdf.SetDrawColor(0, 0, 200)
		pdf.Line(x, 0, x, page.Height)
	}
}

// coreFont maps common family names onto the PDF core fonts
func coreFont(family string) string {
	first := strings.TrimSpace(strings.Split(family, ",")[0])
	first = strings.Trim(first, "'\"")

	switch strings.ToLower(first) {
	case "times", "times new roman", "serif":
		return "Times"
	case "courier", "courier new", "monospace":
		return "Courier"
	default:
		return "Helvetica"
	}
}

func (r *Renderer) debugf(format string, args ...interface{}) {
	if !r.Debug {
		return
	}
	w := r.Log
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, format, args...)
}
