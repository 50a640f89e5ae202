package api

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/codesnack/codesnack/internal/cleanup"
	"github.com/codesnack/codesnack/internal/pagination"
	"github.com/codesnack/codesnack/internal/render/pdf"
	"github.com/codesnack/codesnack/internal/res"
)

// Page is a finished page of positioned lines
type Page = pagination.Page

// Line is a physical line on a page
type Line = pagination.Line

// Converter is the main API for converting generated text to PDF
type Converter struct {
	options Options
	loader  *res.Loader
}

// New creates a new converter with default options
func New() *Converter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new converter with the specified options
func NewWithOptions(options Options) *Converter {
	return &Converter{
		options: options,
		loader:  newLoader("", options.ResourcePaths),
	}
}

func newLoader(base string, paths []string) *res.Loader {
	l := res.NewLoader(base)
	for _, p := range paths {
		l.AddSearchPath(p)
	}
	return l
}

// Options returns a copy of the converter's options
func (c *Converter) Options() Options {
	return c.options
}

// Clean prepares model output for printing: emphasis markers are stripped,
// or the whole text is rendered from markdown when Markdown is set.
func (c *Converter) Clean(text string) string {
	if c.options.Markdown {
		return cleanup.MarkdownToText(text)
	}
	return cleanup.StripEmphasis(text)
}

// Paginate cleans text and breaks it into pages
func (c *Converter) Paginate(text string) []*Page {
	width, height := c.options.PageSize()

	engine := pagination.NewEngine()
	engine.SetOptions(pagination.Options{
		PageWidth:          width,
		PageHeight:         height,
		MarginTop:          c.options.MarginTop,
		MarginBottom:       c.options.MarginBottom,
		LeftMarginFraction: c.options.LeftMarginFraction,
		FontSize:           c.options.FontSize,
		LineSpacing:        c.options.LineSpacing,
		MaxCharsPerLine:    c.options.MaxCharsPerLine,
		ExplicitMargins:    true,
		Debug:              c.options.Debug,
		Log:                c.options.Log,
	})
	return engine.Paginate(c.Clean(text))
}

// Convert converts text to PDF and writes the result to the specified writer
func (c *Converter) Convert(text string, output io.Writer) error {
	renderer, err := c.renderer(c.loader)
	if err != nil {
		return err
	}
	if err := renderer.Render(c.Paginate(text), output, c.renderOptions()); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// ConvertToFile converts text to PDF and writes the result to the specified file
func (c *Converter) ConvertToFile(text, outputPath string) error {
	return c.convertToFile(text, outputPath, c.loader)
}

func (c *Converter) convertToFile(text, outputPath string, loader *res.Loader) error {
	renderer, err := c.renderer(loader)
	if err != nil {
		return err
	}
	if err := renderer.RenderFile(c.Paginate(text), outputPath, c.renderOptions()); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// ConvertFile converts a text or markdown file (or a data: URL) to PDF and
// writes the result to the specified file. Relative logo paths resolve
// against the input file's directory.
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	text, loader, err := c.loadInput(inputPath)
	if err != nil {
		return err
	}
	return c.convertToFile(text, outputPath, loader)
}

// ConvertFileToText writes the cleaned text of a text or markdown file (or
// a data: URL) to the specified file.
func (c *Converter) ConvertFileToText(inputPath, outputPath string) (err error) {
	text, _, err := c.loadInput(inputPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	return c.WriteText(text, f)
}

// loadInput reads the input through a loader based at the input file, so
// the converter itself is never modified.
func (c *Converter) loadInput(inputPath string) (string, *res.Loader, error) {
	ref, base := inputPath, ""
	if !strings.HasPrefix(inputPath, "data:") {
		absPath, err := filepath.Abs(inputPath)
		if err != nil {
			return "", nil, fmt.Errorf("failed to resolve input path: %w", err)
		}
		ref, base = absPath, absPath
	}
	loader := newLoader(base, c.options.ResourcePaths)
	resource, err := loader.LoadText(ref)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return resource.GetString(), loader, nil
}

// ConvertBytes converts text bytes to PDF bytes
func (c *Converter) ConvertBytes(text []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Convert(string(text), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteText writes the cleaned text for a plain-text download
func (c *Converter) WriteText(text string, output io.Writer) error {
	if _, err := io.WriteString(output, c.Clean(text)); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}

func (c *Converter) renderer(loader *res.Loader) (*pdf.Renderer, error) {
	r := pdf.NewRenderer()
	r.FontFamily = c.options.FontFamily
	r.FontSize = c.options.FontSize
	r.Debug = c.options.Debug
	r.DebugDrawBoxes = c.options.DebugDrawBoxes
	r.Log = c.options.Log

	if c.options.Logo != "" {
		if loader == nil {
			loader = newLoader("", c.options.ResourcePaths)
		}
		logo, err := loader.LoadImage(c.options.Logo)
		if err != nil {
			return nil, fmt.Errorf("failed to load logo: %w", err)
		}
		if err := r.SetLogo(logo.Data); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (c *Converter) renderOptions() pdf.RenderOptions {
	return pdf.RenderOptions{
		Title:        c.options.Title,
		Author:       c.options.Author,
		Subject:      c.options.Subject,
		Keywords:     c.options.Keywords,
		Creator:      "codesnack",
		Producer:     "codesnack",
		TopMargin:    c.options.MarginTop,
		BottomMargin: c.options.MarginBottom,
	}
}

// WithOptions returns a new converter with the specified options
func (c *Converter) WithOptions(options Options) *Converter {
	return NewWithOptions(options)
}

// WithOption returns a new converter with the specified option set
func (c *Converter) WithOption(option Option) *Converter {
	newOptions := c.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// AddResourcePath adds a path to search for resources
func (c *Converter) AddResourcePath(path string) *Converter {
	newOptions := c.options
	newOptions.ResourcePaths = append(append([]string{}, newOptions.ResourcePaths...), path)
	return NewWithOptions(newOptions)
}

// SetPageSize sets the page size
func (c *Converter) SetPageSize(width, height float64) *Converter {
	return c.WithOption(WithPageSize(width, height))
}

// SetMargins sets the top and bottom margins
func (c *Converter) SetMargins(top, bottom float64) *Converter {
	return c.WithOption(WithMargins(top, bottom))
}

// SetMaxCharsPerLine sets the wrapping budget
func (c *Converter) SetMaxCharsPerLine(n int) *Converter {
	return c.WithOption(WithMaxCharsPerLine(n))
}

// SetMarkdown enables full markdown conversion
func (c *Converter) SetMarkdown(enabled bool) *Converter {
	return c.WithOption(WithMarkdown(enabled))
}

// SetDebug sets the debug mode
func (c *Converter) SetDebug(debug bool) *Converter {
	return c.WithOption(WithDebug(debug))
}

// SetTitle sets the document title
func (c *Converter) SetTitle(title string) *Converter {
	return c.WithOption(WithTitle(title))
}

// SetAuthor sets the document author
func (c *Converter) SetAuthor(author string) *Converter {
	return c.WithOption(WithAuthor(author))
}

// SetSubject sets the document subject
func (c *Converter) SetSubject(subject string) *Converter {
	return c.WithOption(WithSubject(subject))
}

// SetKeywords sets the document keywords
func (c *Converter) SetKeywords(keywords string) *Converter {
	return c.WithOption(WithKeywords(keywords))
}

// SetLogo sets the header logo
func (c *Converter) SetLogo(ref string) *Converter {
	return c.WithOption(WithLogo(ref))
}
