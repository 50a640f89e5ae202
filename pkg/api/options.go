package api

import (
	"io"

	"github.com/codesnack/codesnack/internal/pagination"
)

// Options represents configuration options for the text to PDF converter
type Options struct {
	// Page dimensions
	PageWidth  float64
	PageHeight float64
	// Page orientation: portrait or landscape
	PageOrientation PageOrientation

	// Page margins. MarginTop is the distance from the top edge to the
	// first baseline; the left margin is a fraction of the page width.
	MarginTop          float64
	MarginBottom       float64
	LeftMarginFraction float64

	// Text layout
	FontFamily      string
	FontSize        float64
	LineSpacing     float64
	MaxCharsPerLine int

	// Markdown renders the input as markdown (lists, headings, code) instead
	// of only stripping emphasis markers
	Markdown bool

	// Debug enables verbose logging
	Debug bool
	// When true, draw margin guides on every page
	DebugDrawBoxes bool
	// Log receives debug output; stdout when nil
	Log io.Writer

	// Logo is an image path or data URL drawn in the first page header
	Logo string
	// Resource paths searched for the logo and input files
	ResourcePaths []string

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Option is a function that modifies Options
type Option func(*Options)

// PageOrientation represents page orientation
type PageOrientation string

const (
	// PageOrientationPortrait sets the page to portrait orientation
	PageOrientationPortrait PageOrientation = "portrait"
	// PageOrientationLandscape sets the page to landscape orientation
	PageOrientationLandscape PageOrientation = "landscape"
)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		// Default to A4 paper size (595.28 x 841.89 points)
		PageWidth:       PageSizeA4Width,
		PageHeight:      PageSizeA4Height,
		PageOrientation: PageOrientationPortrait,

		MarginTop:          pagination.DefaultTopMargin,
		MarginBottom:       pagination.DefaultBottomMargin,
		LeftMarginFraction: pagination.DefaultLeftMarginFraction,

		FontFamily:      "Helvetica",
		FontSize:        pagination.DefaultFontSize,
		LineSpacing:     pagination.DefaultLineSpacing,
		MaxCharsPerLine: pagination.DefaultMaxCharsPerLine,

		ResourcePaths: []string{},
	}
}

// WithOptions applies opts to the default options
func WithOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithMargins sets the top and bottom margins
func WithMargins(top, bottom float64) Option {
	return func(o *Options) {
		o.MarginTop = top
		o.MarginBottom = bottom
	}
}

// WithLeftMarginFraction sets the left margin as a fraction of the page width
func WithLeftMarginFraction(fraction float64) Option {
	return func(o *Options) {
		o.LeftMarginFraction = fraction
	}
}

// WithFont sets the core font family and size
func WithFont(family string, size float64) Option {
	return func(o *Options) {
		o.FontFamily = family
		o.FontSize = size
	}
}

// WithLineSpacing sets the line pitch as a multiple of the font size
func WithLineSpacing(spacing float64) Option {
	return func(o *Options) {
		o.LineSpacing = spacing
	}
}

// WithMaxCharsPerLine sets the wrapping budget
func WithMaxCharsPerLine(n int) Option {
	return func(o *Options) {
		o.MaxCharsPerLine = n
	}
}

// WithMarkdown enables full markdown to text conversion
func WithMarkdown(enabled bool) Option {
	return func(o *Options) {
		o.Markdown = enabled
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithLog sets the writer for debug output
func WithLog(w io.Writer) Option {
	return func(o *Options) {
		o.Log = w
	}
}

// WithLogo sets the header logo (file path or data URL)
func WithLogo(ref string) Option {
	return func(o *Options) {
		o.Logo = ref
	}
}

// WithResourcePath adds a path to search for resources
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithPageOrientation sets the page orientation
func WithPageOrientation(orientation PageOrientation) Option {
	return func(o *Options) {
		o.PageOrientation = orientation
	}
}

// Standard page sizes in points (1/72 inch)
const (
	PageSizeA4Width  = 595.28
	PageSizeA4Height = 841.89
	PageSizeA5Width  = 419.53
	PageSizeA5Height = 595.28

	// US Letter and Legal
	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
	PageSizeLegalWidth   = 612
	PageSizeLegalHeight  = 1008
)

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeA5 sets the page size to A5
func WithPageSizeA5() Option {
	return WithPageSize(PageSizeA5Width, PageSizeA5Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}

// PageSize returns the page dimensions after applying the orientation
func (o Options) PageSize() (width, height float64) {
	width, height = o.PageWidth, o.PageHeight
	switch o.PageOrientation {
	case PageOrientationLandscape:
		if width < height {
			width, height = height, width
		}
	default:
		if width > height {
			width, height = height, width
		}
	}
	return width, height
}
