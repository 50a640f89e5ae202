package pagination

import (
	"fmt"
	"io"
	"os"
)

// Options represents options for the pagination engine
type Options struct {
	PageWidth          float64
	PageHeight         float64
	MarginTop          float64
	MarginBottom       float64
	LeftMarginFraction float64
	FontSize           float64
	LineSpacing        float64
	MaxCharsPerLine    int
	// ExplicitMargins keeps zero margins instead of using the defaults
	ExplicitMargins bool

	Debug bool
	// Log receives debug output; stdout when nil
	Log io.Writer
}

// Engine handles the pagination process
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	cfg := DefaultConfig()
	return &Engine{
		options: Options{
			PageWidth:          cfg.PageWidth, // Default A4 width in points
			PageHeight:         cfg.PageHeight,
			MarginTop:          cfg.TopMargin,
			MarginBottom:       cfg.BottomMargin,
			LeftMarginFraction: cfg.LeftMarginFraction,
			FontSize:           cfg.FontSize,
			LineSpacing:        cfg.LineSpacing,
			MaxCharsPerLine:    cfg.MaxCharsPerLine,
		},
	}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Config returns the paginator configuration derived from the options.
func (e *Engine) Config() Config {
	var set Field
	if e.options.ExplicitMargins {
		set = FieldMargins
	}
	return Config{
		PageWidth:          e.options.PageWidth,
		PageHeight:         e.options.PageHeight,
		LeftMarginFraction: e.options.LeftMarginFraction,
		TopMargin:          e.options.MarginTop,
		BottomMargin:       e.options.MarginBottom,
		FontSize:           e.options.FontSize,
		LineSpacing:        e.options.LineSpacing,
		MaxCharsPerLine:    e.options.MaxCharsPerLine,
		Set:                set,
	}.withDefaults()
}

// Paginate breaks text into pages
func (e *Engine) Paginate(doc string) []*Page {
	paginator := NewPaginator(e.Config())
	pages := paginator.Paginate(doc)

	if e.options.Debug {
		lines := 0
		for _, p := range pages {
			lines += len(p.Lines)
		}
		e.debugf("Paginated %d lines onto %d pages (%d lines per page, %d chars per line)\n",
			lines, len(pages), paginator.LinesPerPage(), paginator.Config.MaxCharsPerLine)
	}
	return pages
}

func (e *Engine) debugf(format string, args ...interface{}) {
	w := e.options.Log
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, format, args...)
}
