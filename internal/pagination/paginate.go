package pagination

import (
	"github.com/codesnack/codesnack/internal/text"
)

// Line is a physical line placed on a page. Y is the baseline measured
// upward from the bottom edge of the page.
type Line struct {
	Text string
	X    float64
	Y    float64
}

// Page represents a single page in the document
type Page struct {
	Number int
	Width  float64
	Height float64
	Lines  []Line
}

// PageSize represents standard page sizes
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in points (1/72 inch)
var (
	PageSizeA4     = PageSize{Width: 595.28, Height: 841.89, Name: "A4"}
	PageSizeLetter = PageSize{Width: 612.00, Height: 792.00, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 612.00, Height: 1008.00, Name: "Legal"}
	PageSizeA3     = PageSize{Width: 841.89, Height: 1190.55, Name: "A3"}
	PageSizeA5     = PageSize{Width: 419.53, Height: 595.28, Name: "A5"}
)

// Defaults used for zero Config fields.
const (
	DefaultLeftMarginFraction = 1.0 / 8
	DefaultTopMargin          = 50
	DefaultBottomMargin       = 50
	DefaultFontSize           = 12
	DefaultLineSpacing        = 1.2
	DefaultMaxCharsPerLine    = 90
)

// Field names a Config margin field for Config.Set
type Field uint8

const (
	FieldLeftMargin Field = 1 << iota
	FieldTopMargin
	FieldBottomMargin

	FieldMargins = FieldLeftMargin | FieldTopMargin | FieldBottomMargin
)

// Config describes the page geometry and the text budget.
// Zero or negative fields fall back to the defaults, except that a margin
// named in Set keeps an explicit zero.
type Config struct {
	PageWidth  float64
	PageHeight float64

	// LeftMarginFraction positions every line at PageWidth*LeftMarginFraction.
	LeftMarginFraction float64
	// TopMargin is the distance from the top edge to the first baseline.
	TopMargin float64
	// BottomMargin is the lowest baseline a line may be placed on.
	BottomMargin float64

	FontSize        float64
	LineSpacing     float64
	MaxCharsPerLine int

	// Set marks margins whose zero value is meant literally
	Set Field
}

// DefaultConfig returns an A4 configuration with the default margins.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.PageWidth <= 0 {
		c.PageWidth = PageSizeA4.Width
	}
	if c.PageHeight <= 0 {
		c.PageHeight = PageSizeA4.Height
	}
	if c.unset(FieldLeftMargin, c.LeftMarginFraction) {
		c.LeftMarginFraction = DefaultLeftMarginFraction
	}
	if c.unset(FieldTopMargin, c.TopMargin) {
		c.TopMargin = DefaultTopMargin
	}
	if c.unset(FieldBottomMargin, c.BottomMargin) {
		c.BottomMargin = DefaultBottomMargin
	}
	if c.FontSize <= 0 {
		c.FontSize = DefaultFontSize
	}
	if c.LineSpacing <= 0 {
		c.LineSpacing = DefaultLineSpacing
	}
	if c.MaxCharsPerLine <= 0 {
		c.MaxCharsPerLine = DefaultMaxCharsPerLine
	}
	return c
}

func (c Config) unset(f Field, v float64) bool {
	if v == 0 && c.Set&f != 0 {
		return false
	}
	return v <= 0
}

// LeftMargin returns the x origin of every line.
func (c Config) LeftMargin() float64 {
	c = c.withDefaults()
	return c.PageWidth * c.LeftMarginFraction
}

// Top returns the baseline of the first line on a page.
func (c Config) Top() float64 {
	c = c.withDefaults()
	return c.PageHeight - c.TopMargin
}

// LinePitch returns the vertical distance between two baselines.
func (c Config) LinePitch() float64 {
	c = c.withDefaults()
	return c.FontSize * c.LineSpacing
}

// Paginator handles breaking text into pages
type Paginator struct {
	Config Config
}

// NewPaginator creates a new paginator
func NewPaginator(cfg Config) *Paginator {
	return &Paginator{Config: cfg.withDefaults()}
}

// Paginate is a shorthand for NewPaginator(cfg).Paginate(text).
func Paginate(text string, cfg Config) []*Page {
	return NewPaginator(cfg).Paginate(text)
}

// Paginate wraps text into physical lines and places them on pages. The
// result always holds at least one page; empty text gives one empty page.
func (p *Paginator) Paginate(doc string) []*Page {
	cfg := p.Config.withDefaults()
	x := cfg.LeftMargin()
	top := cfg.Top()
	pitch := cfg.LinePitch()

	pages := make([]*Page, 0, 1)
	var page *Page
	newPage := func() {
		page = &Page{
			Number: len(pages) + 1,
			Width:  cfg.PageWidth,
			Height: cfg.PageHeight,
			Lines:  make([]Line, 0),
		}
		pages = append(pages, page)
	}
	newPage()

	place := func(s string) {
		y := top - float64(len(page.Lines))*pitch
		// A fresh page takes its first line even if the page is shorter
		// than the margins allow, so the loop always makes progress.
		if len(page.Lines) > 0 && y < cfg.BottomMargin {
			newPage()
			y = top
		}
		page.Lines = append(page.Lines, Line{Text: s, X: x, Y: y})
	}

	for _, logical := range text.SplitLines(doc) {
		for _, physical := range text.Wrap(logical, cfg.MaxCharsPerLine) {
			place(physical)
		}
	}

	return pages
}

// LinesPerPage returns how many lines fit on one page before a break.
func (p *Paginator) LinesPerPage() int {
	cfg := p.Config.withDefaults()
	top := cfg.Top()
	pitch := cfg.LinePitch()
	n := 1
	for top-float64(n)*pitch >= cfg.BottomMargin {
		n++
	}
	return n
}

// CalculatePageCount calculates the number of pages needed
func (p *Paginator) CalculatePageCount(doc string) int {
	return len(p.Paginate(doc))
}
