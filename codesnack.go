// Package codesnack turns generated educational content into printable
// pages and PDF documents.
package codesnack

import (
	"github.com/codesnack/codesnack/pkg/api"
)

type Converter = api.Converter
type Options = api.Options
type Option = api.Option
type PageOrientation = api.PageOrientation
type Page = api.Page
type Line = api.Line

func New() *Converter                           { return api.New() }
func NewWithOptions(options Options) *Converter { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	WithOptions            = api.WithOptions
	WithPageSize           = api.WithPageSize
	WithMargins            = api.WithMargins
	WithLeftMarginFraction = api.WithLeftMarginFraction
	WithFont               = api.WithFont
	WithLineSpacing        = api.WithLineSpacing
	WithMaxCharsPerLine    = api.WithMaxCharsPerLine
	WithMarkdown           = api.WithMarkdown
	WithDebug              = api.WithDebug
	WithLog                = api.WithLog
	WithLogo               = api.WithLogo
	WithResourcePath       = api.WithResourcePath
	WithTitle              = api.WithTitle
	WithAuthor             = api.WithAuthor
	WithSubject            = api.WithSubject
	WithKeywords           = api.WithKeywords
	WithPageSizeA4         = api.WithPageSizeA4
	WithPageSizeA5         = api.WithPageSizeA5
	WithPageSizeLetter     = api.WithPageSizeLetter
	WithPageSizeLegal      = api.WithPageSizeLegal
	WithPageOrientation    = api.WithPageOrientation
)

const (
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height
	PageSizeA5Width  = api.PageSizeA5Width
	PageSizeA5Height = api.PageSizeA5Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight

	PageOrientationPortrait  = api.PageOrientationPortrait
	PageOrientationLandscape = api.PageOrientationLandscape
)
