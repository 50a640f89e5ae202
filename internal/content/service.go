package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codesnack/codesnack/internal/cleanup"
)

// ErrEmptyPrompt is returned when a custom prompt is blank
var ErrEmptyPrompt = errors.New("please enter a valid prompt before generating")

// NotAvailable is reported for token counts the generator does not expose
const NotAvailable = "N/A"

// TokenUsage mirrors what a model reports about a call
type TokenUsage struct {
	PromptTokens     string
	CompletionTokens string
	TotalTokens      string
}

// Result is one finished generation
type Result struct {
	ID       uuid.UUID
	Template Template
	Topic    string
	Prompt   string
	// Output is the raw model text, Cleaned has emphasis markers removed
	Output  string
	Cleaned string

	GenerationTime time.Duration
	TokenUsage     TokenUsage
}

// Report summarises the performance of a generation
type Report struct {
	ResponseTime  time.Duration
	ContentLength int
}

// String formats the report the way it is shown to the learner
func (r Report) String() string {
	secs := math.Round(r.ResponseTime.Seconds()*100) / 100
	return fmt.Sprintf("Response Time: %.2fs\nOutput Length: %d characters", secs, r.ContentLength)
}

// Report returns the performance numbers of the result
func (r *Result) Report() Report {
	return Report{
		ResponseTime:  r.GenerationTime,
		ContentLength: len([]rune(r.Output)),
	}
}

// Filename returns the download name for the result with extension ext
func (r *Result) Filename(ext string) string {
	if r.Template == "" {
		return "custom_prompt_output." + strings.TrimPrefix(ext, ".")
	}
	return Filename(r.Template, r.Topic, ext)
}

// Service turns requests into cleaned results
type Service struct {
	generator Generator

	Debug bool
	// Log receives debug output; stdout when nil
	Log io.Writer

	now func() time.Time
}

// NewService creates a service backed by g
func NewService(g Generator) *Service {
	return &Service{generator: g, now: time.Now}
}

// Generate builds the prompt for req, sends it to the generator and strips
// emphasis markers from the reply. Generator failures are returned as is,
// wrapped; nothing is retried.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, err
	}
	res, err := s.run(ctx, prompt, req.Temperature)
	if err != nil {
		return nil, err
	}
	res.Template = req.Template
	res.Topic = req.Topic
	return res, nil
}

// Custom sends a free-form prompt
func (s *Service) Custom(ctx context.Context, prompt string) (*Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	return s.run(ctx, prompt, 0)
}

func (s *Service) run(ctx context.Context, prompt string, temperature float64) (*Result, error) {
	if s.generator == nil {
		return nil, errors.New("no generator configured")
	}
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	id := uuid.New()
	s.debugf("[%s] sending prompt (%d chars, temperature %.1f)\n", id, len(prompt), temperature)

	start := s.now()
	output, err := s.generator.Generate(ctx, prompt, temperature)
	elapsed := s.now().Sub(start)
	if err != nil {
		s.debugf("[%s] generation failed after %s: %v\n", id, elapsed, err)
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	s.debugf("[%s] received %d chars in %s\n", id, len(output), elapsed)

	return &Result{
		ID:             id,
		Prompt:         prompt,
		Output:         output,
		Cleaned:        cleanup.StripEmphasis(output),
		GenerationTime: elapsed,
		TokenUsage: TokenUsage{
			PromptTokens:     NotAvailable,
			CompletionTokens: NotAvailable,
			TotalTokens:      NotAvailable,
		},
	}, nil
}

func (s *Service) debugf(format string, args ...interface{}) {
	if !s.Debug {
		return
	}
	w := s.Log
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, format, args...)
}
