package content

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		contains []string
	}{
		{
			"lesson plan",
			Request{Template: LessonPlan, Topic: "Go channels", Level: Intermediate, Context: "after goroutines"},
			[]string{"1-hour lesson plan on 'Go channels'", "for Intermediate youth", "Context: after goroutines"},
		},
		{
			"study guide",
			Request{Template: StudyGuide, Topic: "HTTP", Level: Beginner},
			[]string{"study guide summarizing the key points of 'HTTP'", "5 quiz questions"},
		},
		{
			"tutorials",
			Request{Template: Tutorials, Topic: "Git", Level: Advanced},
			[]string{"group-based hands-on activity", "'Git' to Advanced learners"},
		},
		{
			"quiz answer sheet",
			Request{Template: QuizAnswerSheet, Topic: "SQL joins"},
			[]string{"answer sheet for a 5-question quiz on the topic 'SQL joins'"},
		},
		{
			"topic summary default level",
			Request{Template: TopicSummary, Topic: "APIs"},
			[]string{"for Beginner students"},
		},
		{
			"try it yourself",
			Request{Template: TryItYourself, Topic: "CSS grid", Level: Beginner, Context: "no frameworks"},
			[]string{"hands-on practice exercise", "'CSS grid'", "Target Level: Beginner.", "Context: no frameworks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPrompt(tt.req)
			if err != nil {
				t.Fatalf("BuildPrompt() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("prompt %q does not contain %q", got, want)
				}
			}
			if !strings.HasSuffix(got, formatInstruction) {
				t.Error("prompt is missing the formatting instruction")
			}
		})
	}
}

func TestBuildPromptUnknownTemplate(t *testing.T) {
	_, err := BuildPrompt(Request{Template: "Poem", Topic: "x"})
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("error = %v, want ErrUnknownTemplate", err)
	}
}

func TestBuildPromptPlaceholdersInInput(t *testing.T) {
	got, err := BuildPrompt(Request{Template: TopicSummary, Topic: "{level}", Level: Advanced})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "topic '{level}'") {
		t.Errorf("user input was expanded: %q", got)
	}
}

func TestParseTemplateAndLevel(t *testing.T) {
	for _, tpl := range Templates() {
		got, err := ParseTemplate(strings.ToUpper(string(tpl)))
		if err != nil || got != tpl {
			t.Errorf("ParseTemplate(%q) = %q, %v", tpl, got, err)
		}
	}
	if _, err := ParseTemplate("nope"); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("ParseTemplate(nope) error = %v", err)
	}

	if l, err := ParseLevel(""); err != nil || l != Beginner {
		t.Errorf("ParseLevel(\"\") = %q, %v", l, err)
	}
	if l, err := ParseLevel("advanced"); err != nil || l != Advanced {
		t.Errorf("ParseLevel(advanced) = %q, %v", l, err)
	}
	if _, err := ParseLevel("expert"); err == nil {
		t.Error("ParseLevel(expert) accepted")
	}
}

func TestServiceGenerate(t *testing.T) {
	var gotPrompt string
	var gotTemp float64
	gen := GeneratorFunc(func(ctx context.Context, prompt string, temperature float64) (string, error) {
		gotPrompt, gotTemp = prompt, temperature
		return "**Objectives**\n- learn *loops*", nil
	})

	clock := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	s := NewService(gen)
	s.now = func() time.Time {
		clock = clock.Add(1250 * time.Millisecond)
		return clock
	}

	req := Request{Template: LessonPlan, Topic: "loops", Level: Beginner}
	res, err := s.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want, _ := BuildPrompt(req)
	if gotPrompt != want || res.Prompt != want {
		t.Errorf("prompt mismatch: %q", gotPrompt)
	}
	if gotTemp != DefaultTemperature {
		t.Errorf("temperature = %v, want %v", gotTemp, DefaultTemperature)
	}
	if res.Cleaned != "Objectives\n- learn loops" {
		t.Errorf("Cleaned = %q", res.Cleaned)
	}
	if res.Output != "**Objectives**\n- learn *loops*" {
		t.Errorf("Output = %q", res.Output)
	}
	if res.ID == uuid.Nil {
		t.Error("result has no ID")
	}
	if res.GenerationTime != 1250*time.Millisecond {
		t.Errorf("GenerationTime = %v", res.GenerationTime)
	}
	if res.TokenUsage.TotalTokens != NotAvailable {
		t.Errorf("TotalTokens = %q", res.TokenUsage.TotalTokens)
	}

	report := res.Report()
	if report.ContentLength != len(res.Output) {
		t.Errorf("ContentLength = %d", report.ContentLength)
	}
	if got := report.String(); got != "Response Time: 1.25s\nOutput Length: 30 characters" {
		t.Errorf("Report.String() = %q", got)
	}
	if got := res.Filename("pdf"); got != "Lesson-Plan_loops.pdf" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestServiceGenerateError(t *testing.T) {
	boom := errors.New("quota exceeded")
	calls := 0
	s := NewService(GeneratorFunc(func(context.Context, string, float64) (string, error) {
		calls++
		return "", boom
	}))

	_, err := s.Generate(context.Background(), Request{Template: StudyGuide, Topic: "x"})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}
	if calls != 1 {
		t.Errorf("generator called %d times, want 1", calls)
	}
}

func TestServiceCustom(t *testing.T) {
	s := NewService(Replay{Reply: "*Answer*"})

	if _, err := s.Custom(context.Background(), "   \n"); !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("blank prompt error = %v", err)
	}

	res, err := s.Custom(context.Background(), "Explain recursion")
	if err != nil {
		t.Fatalf("Custom() error = %v", err)
	}
	if res.Prompt != "Explain recursion" || res.Cleaned != "Answer" {
		t.Errorf("result = %+v", res)
	}
	if got := res.Filename(".txt"); got != "custom_prompt_output.txt" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestServiceDebugAndCancel(t *testing.T) {
	var log bytes.Buffer
	s := NewService(Replay{Reply: "ok"})
	s.Debug = true
	s.Log = &log

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Custom(ctx, "hi")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if !strings.Contains(log.String(), "generation failed") {
		t.Errorf("debug log = %q", log.String())
	}
}

func TestServiceWithoutGenerator(t *testing.T) {
	if _, err := NewService(nil).Custom(context.Background(), "hi"); err == nil {
		t.Error("expected error without generator")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		tpl   Template
		topic string
		ext   string
		want  string
	}{
		{LessonPlan, "Go channels", "pdf", "Lesson-Plan_Go-channels.pdf"},
		{QuizAnswerSheet, "  SQL   joins ", ".pdf", "Quiz-Answer-Sheet_SQL-joins.pdf"},
		{TopicSummary, "../../etc/passwd", "txt", "Topic-Summary_etcpasswd.txt"},
		{TryItYourself, "", "pdf", "Try-it-yourself.pdf"},
		{"", "", "", "output"},
	}

	for _, tt := range tests {
		if got := Filename(tt.tpl, tt.topic, tt.ext); got != tt.want {
			t.Errorf("Filename(%q, %q, %q) = %q, want %q", tt.tpl, tt.topic, tt.ext, got, tt.want)
		}
	}
}
