package content

import (
	"errors"
	"fmt"
	"strings"
)

// Template names the kind of educational content to produce
type Template string

const (
	LessonPlan      Template = "Lesson Plan"
	StudyGuide      Template = "Study Guide"
	Tutorials       Template = "Tutorials"
	QuizAnswerSheet Template = "Quiz Answer Sheet"
	TopicSummary    Template = "Topic Summary"
	TryItYourself   Template = "Try it yourself"
)

// Level is the learner level a prompt is written for
type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
)

// ErrUnknownTemplate is returned for template names outside Templates()
var ErrUnknownTemplate = errors.New("unknown content template")

// formatInstruction is appended to every templated prompt. It keeps the
// model away from asterisk emphasis so the text prints cleanly.
const formatInstruction = "\n\nMake sure to add relevant emojis next to important points or headings instead of using bold formatting. " +
	"If there are lists, use either unordered lists (bullets) or ordered lists (numbers) — do not use asterisks (*) for lists. " +
	"Ensure the text is presented cleanly and neatly."

var templates = map[Template]string{
	LessonPlan:      "Create a comprehensive 1-hour lesson plan on '{topic}' for {level} youth learning software development. Include learning objectives, materials needed, and step-by-step teaching activities. Context: {context}",
	StudyGuide:      "Generate a study guide summarizing the key points of '{topic}' for {level} students studying software development. Include bullet points and 5 quiz questions. Context: {context}",
	Tutorials:       "Design a group-based hands-on activity to teach the topic '{topic}' to {level} learners. Ensure it's engaging and collaborative. Context: {context}",
	QuizAnswerSheet: "Provide an answer sheet for a 5-question quiz on the topic '{topic}' in software development. Context: {context}",
	TopicSummary:    "Summarize the topic '{topic}' in simple terms for {level} students beginning their software development journey. Context: {context}",
	TryItYourself:   "Generate a hands-on practice exercise for learners on the topic '{topic}' in software development. The activity should include a description, starter code, and instructions to complete the task. Target Level: {level}. Context: {context}",
}

// Templates lists the templates in the order they are offered
func Templates() []Template {
	return []Template{LessonPlan, TryItYourself, Tutorials, QuizAnswerSheet, TopicSummary, StudyGuide}
}

// Levels lists the learner levels
func Levels() []Level {
	return []Level{Beginner, Intermediate, Advanced}
}

// ParseTemplate matches a template name case-insensitively
func ParseTemplate(name string) (Template, error) {
	for t := range templates {
		if strings.EqualFold(string(t), strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownTemplate)
}

// ParseLevel matches a level case-insensitively; empty means Beginner
func ParseLevel(name string) (Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Beginner, nil
	}
	for _, l := range Levels() {
		if strings.EqualFold(string(l), name) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown learner level %q", name)
}

// Request describes one templated generation
type Request struct {
	Template Template
	Topic    string
	Level    Level
	Context  string
	// Temperature defaults to DefaultTemperature when zero
	Temperature float64
}

// BuildPrompt fills the request's template and appends the formatting
// instruction.
func BuildPrompt(req Request) (string, error) {
	tpl, ok := templates[req.Template]
	if !ok {
		return "", fmt.Errorf("%q: %w", req.Template, ErrUnknownTemplate)
	}
	level := req.Level
	if level == "" {
		level = Beginner
	}

	r := strings.NewReplacer(
		"{topic}", req.Topic,
		"{level}", string(level),
		"{context}", req.Context,
	)
	return r.Replace(tpl) + formatInstruction, nil
}
