package planner

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	json "github.com/bytedance/sonic"

	"github.com/skillpath/roadmapper/internal/services/roadmap"
)

// CompletionClient is the single operation the planner needs from a
// generative text backend. *gemini.Client satisfies it; tests use canned
// completions.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Planner struct {
	client CompletionClient
}

func New(client CompletionClient) *Planner {
	return &Planner{client: client}
}

const promptTemplate = `
You are a senior software mentor.

Create a structured %d-week learning roadmap.

Skill Goal: %s

For each week include:
- Week number
- Title
- Learning objectives
- Key topics
- Free learning resources (YouTube, docs, websites) as strings like "Title - URL"
- Mini project idea

Return ONLY valid JSON.

JSON FORMAT:
{
  "title": "",
  "total_weeks": %d,
  "weeks": [
    {
      "week": 1,
      "title": "",
      "objectives": [],
      "topics": [],
      "resources": [],
      "mini_project": "",
      "isCompleted": false
    }
  ]
}
`

func buildPrompt(goal string, durationWeeks int) string {
	return fmt.Sprintf(promptTemplate, durationWeeks, goal, durationWeeks)
}

// GenerateRoadmap runs one completion and parses it into a plan document.
// Both the completion call and the parse are best-effort: any failure yields
// the canonical degraded document instead of an error.
func (p *Planner) GenerateRoadmap(ctx context.Context, goal string, durationWeeks int) roadmap.Document {
	text, err := p.client.Complete(ctx, buildPrompt(goal, durationWeeks))
	if err != nil {
		slog.WarnContext(ctx, "Completion call failed", slog.String("goal", goal), slog.Any("error", err))
		return roadmap.DegradedDocument(goal)
	}

	doc, err := ParseDocument(text)
	if err != nil {
		slog.WarnContext(ctx, "Completion was not a valid plan document", slog.String("goal", goal), slog.Any("error", err))
		return roadmap.DegradedDocument(goal)
	}

	return doc
}

var codeFenceRe = regexp.MustCompile("(?m)^```(?:json)?\\s*")

// ParseDocument strips any markdown code fences the model wrapped the answer
// in and unmarshals the remainder as a plan document. It is a pure function
// so canned completions exercise it directly.
func ParseDocument(text string) (roadmap.Document, error) {
	cleaned := strings.TrimSpace(codeFenceRe.ReplaceAllString(strings.TrimSpace(text), ""))

	var doc roadmap.Document
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return roadmap.Document{}, fmt.Errorf("plan document is not valid JSON: %w", err)
	}

	if doc.Weeks == nil {
		doc.Weeks = []roadmap.WeeklyPlan{}
	}

	return doc, nil
}
