package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	completion string
	err        error
	prompt     string
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.completion, s.err
}

const validCompletion = `{
	"title": "Learn Python in 4 Weeks",
	"total_weeks": 4,
	"weeks": [
		{"week": 1, "title": "Basics", "objectives": ["Syntax"], "topics": ["Variables"], "resources": ["Python Docs - https://docs.python.org"], "mini_project": "CLI calculator"},
		{"week": 2, "title": "Data Structures", "objectives": [], "topics": [], "resources": [], "mini_project": ""},
		{"week": 3, "title": "Functions", "objectives": [], "topics": [], "resources": [], "mini_project": ""},
		{"week": 4, "title": "Projects", "objectives": [], "topics": [], "resources": [], "mini_project": ""}
	]
}`

func TestGenerateRoadmap_ValidCompletion(t *testing.T) {
	client := &stubClient{completion: validCompletion}
	doc := New(client).GenerateRoadmap(context.Background(), "Learn Python", 4)

	assert.Equal(t, "Learn Python in 4 Weeks", doc.Title)
	assert.Equal(t, 4, doc.TotalWeeks)
	require.Len(t, doc.Weeks, 4)
	assert.Equal(t, 1, doc.Weeks[0].Week)
	for _, w := range doc.Weeks {
		assert.False(t, w.IsCompleted)
	}
}

func TestGenerateRoadmap_PromptEmbedsGoalAndDuration(t *testing.T) {
	client := &stubClient{completion: validCompletion}
	New(client).GenerateRoadmap(context.Background(), "Learn Python", 4)

	assert.Contains(t, client.prompt, "Skill Goal: Learn Python")
	assert.Contains(t, client.prompt, "4-week learning roadmap")
	assert.Contains(t, client.prompt, `"total_weeks": 4`)
}

func TestGenerateRoadmap_MalformedCompletion(t *testing.T) {
	client := &stubClient{completion: "I could not produce JSON today, sorry."}
	doc := New(client).GenerateRoadmap(context.Background(), "Learn Python", 4)

	assert.True(t, strings.HasPrefix(doc.Title, "Failed to generate roadmap for"))
	assert.Equal(t, "Failed to generate roadmap for Learn Python", doc.Title)
	assert.Equal(t, 0, doc.TotalWeeks)
	assert.Empty(t, doc.Weeks)
	assert.NotNil(t, doc.Weeks)
}

func TestGenerateRoadmap_CompletionError(t *testing.T) {
	client := &stubClient{err: errors.New("upstream unavailable")}
	doc := New(client).GenerateRoadmap(context.Background(), "Learn Go", 6)

	assert.Equal(t, "Failed to generate roadmap for Learn Go", doc.Title)
	assert.Equal(t, 0, doc.TotalWeeks)
	assert.Empty(t, doc.Weeks)
}

func TestParseDocument_StripsCodeFences(t *testing.T) {
	for name, text := range map[string]string{
		"json fence":  "```json\n" + validCompletion + "\n```",
		"plain fence": "```\n" + validCompletion + "\n```",
		"no fence":    validCompletion,
		"whitespace":  "\n\n  " + validCompletion + "  \n",
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := ParseDocument(text)
			require.NoError(t, err)
			assert.Equal(t, 4, doc.TotalWeeks)
			assert.Len(t, doc.Weeks, 4)
		})
	}
}

func TestParseDocument_InvalidJSON(t *testing.T) {
	_, err := ParseDocument("```json\n{\"title\": \n```")
	assert.Error(t, err)
}

func TestParseDocument_NilWeeksBecomesEmpty(t *testing.T) {
	doc, err := ParseDocument(`{"title": "t", "total_weeks": 0}`)
	require.NoError(t, err)
	assert.NotNil(t, doc.Weeks)
	assert.Empty(t, doc.Weeks)
}
