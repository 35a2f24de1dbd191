package roadmap

import (
	"database/sql/driver"
	"fmt"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// WeeklyPlan is one week's slice of a generated roadmap. The JSON keys match
// the document the generator is prompted to emit; `isCompleted` is the one
// field mutated after creation.
type WeeklyPlan struct {
	Week        int      `json:"week"`
	Title       string   `json:"title"`
	Objectives  []string `json:"objectives"`
	Topics      []string `json:"topics"`
	Resources   []string `json:"resources"`
	MiniProject string   `json:"mini_project"`
	IsCompleted bool     `json:"isCompleted"`
}

// Document is the structured plan stored in the roadmap_json column.
type Document struct {
	Title      string       `json:"title"`
	TotalWeeks int          `json:"total_weeks"`
	Weeks      []WeeklyPlan `json:"weeks"`
}

// DegradedDocument is the canonical soft-failure value: well-formed, empty
// weeks. Callers detect generation failure by the empty weeks list, never by
// an error.
func DegradedDocument(goal string) Document {
	return Document{
		Title:      fmt.Sprintf("Failed to generate roadmap for %s", goal),
		TotalWeeks: 0,
		Weeks:      []WeeklyPlan{},
	}
}

func (d Document) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *Document) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported type %T for roadmap document", src)
	}
}

type Roadmap struct {
	ID            uuid.UUID `db:"id" json:"id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	Goal          string    `db:"goal" json:"goal"`
	DurationWeeks int       `db:"duration_weeks" json:"duration_weeks"`
	Document      Document  `db:"roadmap_json" json:"roadmap_json"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type GenerateRequest struct {
	Goal          string `json:"goal"`
	DurationWeeks int    `json:"duration_weeks"`
}

type ProgressRequest struct {
	WeekNumber  int  `json:"week_number"`
	IsCompleted bool `json:"is_completed"`
}
