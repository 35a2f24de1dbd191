package roadmap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var ErrWeekNotFound = errors.New("week not found in roadmap")

var tracer = otel.Tracer("github.com/skillpath/roadmapper/internal/services/roadmap")

// Store is the slice of the roadmaps table the service needs. *RoadmapRepo
// satisfies it; tests substitute in-memory fakes.
type Store interface {
	Create(ctx context.Context, userID uuid.UUID, goal string, durationWeeks int, doc Document) (*Roadmap, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Roadmap, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Roadmap, error)
	UpdateDocument(ctx context.Context, id uuid.UUID, doc Document) (*Roadmap, error)
}

// Generator produces a plan document for a goal. Generation failure is a
// value (empty weeks), never an error.
type Generator interface {
	GenerateRoadmap(ctx context.Context, goal string, durationWeeks int) Document
}

type RoadmapService struct {
	store     Store
	generator Generator
}

func NewRoadmapService(store Store, generator Generator) *RoadmapService {
	return &RoadmapService{store: store, generator: generator}
}

// Generate asks the generator for a plan and persists it. A soft-failed
// (empty weeks) document is persisted as well, so the dashboard can show the
// failed attempt; the failure is logged here since nothing downstream errors.
func (s *RoadmapService) Generate(ctx context.Context, userID uuid.UUID, goal string, durationWeeks int) (*Roadmap, error) {
	ctx, span := tracer.Start(ctx, "roadmap.generate", trace.WithAttributes(
		attribute.String("roadmap.goal", goal),
		attribute.Int("roadmap.duration_weeks", durationWeeks),
	))
	defer span.End()

	doc := s.generator.GenerateRoadmap(ctx, goal, durationWeeks)
	if len(doc.Weeks) == 0 {
		slog.WarnContext(ctx, "Plan generation soft-failed, persisting degraded document", slog.String("goal", goal))
	}

	return s.store.Create(ctx, userID, goal, durationWeeks, doc)
}

func (s *RoadmapService) History(ctx context.Context, userID uuid.UUID) ([]*Roadmap, error) {
	return s.store.ListByUser(ctx, userID)
}

// UpdateProgress toggles one week's isCompleted flag. The roadmap must belong
// to userID; a roadmap owned by someone else reads the same as an unknown id.
func (s *RoadmapService) UpdateProgress(ctx context.Context, userID, roadmapID uuid.UUID, weekNumber int, isCompleted bool) (*Roadmap, error) {
	rm, err := s.store.GetByID(ctx, roadmapID)
	if err != nil {
		return nil, err
	}

	if rm.UserID != userID {
		return nil, ErrNotFound
	}

	updated := false
	for i := range rm.Document.Weeks {
		if rm.Document.Weeks[i].Week == weekNumber {
			rm.Document.Weeks[i].IsCompleted = isCompleted
			updated = true
			break
		}
	}
	if !updated {
		return nil, ErrWeekNotFound
	}

	return s.store.UpdateDocument(ctx, roadmapID, rm.Document)
}
