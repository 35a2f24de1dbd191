package roadmap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("roadmap not found")

type RoadmapRepo struct {
	db *sqlx.DB
}

func NewRoadmapRepo(db *sqlx.DB) *RoadmapRepo {
	return &RoadmapRepo{db: db}
}

func (r *RoadmapRepo) Create(ctx context.Context, userID uuid.UUID, goal string, durationWeeks int, doc Document) (*Roadmap, error) {
	query := `
		INSERT INTO roadmaps (user_id, goal, duration_weeks, roadmap_json)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, goal, duration_weeks, roadmap_json, created_at
	`

	var rm Roadmap
	err := r.db.GetContext(ctx, &rm, query, userID, goal, durationWeeks, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create roadmap: %w", err)
	}

	return &rm, nil
}

// ListByUser returns the user's roadmaps, newest first.
func (r *RoadmapRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Roadmap, error) {
	query := `
		SELECT id, user_id, goal, duration_weeks, roadmap_json, created_at
		FROM roadmaps
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	roadmaps := []*Roadmap{}
	err := r.db.SelectContext(ctx, &roadmaps, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}

	return roadmaps, nil
}

func (r *RoadmapRepo) GetByID(ctx context.Context, id uuid.UUID) (*Roadmap, error) {
	query := `
		SELECT id, user_id, goal, duration_weeks, roadmap_json, created_at
		FROM roadmaps
		WHERE id = $1
	`

	var rm Roadmap
	err := r.db.GetContext(ctx, &rm, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}

	return &rm, nil
}

func (r *RoadmapRepo) UpdateDocument(ctx context.Context, id uuid.UUID, doc Document) (*Roadmap, error) {
	query := `
		UPDATE roadmaps
		SET roadmap_json = $1
		WHERE id = $2
		RETURNING id, user_id, goal, duration_weeks, roadmap_json, created_at
	`

	var rm Roadmap
	err := r.db.GetContext(ctx, &rm, query, doc, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update roadmap: %w", err)
	}

	return &rm, nil
}
