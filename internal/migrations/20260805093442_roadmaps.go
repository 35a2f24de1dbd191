package migrations

import (
	"github.com/jmoiron/sqlx"
)

func init() {
	m.addMigration(&migration{
		version: "20260805093442",
		up:      mig_20260805093442_roadmaps_up,
		down:    mig_20260805093442_roadmaps_down,
	})
}

func mig_20260805093442_roadmaps_up(tx *sqlx.Tx) error {
	_, err := tx.Exec(`
        CREATE TABLE IF NOT EXISTS roadmaps (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            user_id UUID NOT NULL REFERENCES users(id),
            goal TEXT NOT NULL,
            duration_weeks INTEGER NOT NULL CHECK (duration_weeks > 0),
            roadmap_json JSONB NOT NULL,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
        );
    `)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        CREATE INDEX IF NOT EXISTS idx_roadmaps_user_id ON roadmaps(user_id);
    `)

	return err
}

func mig_20260805093442_roadmaps_down(tx *sqlx.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS roadmaps;`)
	return err
}
