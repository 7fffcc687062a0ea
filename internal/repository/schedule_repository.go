package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleRepository stores one jsonb schedule document per user.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// Get returns the user's schedule, or an empty schedule when none has been
// persisted yet.
func (r *ScheduleRepository) Get(ctx context.Context, userID string) (model.Schedule, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx,
		`SELECT doc FROM user_schedules WHERE user_id = $1`, userID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NewSchedule(), nil
		}
		return model.Schedule{}, err
	}

	var schedule model.Schedule
	if err := json.Unmarshal(doc, &schedule); err != nil {
		return model.Schedule{}, fmt.Errorf("decode schedule for %s: %w", userID, err)
	}
	if schedule.Planned == nil {
		schedule.Planned = map[string][]model.CourseRef{}
	}
	if schedule.Taken == nil {
		schedule.Taken = map[string][]model.CourseRef{}
	}
	return schedule, nil
}

// Upsert writes the whole schedule document. The persist worker is the
// only caller in the serving path; the write is last-writer-wins.
func (r *ScheduleRepository) Upsert(ctx context.Context, userID string, schedule model.Schedule) error {
	doc, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("encode schedule for %s: %w", userID, err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO user_schedules (user_id, doc) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`,
		userID, doc)
	return err
}
