package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository stores catalog courses as jsonb documents, keyed by
// course ID with the subject denormalized for list queries.
type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var doc []byte
	if err := r.pool.QueryRow(ctx,
		`SELECT doc FROM courses WHERE id = $1`, id).Scan(&doc); err != nil {
		return nil, err
	}

	var course model.Course
	if err := json.Unmarshal(doc, &course); err != nil {
		return nil, fmt.Errorf("decode course %s: %w", id, err)
	}
	return &course, nil
}

func (r *CourseRepository) GetBySubject(ctx context.Context, subjectCode string) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT doc FROM courses WHERE subject = $1 ORDER BY id ASC`, subjectCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var course model.Course
		if err := json.Unmarshal(doc, &course); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (r *CourseRepository) Upsert(ctx context.Context, course model.Course) error {
	doc, err := json.Marshal(course)
	if err != nil {
		return fmt.Errorf("encode course %s: %w", course.ID, err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO courses (id, subject, doc) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET subject = EXCLUDED.subject, doc = EXCLUDED.doc, updated_at = NOW()`,
		course.ID, course.Subject, doc)
	return err
}
