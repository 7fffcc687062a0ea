package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MajorRepository struct {
	pool *pgxpool.Pool
}

func NewMajorRepository(pool *pgxpool.Pool) *MajorRepository {
	return &MajorRepository{pool: pool}
}

func (r *MajorRepository) GetByID(ctx context.Context, id string) (*model.Major, error) {
	var doc []byte
	if err := r.pool.QueryRow(ctx,
		`SELECT doc FROM majors WHERE id = $1`, id).Scan(&doc); err != nil {
		return nil, err
	}

	var major model.Major
	if err := json.Unmarshal(doc, &major); err != nil {
		return nil, fmt.Errorf("decode major %s: %w", id, err)
	}
	return &major, nil
}

func (r *MajorRepository) GetAll(ctx context.Context) ([]model.Major, error) {
	rows, err := r.pool.Query(ctx, `SELECT doc FROM majors ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var majors []model.Major
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var major model.Major
		if err := json.Unmarshal(doc, &major); err != nil {
			return nil, fmt.Errorf("decode major: %w", err)
		}
		majors = append(majors, major)
	}
	return majors, rows.Err()
}

func (r *MajorRepository) Upsert(ctx context.Context, major model.Major) error {
	doc, err := json.Marshal(major)
	if err != nil {
		return fmt.Errorf("encode major %s: %w", major.ID, err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO majors (id, doc) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`,
		major.ID, doc)
	return err
}
