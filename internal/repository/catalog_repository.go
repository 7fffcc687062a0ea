package repository

import (
	"context"

	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository reads the small reference tables: colleges and subjects.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) GetAllColleges(ctx context.Context) ([]model.College, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM colleges ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []model.College
	for rows.Next() {
		var c model.College
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		colleges = append(colleges, c)
	}
	return colleges, rows.Err()
}

func (r *CatalogRepository) GetAllSubjects(ctx context.Context) ([]model.Subject, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM subjects ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.Code, &s.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func (r *CatalogRepository) UpsertCollege(ctx context.Context, c model.College) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO colleges (id, name) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		c.ID, c.Name)
	return err
}

func (r *CatalogRepository) UpsertSubject(ctx context.Context, s model.Subject) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO subjects (code, name) VALUES ($1, $2)
		 ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name`,
		s.Code, s.Name)
	return err
}
