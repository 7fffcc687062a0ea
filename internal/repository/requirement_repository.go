package repository

import (
	"context"
	"fmt"

	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RequirementRepository stores requirement documents as jsonb. Documents
// decode through model.DecodeRequirement so the core/elective shape is
// probed exactly once, at the fetch boundary.
type RequirementRepository struct {
	pool *pgxpool.Pool
}

func NewRequirementRepository(pool *pgxpool.Pool) *RequirementRepository {
	return &RequirementRepository{pool: pool}
}

func (r *RequirementRepository) GetByID(ctx context.Context, id string) (*model.Requirement, error) {
	var doc []byte
	if err := r.pool.QueryRow(ctx,
		`SELECT doc FROM requirements WHERE id = $1`, id).Scan(&doc); err != nil {
		return nil, err
	}

	req, err := model.DecodeRequirement(doc)
	if err != nil {
		return nil, fmt.Errorf("decode requirement %s: %w", id, err)
	}
	return &req, nil
}

func (r *RequirementRepository) Upsert(ctx context.Context, id string, doc []byte) error {
	// Validate the document shape before storing; malformed requirements
	// would otherwise degrade every consumer to zero-completion.
	if _, err := model.DecodeRequirement(doc); err != nil {
		return fmt.Errorf("requirement %s: %w", id, err)
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO requirements (id, doc) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`,
		id, doc)
	return err
}
