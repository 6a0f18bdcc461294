// Package palettes provides the PostgreSQL-backed repository for palette
// persistence and the public listing query.
package palettes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mahinuralam/Color-Paletters/internal/common"
	"github.com/mahinuralam/Color-Paletters/internal/dbx"
	"github.com/mahinuralam/Color-Paletters/internal/server/models"
)

// PostgresRepository implements palette storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, palette *models.Palette) (*models.Palette, error) {

	query :=
		`INSERT INTO palettes (id, name, dominant_colors, accent_colors, is_public, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		palette.ID, palette.Name, palette.DominantColors, palette.AccentColors,
		palette.IsPublic, palette.CreatedBy).Scan(&palette.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return palette, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Palette, error) {
	query :=
		`SELECT id, name, dominant_colors, accent_colors, is_public, created_by, created_at
		 FROM palettes
		 WHERE id = $1
		 `

	palette := &models.Palette{}
	var createdBy sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&palette.ID, &palette.Name, &palette.DominantColors, &palette.AccentColors,
		&palette.IsPublic, &createdBy, &palette.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	palette.CreatedBy = createdBy.String

	return palette, nil
}

// ListPublic returns all public palettes, newest first.
func (r *PostgresRepository) ListPublic(ctx context.Context) ([]*models.Palette, error) {
	query :=
		`SELECT id, name, dominant_colors, accent_colors, is_public, created_by, created_at
		 FROM palettes
		 WHERE is_public = true
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Palette
	for rows.Next() {
		var item models.Palette
		var createdBy sql.NullString
		if err := rows.Scan(
			&item.ID, &item.Name, &item.DominantColors, &item.AccentColors,
			&item.IsPublic, &createdBy, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.CreatedBy = createdBy.String
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
