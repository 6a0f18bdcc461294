// Package favorites provides the PostgreSQL-backed repository for per-user
// palette favorites.
package favorites

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mahinuralam/Color-Paletters/internal/dbx"
	"github.com/mahinuralam/Color-Paletters/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Add records the favorite. Repeated favorites of the same palette are
// idempotent.
func (r *PostgresRepository) Add(ctx context.Context, userID, paletteID string) error {
	query :=
		`INSERT INTO user_favorite_palettes (user_id, palette_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, palette_id) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, paletteID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Remove deletes the favorite if present. Removing a favorite that was never
// recorded is not an error.
func (r *PostgresRepository) Remove(ctx context.Context, userID, paletteID string) error {
	query :=
		`DELETE FROM user_favorite_palettes
		 WHERE user_id = $1 AND palette_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, paletteID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByUser returns the palettes the user has favorited, newest favorite first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Palette, error) {
	query :=
		`SELECT p.id, p.name, p.dominant_colors, p.accent_colors, p.is_public, p.created_by, p.created_at
		 FROM palettes p
		 JOIN user_favorite_palettes f ON f.palette_id = p.id
		 WHERE f.user_id = $1
		 ORDER BY f.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
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
