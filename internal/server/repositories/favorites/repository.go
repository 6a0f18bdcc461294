package favorites

import (
	"context"

	"github.com/mahinuralam/Color-Paletters/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, userID, paletteID string) error
	Remove(ctx context.Context, userID, paletteID string) error
	ListByUser(ctx context.Context, userID string) ([]*models.Palette, error)
}
