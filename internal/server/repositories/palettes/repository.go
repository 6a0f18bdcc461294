package palettes

import (
	"context"

	"github.com/mahinuralam/Color-Paletters/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, palette *models.Palette) (*models.Palette, error)
	GetByID(ctx context.Context, id string) (*models.Palette, error)
	ListPublic(ctx context.Context) ([]*models.Palette, error)
}
