package users

import (
	"context"

	"github.com/mahinuralam/Color-Paletters/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}
