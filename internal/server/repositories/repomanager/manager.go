package repomanager

import (
	"context"
	"database/sql"

	"github.com/mahinuralam/Color-Paletters/internal/dbx"
	"github.com/mahinuralam/Color-Paletters/internal/server/repositories/favorites"
	"github.com/mahinuralam/Color-Paletters/internal/server/repositories/palettes"
	"github.com/mahinuralam/Color-Paletters/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Palettes(db dbx.DBTX) palettes.Repository
	Favorites(db dbx.DBTX) favorites.Repository
}
