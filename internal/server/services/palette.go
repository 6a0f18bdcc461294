package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mahinuralam/Color-Paletters/internal/dbx"
	"github.com/mahinuralam/Color-Paletters/internal/server/models"
	"github.com/mahinuralam/Color-Paletters/internal/server/repositories/repomanager"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	publicListCacheKey = "palettes:public"
	publicListCacheTTL = 30 * time.Second
)

// PaletteService provides palette operations: creation, the public listing
// (served through a short-lived in-process cache), and per-user favorites.
type PaletteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       *gocache.Cache
}

// NewPaletteService constructs a PaletteService.
func NewPaletteService(db *sql.DB, m repomanager.RepositoryManager) *PaletteService {
	return &PaletteService{
		db:          db,
		repomanager: m,
		cache:       gocache.New(publicListCacheTTL, time.Minute),
	}
}

// Create persists a new palette owned by userID.
func (s *PaletteService) Create(ctx context.Context, userID string, palette *models.Palette) (*models.Palette, error) {
	palette.ID = uuid.NewString()
	palette.CreatedBy = userID

	repo := s.repomanager.Palettes(s.db)
	p, err := repo.Create(ctx, palette)
	if err != nil {
		return nil, fmt.Errorf("error creating palette: %w", err)
	}

	if p.IsPublic {
		s.cache.Delete(publicListCacheKey)
	}
	return p, nil
}

// ListPublic returns all public palettes. Results are cached briefly; any
// public write invalidates the cache so readers observe their own writes.
func (s *PaletteService) ListPublic(ctx context.Context) ([]*models.Palette, error) {
	if v, ok := s.cache.Get(publicListCacheKey); ok {
		if cached, ok := v.([]*models.Palette); ok {
			return cached, nil
		}
	}

	repo := s.repomanager.Palettes(s.db)
	result, err := repo.ListPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing palettes: %w", err)
	}

	s.cache.Set(publicListCacheKey, result, publicListCacheTTL)
	return result, nil
}

// Get returns the palette with the given ID, or common.ErrorNotFound.
func (s *PaletteService) Get(ctx context.Context, paletteID string) (*models.Palette, error) {
	return s.repomanager.Palettes(s.db).GetByID(ctx, paletteID)
}

// Favorite records paletteID as a favorite of userID. The palette lookup and
// the favorite insert run in one transaction; an unknown palette yields
// common.ErrorNotFound and nothing is written. Favoriting the same palette
// twice is idempotent.
func (s *PaletteService) Favorite(ctx context.Context, userID, paletteID string) (*models.Palette, error) {
	var palette *models.Palette
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		p, err := s.repomanager.Palettes(tx).GetByID(ctx, paletteID)
		if err != nil {
			return err
		}
		if err := s.repomanager.Favorites(tx).Add(ctx, userID, paletteID); err != nil {
			return err
		}
		palette = p
		return nil
	}); err != nil {
		return nil, err
	}
	return palette, nil
}

// Unfavorite removes paletteID from userID's favorites. Removing a favorite
// that was never recorded is not an error.
func (s *PaletteService) Unfavorite(ctx context.Context, userID, paletteID string) error {
	return s.repomanager.Favorites(s.db).Remove(ctx, userID, paletteID)
}

// ListFavorites returns the palettes userID has favorited.
func (s *PaletteService) ListFavorites(ctx context.Context, userID string) ([]*models.Palette, error) {
	result, err := s.repomanager.Favorites(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}
	return result, nil
}
