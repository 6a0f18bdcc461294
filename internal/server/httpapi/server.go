// Package httpapi exposes the palette service over a JSON REST API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mahinuralam/Color-Paletters/internal/logging"
	"github.com/mahinuralam/Color-Paletters/internal/server/models"
)

// userService is the part of the user service the HTTP layer needs.
type userService interface {
	Register(ctx context.Context, username string, email string, password string) (*models.User, string, error)
	Login(ctx context.Context, username string, password string) (string, error)
}

// paletteService is the part of the palette service the HTTP layer needs.
type paletteService interface {
	Create(ctx context.Context, userID string, palette *models.Palette) (*models.Palette, error)
	ListPublic(ctx context.Context) ([]*models.Palette, error)
	Get(ctx context.Context, paletteID string) (*models.Palette, error)
	Favorite(ctx context.Context, userID string, paletteID string) (*models.Palette, error)
	Unfavorite(ctx context.Context, userID string, paletteID string) error
	ListFavorites(ctx context.Context, userID string) ([]*models.Palette, error)
}

type HTTPServer struct {
	address   string
	users     userService
	palettes  paletteService
	logger    logging.Logger
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us userService, ps paletteService, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		palettes:  ps,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
