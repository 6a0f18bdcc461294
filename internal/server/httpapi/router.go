package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *HTTPServer) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.Root)
	r.Get("/healthz", s.Healthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.RegisterUser)
		r.Post("/auth/login", s.Login)

		r.Get("/palettes", s.ListPalettes)
		r.Get("/palettes/{paletteID}", s.GetPalette)

		// Everything below requires a valid access token.
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Post("/palettes", s.CreatePalette)
			r.Post("/palettes/{paletteID}/favorite", s.FavoritePalette)
			r.Delete("/palettes/{paletteID}/favorite", s.UnfavoritePalette)
			r.Get("/me/favorites", s.ListFavorites)
		})
	})

	return r
}
