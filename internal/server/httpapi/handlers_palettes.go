package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mahinuralam/Color-Paletters/internal/common"
	"github.com/mahinuralam/Color-Paletters/internal/server/models"
)

type paletteRequest struct {
	Name           string `json:"name"`
	DominantColors string `json:"dominant_colors"`
	AccentColors   string `json:"accent_colors"`
	IsPublic       bool   `json:"is_public"`
}

type paletteResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DominantColors string    `json:"dominant_colors"`
	AccentColors   string    `json:"accent_colors"`
	IsPublic       bool      `json:"is_public"`
	CreatedBy      string    `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toPaletteResponse(p *models.Palette) paletteResponse {
	return paletteResponse{
		ID:             p.ID,
		Name:           p.Name,
		DominantColors: p.DominantColors,
		AccentColors:   p.AccentColors,
		IsPublic:       p.IsPublic,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
	}
}

func toPaletteResponses(palettes []*models.Palette) []paletteResponse {
	result := make([]paletteResponse, 0, len(palettes))
	for _, p := range palettes {
		result = append(result, toPaletteResponse(p))
	}
	return result
}

func (s *HTTPServer) CreatePalette(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req paletteRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	palette, err := s.palettes.Create(r.Context(), userID, &models.Palette{
		Name:           req.Name,
		DominantColors: req.DominantColors,
		AccentColors:   req.AccentColors,
		IsPublic:       req.IsPublic,
	})
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toPaletteResponse(palette))
}

func (s *HTTPServer) ListPalettes(w http.ResponseWriter, r *http.Request) {

	palettes, err := s.palettes.ListPublic(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPaletteResponses(palettes))
}

func (s *HTTPServer) GetPalette(w http.ResponseWriter, r *http.Request) {

	palette, err := s.palettes.Get(r.Context(), chi.URLParam(r, "paletteID"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "palette not found")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPaletteResponse(palette))
}

func (s *HTTPServer) FavoritePalette(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	palette, err := s.palettes.Favorite(r.Context(), userID, chi.URLParam(r, "paletteID"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "palette not found")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPaletteResponse(palette))
}

func (s *HTTPServer) UnfavoritePalette(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := s.palettes.Unfavorite(r.Context(), userID, chi.URLParam(r, "paletteID")); err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) ListFavorites(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	palettes, err := s.palettes.ListFavorites(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPaletteResponses(palettes))
}
