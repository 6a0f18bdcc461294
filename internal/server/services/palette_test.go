package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mahinuralam/Color-Paletters/internal/common"
	"github.com/mahinuralam/Color-Paletters/internal/server/models"
)

func TestPaletteCreate_SetsOwnerAndID(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{p: &fakePalettesRepo{}}
	s := NewPaletteService(db, rm)

	p, err := s.Create(context.Background(), "u-1", &models.Palette{
		Name: "Sunset", DominantColors: "#ff5733", AccentColors: "#ffc300", IsPublic: true,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected generated palette ID")
	}
	if p.CreatedBy != "u-1" {
		t.Fatalf("expected owner u-1, got %q", p.CreatedBy)
	}
}

func TestPaletteCreate_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{p: &fakePalettesRepo{createErr: errBoom{}}}
	s := NewPaletteService(db, rm)

	_, err := s.Create(context.Background(), "u-1", &models.Palette{Name: "Sunset"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestListPublic_CachesResult(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakePalettesRepo{listOut: []*models.Palette{{ID: "p-1", Name: "Sunset"}}}
	rm := &fakeRepoManager{p: repo}
	s := NewPaletteService(db, rm)

	first, err := s.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("ListPublic error: %v", err)
	}
	second, err := s.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("ListPublic error: %v", err)
	}

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("unexpected results: %v %v", first, second)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected one repository call, got %d", repo.listCalls)
	}
}

func TestCreate_InvalidatesPublicCache(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakePalettesRepo{listOut: []*models.Palette{{ID: "p-1"}}}
	rm := &fakeRepoManager{p: repo}
	s := NewPaletteService(db, rm)

	if _, err := s.ListPublic(context.Background()); err != nil {
		t.Fatalf("ListPublic error: %v", err)
	}
	if _, err := s.Create(context.Background(), "u-1", &models.Palette{Name: "New", IsPublic: true}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := s.ListPublic(context.Background()); err != nil {
		t.Fatalf("ListPublic error: %v", err)
	}

	if repo.listCalls != 2 {
		t.Fatalf("expected cache invalidation to force a second repository call, got %d", repo.listCalls)
	}
}

func TestFavorite_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	fav := &fakeFavoritesRepo{}
	rm := &fakeRepoManager{
		p: &fakePalettesRepo{getOut: &models.Palette{ID: "p-1", Name: "Sunset"}},
		f: fav,
	}
	s := NewPaletteService(db, rm)

	p, err := s.Favorite(context.Background(), "u-1", "p-1")
	if err != nil {
		t.Fatalf("Favorite error: %v", err)
	}
	if p.ID != "p-1" {
		t.Fatalf("unexpected palette: %+v", p)
	}
	if len(fav.added) != 1 || fav.added[0] != [2]string{"u-1", "p-1"} {
		t.Fatalf("favorite not recorded: %+v", fav.added)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestFavorite_UnknownPalette(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	fav := &fakeFavoritesRepo{}
	rm := &fakeRepoManager{
		p: &fakePalettesRepo{getErr: common.ErrorNotFound},
		f: fav,
	}
	s := NewPaletteService(db, rm)

	_, err := s.Favorite(context.Background(), "u-1", "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
	if len(fav.added) != 0 {
		t.Fatalf("no favorite may be recorded for an unknown palette")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestFavorite_AddError_RollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		p: &fakePalettesRepo{getOut: &models.Palette{ID: "p-1"}},
		f: &fakeFavoritesRepo{addErr: errBoom{}},
	}
	s := NewPaletteService(db, rm)

	_, err := s.Favorite(context.Background(), "u-1", "p-1")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestUnfavorite(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{f: &fakeFavoritesRepo{}}
	s := NewPaletteService(db, rm)

	if err := s.Unfavorite(context.Background(), "u-1", "p-1"); err != nil {
		t.Fatalf("Unfavorite error: %v", err)
	}
}

func TestListFavorites(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{f: &fakeFavoritesRepo{listOut: []*models.Palette{{ID: "p-1"}}}}
	s := NewPaletteService(db, rm)

	got, err := s.ListFavorites(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListFavorites error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
