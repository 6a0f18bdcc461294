package palettes

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mahinuralam/Color-Paletters/internal/common"
	"github.com/mahinuralam/Color-Paletters/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func paletteColumns() []string {
	return []string{"id", "name", "dominant_colors", "accent_colors", "is_public", "created_by", "created_at"}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+palettes\s*\(id,\s*name,\s*dominant_colors,\s*accent_colors,\s*is_public,\s*created_by\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+created_at\s*$`

	created := time.Now()
	mock.ExpectQuery(q).
		WithArgs("p-1", "Sunset", "#ff5733,#c70039", "#ffc300", true, "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	p := &models.Palette{
		ID: "p-1", Name: "Sunset",
		DominantColors: "#ff5733,#c70039", AccentColors: "#ffc300",
		IsPublic: true, CreatedBy: "u-1",
	}
	got, err := repo.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected palette: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+palettes`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Palette{ID: "p-1", Name: "Sunset"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*dominant_colors,\s*accent_colors,\s*is_public,\s*created_by,\s*created_at\s+FROM\s+palettes\s+WHERE\s+id\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows(paletteColumns()).
		AddRow("p-1", "Sunset", "#ff5733", "#ffc300", true, "u-1", time.Now())
	mock.ExpectQuery(q).WithArgs("p-1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Name != "Sunset" || got.CreatedBy != "u-1" {
		t.Fatalf("unexpected palette: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*name`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_NullCreatedBy(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(paletteColumns()).
		AddRow("p-2", "Ocean", "#0077be", "#00c2cb", true, nil, time.Now())
	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*name`).WithArgs("p-2").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "p-2")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.CreatedBy != "" {
		t.Fatalf("expected empty CreatedBy for NULL column, got %q", got.CreatedBy)
	}
}

func TestListPublic(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,.*FROM\s+palettes\s+WHERE\s+is_public\s*=\s*true\s+ORDER\s+BY\s+created_at\s+DESC\s*$`

	rows := sqlmock.NewRows(paletteColumns()).
		AddRow("p-1", "Sunset", "#ff5733", "#ffc300", true, "u-1", time.Now()).
		AddRow("p-2", "Ocean", "#0077be", "#00c2cb", true, nil, time.Now())
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("ListPublic error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p-1" || got[1].ID != "p-2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListPublic_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*name`).
		WillReturnRows(sqlmock.NewRows(paletteColumns()))

	got, err := repo.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("ListPublic error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
