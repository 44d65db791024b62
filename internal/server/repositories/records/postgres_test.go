package records

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func mediaColumns() []string {
	return []string{"id", "album_id", "uploader_id", "kind", "asset_id", "width", "height",
		"duration_secs", "size_bytes", "correlation_key", "ready", "deleted", "created_at", "version"}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+media\b`).
		WithArgs("m1", "a1", "u1", "image", "img_a", 640, 480,
			0.0, int64(100), "key-1", false, false, created, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Media{
		ID: "m1", AlbumID: "a1", UploaderID: "u1", Kind: "image", AssetID: "img_a",
		Width: 640, Height: 480, SizeBytes: 100, CorrelationKey: "key-1",
		CreatedAt: created, Version: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSelectUpdated_ReturnsRowsInVersionOrder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	rows := sqlmock.NewRows(mediaColumns()).
		AddRow("m1", "a1", "u1", "image", "img_a", 640, 480, 0.0, int64(10), "k1", true, false, created, int64(5)).
		AddRow("m2", "a1", "u1", "video", "vid_c", 0, 0, 9.5, int64(20), "k2", false, false, created, int64(6))

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+media\s+WHERE\s+album_id=\$1\s+AND\s+version>\$2\s+ORDER\s+BY\s+version$`).
		WithArgs("a1", int64(4)).
		WillReturnRows(rows)

	got, err := repo.SelectUpdated(context.Background(), "a1", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	if got[0].ID != "m1" || got[1].Kind != "video" || got[1].DurationSecs != 9.5 {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestMarkReadyByAssetID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^UPDATE\s+media\s+SET\s+ready=TRUE,\s*version=\$2\s+WHERE\s+asset_id=\$1$`).
		WithArgs("ghost", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkReadyByAssetID(context.Background(), "ghost", 9)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGetByAssetID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+media\s+WHERE\s+asset_id=\$1$`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByAssetID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
