package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestEntityRepo(t *testing.T) (*entityRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &entityRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testEntity() models.SyncEntity {
	return models.SyncEntity{
		UserID:     1,
		EntityType: models.EntityTypeEntry,
		LocalID:    "entry-0001",
		Payload:    []byte(`{"duration_minutes":30}`),
		Checksum:   "abc123",
	}
}

func TestUpsert_Inserted(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	entity := testEntity()

	rows := sqlmock.
		NewRows([]string{"id", "sync_version", "inserted"}).
		AddRow(10, 1, true)

	mock.ExpectQuery("INSERT INTO sync_entities").
		WithArgs(entity.UserID, entity.EntityType, entity.LocalID, []byte(entity.Payload), entity.Checksum, sqlmock.AnyArg(), sqlmock.AnyArg(), nil).
		WillReturnRows(rows)

	result, err := repo.Upsert(context.Background(), entity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != models.OutcomeInserted {
		t.Errorf("expected outcome %q, got %q", models.OutcomeInserted, result.Outcome)
	}
	if result.SyncVersion != 1 {
		t.Errorf("expected sync_version=1, got %d", result.SyncVersion)
	}
	if result.RemoteID != 10 {
		t.Errorf("expected remote_id=10, got %d", result.RemoteID)
	}
}

func TestUpsert_Updated(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	entity := testEntity()
	entity.Checksum = "def456"

	rows := sqlmock.
		NewRows([]string{"id", "sync_version", "inserted"}).
		AddRow(10, 2, false)

	mock.ExpectQuery("INSERT INTO sync_entities").
		WillReturnRows(rows)

	result, err := repo.Upsert(context.Background(), entity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != models.OutcomeUpdated {
		t.Errorf("expected outcome %q, got %q", models.OutcomeUpdated, result.Outcome)
	}
	if result.SyncVersion != 2 {
		t.Errorf("expected sync_version=2, got %d", result.SyncVersion)
	}
}

func TestUpsert_SkippedOnChecksumMatch(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	entity := testEntity()
	now := time.Now()

	// Conditional update did not fire: no row comes back.
	mock.ExpectQuery("INSERT INTO sync_entities").
		WillReturnError(sql.ErrNoRows)

	// The repository then loads the current row to report its version.
	existing := sqlmock.
		NewRows([]string{"id", "user_id", "entity_type", "local_id", "payload", "checksum", "sync_version", "created_at", "updated_at", "deleted_at"}).
		AddRow(10, entity.UserID, entity.EntityType, entity.LocalID, []byte(entity.Payload), entity.Checksum, 3, now, now, nil)

	mock.ExpectQuery("SELECT(.|\n)*FROM sync_entities").
		WithArgs(entity.UserID, entity.EntityType, entity.LocalID).
		WillReturnRows(existing)

	result, err := repo.Upsert(context.Background(), entity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != models.OutcomeSkipped {
		t.Errorf("expected outcome %q, got %q", models.OutcomeSkipped, result.Outcome)
	}
	if result.SyncVersion != 3 {
		t.Errorf("expected authoritative sync_version=3, got %d", result.SyncVersion)
	}
	if result.RemoteID != 10 {
		t.Errorf("expected remote_id=10, got %d", result.RemoteID)
	}
}

func TestUpsert_TransientFailureIsClassified(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO sync_entities").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.Upsert(context.Background(), testEntity())
	if !errors.Is(err, ErrTransientStorage) {
		t.Fatalf("expected ErrTransientStorage, got %v", err)
	}
}

func TestUpsert_NonRetryableFailure(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO sync_entities").
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.Upsert(context.Background(), testEntity())
	if errors.Is(err, ErrTransientStorage) {
		t.Fatalf("constraint violation must not be transient: %v", err)
	}
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetByKey_NotFound(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)*FROM sync_entities").
		WithArgs(int64(1), models.EntityTypeGoal, "goal-missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByKey(context.Background(), models.EntityKey{
		UserID:     1,
		EntityType: models.EntityTypeGoal,
		LocalID:    "goal-missing",
	})
	if !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestGetByKey_Success(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "user_id", "entity_type", "local_id", "payload", "checksum", "sync_version", "created_at", "updated_at", "deleted_at"}).
		AddRow(7, 1, "piece", "piece-0001", []byte(`{"title":"Etude"}`), "c1", 4, now, now, nil)

	mock.ExpectQuery("SELECT(.|\n)*FROM sync_entities").
		WillReturnRows(rows)

	entity, err := repo.GetByKey(context.Background(), models.EntityKey{
		UserID:     1,
		EntityType: models.EntityTypePiece,
		LocalID:    "piece-0001",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.ID != 7 {
		t.Errorf("expected id=7, got %d", entity.ID)
	}
	if entity.SyncVersion != 4 {
		t.Errorf("expected sync_version=4, got %d", entity.SyncVersion)
	}
	if string(entity.Payload) != `{"title":"Etude"}` {
		t.Errorf("unexpected payload: %s", entity.Payload)
	}
}

func TestGetChangedSince_ReturnsPage(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "user_id", "entity_type", "local_id", "payload", "checksum", "sync_version", "created_at", "updated_at", "deleted_at"}).
		AddRow(11, 1, "entry", "entry-0001", []byte(`{}`), "c1", 1, now, now, nil).
		AddRow(12, 1, "goal", "goal-0001", []byte(`{}`), "c2", 2, now, now, now)

	mock.ExpectQuery("SELECT(.|\n)*FROM sync_entities").
		WillReturnRows(rows)

	entities, err := repo.GetChangedSince(context.Background(), 1, time.Time{}, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(entities))
	}
	if entities[0].ID != 11 || entities[1].ID != 12 {
		t.Errorf("expected ids ordered 11, 12; got %d, %d", entities[0].ID, entities[1].ID)
	}
	// Soft-deleted rows ride along so pulling clients learn about deletions.
	if !entities[1].Deleted() {
		t.Error("expected second entity to be soft-deleted")
	}
}

func TestGetChangedSince_QueryError(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)*FROM sync_entities").
		WillReturnError(errors.New("db network error"))

	_, err := repo.GetChangedSince(context.Background(), 1, time.Time{}, 0, 100)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
