package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/models"
	"github.com/tarekzhran/inspection-reports/pkg/database"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(database.Config{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.NewMigrator(db, zap.NewNop()).Run("../../migrations"))
	return db
}

func TestReportRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db.DB, zap.NewNop())

	report := &models.ArchivedReport{
		Fingerprint:  "abc123",
		Snapshot:     `{"inspector_name":"مفتش"}`,
		HTML:         "<div>report</div>",
		HasAbsences:  true,
		AbsenceCount: 2,
	}
	require.NoError(t, repo.Create(report))
	assert.NotEmpty(t, report.ID, "Create assigns an id")
	assert.False(t, report.CreatedAt.IsZero())

	got, err := repo.GetByID(report.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, report.Fingerprint, got.Fingerprint)
	assert.Equal(t, report.Snapshot, got.Snapshot)
	assert.Equal(t, report.HTML, got.HTML)
	assert.True(t, got.HasAbsences)
	assert.Equal(t, 2, got.AbsenceCount)
}

func TestReportRepositoryGetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db.DB, zap.NewNop())

	got, err := repo.GetByID("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSheetEntryRepositoryRecentOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSheetEntryRepository(db.DB, zap.NewNop())

	base := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		entry := &models.SheetEntry{
			Date:         "2025-03-15",
			Time:         "10:30",
			Inspector:    "مفتش",
			Location:     "جهة",
			CountAbsence: i,
			SubmittedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(entry))
		assert.NotZero(t, entry.ID)
	}

	entries, err := repo.Recent(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, 4, entries[0].CountAbsence)
	assert.Equal(t, 3, entries[1].CountAbsence)
	assert.Equal(t, 2, entries[2].CountAbsence)
}

func TestSheetEntryRepositoryRecentDefaultLimit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSheetEntryRepository(db.DB, zap.NewNop())

	for i := 0; i < 12; i++ {
		require.NoError(t, repo.Create(&models.SheetEntry{
			Date: "2025-03-15", Time: "10:30", Inspector: "مفتش", Location: "جهة",
		}))
	}

	entries, err := repo.Recent(0)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}

func TestSnapshotRepositoryUpsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db.DB, zap.NewNop())

	require.NoError(t, repo.Save(&models.FormSnapshot{
		ClientKey: "default",
		Payload:   `{"inspector_name":"أول"}`,
	}))
	require.NoError(t, repo.Save(&models.FormSnapshot{
		ClientKey: "default",
		Payload:   `{"inspector_name":"ثان"}`,
	}))

	got, err := repo.Get("default")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"inspector_name":"ثان"}`, got.Payload, "second save replaces the first")

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM form_snapshots`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSnapshotRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db.DB, zap.NewNop())

	require.NoError(t, repo.Save(&models.FormSnapshot{ClientKey: "k", Payload: "{}"}))
	require.NoError(t, repo.Delete("k"))

	got, err := repo.Get("k")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is not an error.
	assert.NoError(t, repo.Delete("k"))
}

func TestDirectoryRepositorySeedAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDirectoryRepository(db.DB, zap.NewNop())

	values := []string{"مستشفى طنطا العام", "مستشفى المحلة الكبرى العام", "مركز صحي سمنود"}
	require.NoError(t, repo.Seed(models.FieldLocation, values))

	got, err := repo.List(models.FieldLocation)
	require.NoError(t, err)
	assert.Equal(t, values, got, "listing preserves seeded order")

	// A second seed of a populated field is a no-op.
	require.NoError(t, repo.Seed(models.FieldLocation, []string{"غير ذلك"}))
	got, err = repo.List(models.FieldLocation)
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestDirectoryRepositoryRejectsUnknownField(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDirectoryRepository(db.DB, zap.NewNop())

	_, err := repo.List("favorite_color")
	assert.Error(t, err)
}

func TestDefaultDirectoryCoversAllFields(t *testing.T) {
	for _, field := range []string{
		models.FieldInspector, models.FieldLocation, models.FieldEmployee, models.FieldPosition,
	} {
		assert.NotEmpty(t, DefaultDirectory[field], "no defaults for %s", field)
	}
}
