package repository

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

// SnapshotRepository stores the best-effort "restore last report?" copy of
// the form, one row per client key.
type SnapshotRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *sql.DB, logger *zap.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		db:     db,
		logger: logger,
	}
}

// Save upserts the latest snapshot for a client.
func (r *SnapshotRepository) Save(snapshot *models.FormSnapshot) error {
	if snapshot.SavedAt.IsZero() {
		snapshot.SavedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO form_snapshots (client_key, payload, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(client_key) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
	`
	if _, err := r.db.Exec(query, snapshot.ClientKey, snapshot.Payload, snapshot.SavedAt); err != nil {
		r.logger.Error("Failed to save form snapshot", zap.Error(err))
		return fmt.Errorf("failed to save form snapshot: %w", err)
	}
	return nil
}

// Get retrieves a client's last snapshot, or nil when none was saved.
func (r *SnapshotRepository) Get(clientKey string) (*models.FormSnapshot, error) {
	query := `SELECT client_key, payload, saved_at FROM form_snapshots WHERE client_key = ?`

	var snapshot models.FormSnapshot
	err := r.db.QueryRow(query, clientKey).Scan(&snapshot.ClientKey, &snapshot.Payload, &snapshot.SavedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get form snapshot", zap.String("client_key", clientKey), zap.Error(err))
		return nil, fmt.Errorf("failed to get form snapshot: %w", err)
	}
	return &snapshot, nil
}

// Delete clears a client's snapshot. Deleting a missing snapshot is not an
// error.
func (r *SnapshotRepository) Delete(clientKey string) error {
	if _, err := r.db.Exec(`DELETE FROM form_snapshots WHERE client_key = ?`, clientKey); err != nil {
		r.logger.Error("Failed to delete form snapshot", zap.String("client_key", clientKey), zap.Error(err))
		return fmt.Errorf("failed to delete form snapshot: %w", err)
	}
	return nil
}
