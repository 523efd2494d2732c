package repository

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

// SheetEntryRepository keeps the local archive of summary rows that were
// submitted upstream successfully. It backs the recent-entries listing.
type SheetEntryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSheetEntryRepository creates a new sheet entry repository.
func NewSheetEntryRepository(db *sql.DB, logger *zap.Logger) *SheetEntryRepository {
	return &SheetEntryRepository{
		db:     db,
		logger: logger,
	}
}

// Create records one submitted summary row.
func (r *SheetEntryRepository) Create(entry *models.SheetEntry) error {
	if entry.SubmittedAt.IsZero() {
		entry.SubmittedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO sheet_entries (
			date, time, inspector, location, count_absence, submitted_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.Exec(query,
		entry.Date,
		entry.Time,
		entry.Inspector,
		entry.Location,
		entry.CountAbsence,
		entry.SubmittedAt,
	)
	if err != nil {
		r.logger.Error("Failed to record sheet entry", zap.Error(err))
		return fmt.Errorf("failed to record sheet entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	entry.ID = id
	return nil
}

// Recent returns the most recently submitted rows, newest first.
func (r *SheetEntryRepository) Recent(limit int) ([]models.SheetEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, date, time, inspector, location, count_absence, submitted_at
		FROM sheet_entries
		ORDER BY submitted_at DESC, id DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		r.logger.Error("Failed to list sheet entries", zap.Error(err))
		return nil, fmt.Errorf("failed to list sheet entries: %w", err)
	}
	defer rows.Close()

	var entries []models.SheetEntry
	for rows.Next() {
		var e models.SheetEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Time, &e.Inspector, &e.Location, &e.CountAbsence, &e.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sheet entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
