package repository

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

// DirectoryRepository serves the lookup lists behind the autocomplete
// fields: inspectors, locations, employees and positions.
type DirectoryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewDirectoryRepository creates a new directory repository.
func NewDirectoryRepository(db *sql.DB, logger *zap.Logger) *DirectoryRepository {
	return &DirectoryRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all entries for one directory field, in seeded order.
func (r *DirectoryRepository) List(field string) ([]string, error) {
	switch field {
	case models.FieldInspector, models.FieldLocation, models.FieldEmployee, models.FieldPosition:
	default:
		return nil, fmt.Errorf("unknown directory field: %s", field)
	}

	rows, err := r.db.Query(
		`SELECT value FROM directory_entries WHERE field = ? ORDER BY seq`, field)
	if err != nil {
		r.logger.Error("Failed to list directory entries", zap.String("field", field), zap.Error(err))
		return nil, fmt.Errorf("failed to list directory entries: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan directory entry: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// Seed inserts the default entries for a field if the field is empty, so a
// fresh database starts with the directorate's known names.
func (r *DirectoryRepository) Seed(field string, values []string) error {
	var count int
	if err := r.db.QueryRow(
		`SELECT COUNT(*) FROM directory_entries WHERE field = ?`, field).Scan(&count); err != nil {
		return fmt.Errorf("failed to count directory entries: %w", err)
	}
	if count > 0 {
		return nil
	}

	err := withTx(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(
			`INSERT INTO directory_entries (field, seq, value) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, v := range values {
			if _, err := stmt.Exec(field, i+1, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to seed directory", zap.String("field", field), zap.Error(err))
		return fmt.Errorf("failed to seed directory: %w", err)
	}

	r.logger.Info("Seeded directory field",
		zap.String("field", field), zap.Int("entries", len(values)))
	return nil
}

func withTx(db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
