package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

// ReportRepository archives rendered reports.
type ReportRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *sql.DB, logger *zap.Logger) *ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a rendered report and assigns it a fresh id.
func (r *ReportRepository) Create(report *models.ArchivedReport) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO reports (
			id, fingerprint, snapshot, html, has_absences, absence_count, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		report.ID,
		report.Fingerprint,
		report.Snapshot,
		report.HTML,
		report.HasAbsences,
		report.AbsenceCount,
		report.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to archive report", zap.Error(err))
		return fmt.Errorf("failed to archive report: %w", err)
	}
	return nil
}

// GetByID retrieves an archived report, or nil when it does not exist.
func (r *ReportRepository) GetByID(id string) (*models.ArchivedReport, error) {
	query := `
		SELECT id, fingerprint, snapshot, html, has_absences, absence_count, created_at
		FROM reports
		WHERE id = ?
	`

	var report models.ArchivedReport
	err := r.db.QueryRow(query, id).Scan(
		&report.ID,
		&report.Fingerprint,
		&report.Snapshot,
		&report.HTML,
		&report.HasAbsences,
		&report.AbsenceCount,
		&report.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get report", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}
