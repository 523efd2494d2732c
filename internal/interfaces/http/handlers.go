package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/form"
	"github.com/tarekzhran/inspection-reports/internal/models"
	"github.com/tarekzhran/inspection-reports/internal/report"
	"github.com/tarekzhran/inspection-reports/internal/sheets"
)

// defaultClientKey is used when a client does not identify itself for the
// snapshot convenience store.
const defaultClientKey = "default"

// Handlers contains all HTTP request handlers
type Handlers struct {
	renderer  *report.Renderer
	pdf       *report.PDFGenerator
	gate      *sheets.Gate
	reports   ReportStore
	entries   SheetEntryStore
	snapshots SnapshotStore
	directory DirectoryStore
	workbook  WorkbookAppender
	logger    *zap.Logger
}

// Stores the handlers depend on; satisfied by the repository package.
type (
	ReportStore interface {
		Create(report *models.ArchivedReport) error
		GetByID(id string) (*models.ArchivedReport, error)
	}
	SheetEntryStore interface {
		Create(entry *models.SheetEntry) error
		Recent(limit int) ([]models.SheetEntry, error)
	}
	SnapshotStore interface {
		Save(snapshot *models.FormSnapshot) error
		Get(clientKey string) (*models.FormSnapshot, error)
		Delete(clientKey string) error
	}
	DirectoryStore interface {
		List(field string) ([]string, error)
	}
	WorkbookAppender interface {
		Append(entry models.SheetEntry) error
	}
)

// NewHandlers creates a new Handlers instance
func NewHandlers(
	renderer *report.Renderer,
	pdf *report.PDFGenerator,
	gate *sheets.Gate,
	reports ReportStore,
	entries SheetEntryStore,
	snapshots SnapshotStore,
	directory DirectoryStore,
	workbook WorkbookAppender,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		renderer:  renderer,
		pdf:       pdf,
		gate:      gate,
		reports:   reports,
		entries:   entries,
		snapshots: snapshots,
		directory: directory,
		workbook:  workbook,
		logger:    logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Field   string      `json:"field,omitempty"`
}

// AbsenceEntryRequest is one absence row as posted by the client.
type AbsenceEntryRequest struct {
	EmployeeName string `json:"employee_name"`
	Position     string `json:"position"`
	CaseStart    int    `json:"case_start"`
	CaseEnd      int    `json:"case_end"`
}

// GenerateReportRequest is the posted form state.
type GenerateReportRequest struct {
	InspectorName string                `json:"inspector_name"`
	Location      string                `json:"location"`
	Date          string                `json:"date"`
	Time          string                `json:"time"`
	Absences      []AbsenceEntryRequest `json:"absences"`

	// AllowEmptyAbsences is set after the user confirmed continuing with
	// zero valid absence rows.
	AllowEmptyAbsences bool `json:"allow_empty_absences"`
	// SaveSnapshot stores the submitted form for the restore prompt.
	SaveSnapshot bool `json:"save_snapshot"`
}

// GenerateReportResponse returns the rendered document.
type GenerateReportResponse struct {
	ID            string `json:"id"`
	HTML          string `json:"html"`
	HasAbsences   bool   `json:"has_absences"`
	AbsenceCount  int    `json:"absence_count"`
	FormattedDate string `json:"formatted_date"`
	FormattedTime string `json:"formatted_time"`
}

// SendToSheetsRequest mirrors the external endpoint's payload shape.
type SendToSheetsRequest struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Inspector    string `json:"inspector"`
	Location     string `json:"location"`
	CountAbsence int    `json:"countAbsence"`
}

// HealthCheck handles GET /api/health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Inspection reports service is running",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// GenerateReport handles POST /api/v1/reports
func (h *Handlers) GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	state := form.New()
	state.InspectorName = req.InspectorName
	state.Location = req.Location
	state.Date = req.Date
	state.Time = req.Time
	for _, a := range req.Absences {
		pos := state.AddEntry()
		state.SetEntry(pos, models.AbsenceEntry{
			EmployeeName: a.EmployeeName,
			Position:     a.Position,
			CaseStart:    a.CaseStart,
			CaseEnd:      a.CaseEnd,
		})
	}

	record := state.Snapshot()
	opts := form.Options{
		RawRowCount:        len(req.Absences),
		AllowEmptyAbsences: req.AllowEmptyAbsences,
	}
	if err := form.Validate(record, opts, time.Now()); err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, form.ErrNeedsConfirmation) {
			status = http.StatusConflict
		}
		c.JSON(status, Response{
			Success: false,
			Error:   err.Error(),
			Message: form.MessageFor(err),
			Field:   form.FieldFor(err),
		})
		return
	}

	doc, err := h.renderer.Render(record)
	if err != nil {
		h.logger.Error("Report rendering failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to render report",
			Message: "حدث خطأ في إنشاء التقرير. يرجى المحاولة مرة أخرى.",
		})
		return
	}

	snapshotJSON, err := json.Marshal(record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to encode snapshot"})
		return
	}

	archived := &models.ArchivedReport{
		Fingerprint:  sheets.Fingerprint(record),
		Snapshot:     string(snapshotJSON),
		HTML:         doc.HTML,
		HasAbsences:  doc.HasAbsences,
		AbsenceCount: doc.AbsenceCount,
	}
	if err := h.reports.Create(archived); err != nil {
		h.logger.Error("Failed to archive report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to archive report"})
		return
	}

	if req.SaveSnapshot {
		// Best effort; a failed save never blocks the report.
		err := h.snapshots.Save(&models.FormSnapshot{
			ClientKey: clientKey(c),
			Payload:   string(snapshotJSON),
		})
		if err != nil {
			h.logger.Warn("Failed to save form snapshot", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: GenerateReportResponse{
			ID:            archived.ID,
			HTML:          doc.HTML,
			HasAbsences:   doc.HasAbsences,
			AbsenceCount:  doc.AbsenceCount,
			FormattedDate: doc.FormattedDate,
			FormattedTime: doc.FormattedTime,
		},
		Message: "تم إنشاء التقرير بنجاح",
	})
}

// GetReport handles GET /api/v1/reports/:id
func (h *Handlers) GetReport(c *gin.Context) {
	archived, err := h.reports.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to retrieve report"})
		return
	}
	if archived == nil {
		c.JSON(http.StatusNotFound, Response{Success: false, Error: "report not found"})
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: archived})
}

// GetReportPDF handles GET /api/v1/reports/:id/pdf
func (h *Handlers) GetReportPDF(c *gin.Context) {
	archived, err := h.reports.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to retrieve report"})
		return
	}
	if archived == nil {
		c.JSON(http.StatusNotFound, Response{Success: false, Error: "report not found"})
		return
	}

	var record models.InspectionRecord
	if err := json.Unmarshal([]byte(archived.Snapshot), &record); err != nil {
		h.logger.Error("Corrupt archived snapshot", zap.String("id", archived.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "archived report is corrupt"})
		return
	}

	doc, err := h.renderer.Render(record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to render report"})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="inspection-report-`+archived.ID+`.pdf"`)
	c.Status(http.StatusOK)
	if err := h.pdf.Generate(record, doc, c.Writer); err != nil {
		h.logger.Error("PDF generation failed", zap.String("id", archived.ID), zap.Error(err))
	}
}

// SendToSheets handles POST /api/send-to-sheets
func (h *Handlers) SendToSheets(c *gin.Context) {
	var req SendToSheetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}
	if req.Date == "" || req.Time == "" || req.Inspector == "" || req.Location == "" {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "missing required fields: date, time, inspector, and location are required",
		})
		return
	}

	record := models.InspectionRecord{
		InspectorName: req.Inspector,
		Location:      req.Location,
		Date:          req.Date,
		Time:          req.Time,
	}
	if err := h.gate.Submit(c.Request.Context(), record, req.CountAbsence); err != nil {
		c.JSON(submissionStatus(err), Response{
			Success: false,
			Error:   err.Error(),
			Message: sheets.MessageFor(err),
		})
		return
	}

	entry := models.SheetEntry{
		Date:         req.Date,
		Time:         req.Time,
		Inspector:    req.Inspector,
		Location:     req.Location,
		CountAbsence: req.CountAbsence,
	}
	if err := h.entries.Create(&entry); err != nil {
		h.logger.Warn("Failed to archive sheet entry", zap.Error(err))
	}
	if err := h.workbook.Append(entry); err != nil {
		h.logger.Warn("Failed to append workbook row", zap.Error(err))
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "تم إرسال البيانات بنجاح لجوجل شيتس!",
	})
}

func submissionStatus(err error) int {
	switch {
	case errors.Is(err, sheets.ErrAlreadySent):
		return http.StatusConflict
	case errors.Is(err, sheets.ErrEndpointMisconfigured):
		return http.StatusFailedDependency
	default:
		return http.StatusBadGateway
	}
}

// GetRecentEntries handles GET /api/get-recent-entries. The response keys
// rows by the spreadsheet's header row.
func (h *Handlers) GetRecentEntries(c *gin.Context) {
	entries, err := h.entries.Recent(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve entries",
		})
		return
	}

	data := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		data = append(data, map[string]interface{}{
			"Date":          e.Date,
			"Time":          e.Time,
			"Inspector":     e.Inspector,
			"Location":      e.Location,
			"Count absence": e.CountAbsence,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"message": "Retrieved " + strconv.Itoa(len(data)) + " entries",
	})
}

// Suggest handles GET /api/v1/suggest?field=&q=
func (h *Handlers) Suggest(c *gin.Context) {
	field := c.Query("field")
	corpus, err := h.directory.List(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "unknown suggestion field",
		})
		return
	}

	matches := form.Suggest(c.Query("q"), corpus)
	if matches == nil {
		matches = []string{}
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: matches})
}

// GetSnapshot handles GET /api/v1/snapshot
func (h *Handlers) GetSnapshot(c *gin.Context) {
	snapshot, err := h.snapshots.Get(clientKey(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to retrieve snapshot"})
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusNotFound, Response{Success: false, Error: "no saved snapshot"})
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: snapshot})
}

// SaveSnapshot handles PUT /api/v1/snapshot
func (h *Handlers) SaveSnapshot(c *gin.Context) {
	var record models.InspectionRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}
	payload, err := json.Marshal(record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to encode snapshot"})
		return
	}
	snapshot := &models.FormSnapshot{ClientKey: clientKey(c), Payload: string(payload)}
	if err := h.snapshots.Save(snapshot); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to save snapshot"})
		return
	}
	c.JSON(http.StatusOK, Response{Success: true})
}

// DeleteSnapshot handles DELETE /api/v1/snapshot
func (h *Handlers) DeleteSnapshot(c *gin.Context) {
	if err := h.snapshots.Delete(clientKey(c)); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to delete snapshot"})
		return
	}
	c.JSON(http.StatusOK, Response{Success: true})
}

func clientKey(c *gin.Context) string {
	if key := c.GetHeader("X-Client-Key"); key != "" {
		return key
	}
	return defaultClientKey
}
