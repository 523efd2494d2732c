package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/config"
	"github.com/tarekzhran/inspection-reports/internal/export"
	httpapi "github.com/tarekzhran/inspection-reports/internal/interfaces/http"
	"github.com/tarekzhran/inspection-reports/internal/report"
	"github.com/tarekzhran/inspection-reports/internal/repository"
	"github.com/tarekzhran/inspection-reports/internal/sheets"
	"github.com/tarekzhran/inspection-reports/pkg/database"
	"github.com/tarekzhran/inspection-reports/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting inspection reports service",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	// Initialize database
	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	migrator := database.NewMigrator(db, logger)
	if err := migrator.Run(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	reportRepo := repository.NewReportRepository(db.DB, logger)
	entryRepo := repository.NewSheetEntryRepository(db.DB, logger)
	snapshotRepo := repository.NewSnapshotRepository(db.DB, logger)
	directoryRepo := repository.NewDirectoryRepository(db.DB, logger)

	// Seed the autocomplete directory on first run
	for field, values := range repository.DefaultDirectory {
		if err := directoryRepo.Seed(field, values); err != nil {
			logger.Fatal("Failed to seed directory", zap.String("field", field), zap.Error(err))
		}
	}

	// Initialize report rendering
	reportCfg := report.Config{
		MinistryName:   cfg.Report.MinistryName,
		DepartmentName: cfg.Report.DepartmentName,
		ReportTitle:    cfg.Report.Title,
		ReportSubtitle: cfg.Report.Subtitle,
		ManagerName:    cfg.Report.ManagerName,
	}
	renderer := report.NewRenderer(reportCfg, logger)
	pdfGen := report.NewPDFGenerator(report.PDFConfig{FontPath: cfg.Report.PDFFontPath}, reportCfg)

	// Initialize sheets submission
	sheetsClient := sheets.NewClient(sheets.ClientConfig{
		EndpointURL: cfg.Sheets.EndpointURL,
		Timeout:     cfg.Sheets.Timeout,
	}, logger)
	gate := sheets.NewGate(sheetsClient, logger)

	// Local audit workbook
	workbook := export.NewWorkbookWriter(cfg.Export.WorkbookPath, logger)

	// Initialize HTTP server
	handlers := httpapi.NewHandlers(
		renderer,
		pdfGen,
		gate,
		reportRepo,
		entryRepo,
		snapshotRepo,
		directoryRepo,
		workbook,
		logger,
	)
	server := httpapi.NewServer(httpapi.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, handlers, logger)

	// Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited")
}
