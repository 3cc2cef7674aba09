package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"dmthub/database"
	"dmthub/internal/config"
	"dmthub/internal/httpapi"
	"dmthub/internal/ingestion/drive"
	"dmthub/internal/ingestion/sheets"
	"dmthub/internal/repository"
	"dmthub/internal/scope"
	"dmthub/internal/service"
	"dmthub/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.OpenGorm(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	ctx := context.Background()
	pool, err := database.OpenPgxPool(ctx, cfg)
	if err != nil {
		log.Fatalf("could not open pgx pool: %v", err)
	}
	defer pool.Close()

	sessions, err := scope.NewSessionStore(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Printf("[Warning] session store unavailable: %v", err)
	}

	uploads, err := storage.NewUploadStore(cfg.UploadDir, cfg.UploadMaxBytes())
	if err != nil {
		log.Fatalf("could not prepare upload dir: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	disasterRepo := repository.NewDisasterRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	sourceLinkRepo := repository.NewSourceLinkRepository(db)
	infographicRepo := repository.NewInfographicRepository(db)
	reportRepo := repository.NewReportRepository(db)
	notulensiRepo := repository.NewNotulensiRepository(db)

	// Sheet and Drive mirroring
	sheetsClient := sheets.NewClient(cfg.SheetsAPIURL, cfg.GoogleAPIKey)
	snapshotWriter := sheets.NewSnapshotWriter(pool)
	sheetSync := sheets.NewSyncService(sheetsClient, snapshotWriter)

	driveClient := drive.NewClient(cfg.DriveAPIURL, cfg.GoogleAPIKey)
	driveSync := drive.NewSyncService(driveClient, infographicRepo)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	disasterService := service.NewDisasterService(disasterRepo, sessions)
	registrationService := service.NewRegistrationService(registrationRepo, notificationRepo, uploads)
	notificationService := service.NewNotificationService(notificationRepo)
	documentService := service.NewDocumentService(reportRepo, notulensiRepo, infographicRepo, uploads)
	sourceLinkService := service.NewSourceLinkService(sourceLinkRepo, sheetSync, driveSync)

	r := httpapi.NewRouter(httpapi.Deps{
		Auth:          authService,
		Disasters:     disasterService,
		Registrations: registrationService,
		Notifications: notificationService,
		Documents:     documentService,
		SourceLinks:   sourceLinkService,
		Sessions:      sessions,
		Uploads:       uploads,
		UploadDir:     cfg.UploadDir,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
