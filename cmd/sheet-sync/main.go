package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dmthub/database"
	"dmthub/internal/config"
	"dmthub/internal/ingestion/drive"
	"dmthub/internal/ingestion/sheets"
	"dmthub/internal/models"
	"dmthub/internal/repository"
	"dmthub/internal/service"
)

func main() {
	log.Println("===========================================")
	log.Println("   Source Sync Service Starting...")
	log.Println("===========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[Fatal] could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.OpenGorm(cfg, logger)
	if err != nil {
		log.Fatalf("[Fatal] Failed to connect to database: %v", err)
	}
	log.Println("[Database] Connected successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.OpenPgxPool(ctx, cfg)
	if err != nil {
		log.Fatalf("[Fatal] Failed to open pgx pool: %v", err)
	}
	defer pool.Close()

	sourceLinkRepo := repository.NewSourceLinkRepository(db)
	infographicRepo := repository.NewInfographicRepository(db)

	sheetSync := sheets.NewSyncService(sheets.NewClient(cfg.SheetsAPIURL, cfg.GoogleAPIKey), sheets.NewSnapshotWriter(pool))
	driveSync := drive.NewSyncService(drive.NewClient(cfg.DriveAPIURL, cfg.GoogleAPIKey), infographicRepo)

	scanners := map[string]service.Scanner{
		models.SourceKindDmtSheet:          sheetSync,
		models.SourceKindInfographicFolder: driveSync,
	}

	interval := getEnvDuration("SOURCE_SYNC_INTERVAL", 15*time.Minute)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("[Shutdown] Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	log.Printf("[Service] Scanning every %s", interval)
	runOnce(ctx, sourceLinkRepo, scanners)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[Shutdown] Service stopped gracefully")
			return
		case <-ticker.C:
			runOnce(ctx, sourceLinkRepo, scanners)
		}
	}
}

// runOnce scans every configured source link of every supported kind.
// Failures are recorded on the link row and do not stop the sweep.
func runOnce(ctx context.Context, repo repository.SourceLinkRepository, scanners map[string]service.Scanner) {
	for kind, scanner := range scanners {
		links, err := repo.ListByKind(ctx, kind)
		if err != nil {
			log.Printf("[Sweep] listing %s links: %v", kind, err)
			continue
		}
		for _, link := range links {
			now := time.Now()
			rows, err := scanner.Scan(ctx, link)
			var scanErr *string
			if err != nil {
				msg := err.Error()
				scanErr = &msg
				log.Printf("[Sweep] link %d (%s): %v", link.ID, kind, err)
			} else {
				log.Printf("[Sweep] link %d (%s): %d rows", link.ID, kind, rows)
			}
			if recErr := repo.RecordScanResult(ctx, link.ID, now, scanErr); recErr != nil {
				log.Printf("[Sweep] recording result for link %d: %v", link.ID, recErr)
			}
		}
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
