package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eztechpal/eztech-portal/internal/blob"
	"github.com/eztechpal/eztech-portal/internal/config"
	dbpkg "github.com/eztechpal/eztech-portal/internal/db"
	"github.com/eztechpal/eztech-portal/internal/middleware"
	"github.com/eztechpal/eztech-portal/internal/observability"
	"github.com/eztechpal/eztech-portal/internal/routes"
)

func main() {

	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	s := dbpkg.NewStore(cfg)
	defer s.Close()

	blobs, err := newBlobStore(cfg)
	if err != nil {
		log.Fatalf("failed to open backup storage: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	dispatcher := routes.RegisterRoutes(r, s, blobs, cfg, logger)
	defer dispatcher.Close()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newBlobStore(cfg *config.Config) (blob.Store, error) {
	if cfg.BackupDriver == "s3" {
		return blob.NewS3(context.Background(), blob.S3Config{
			Bucket:          cfg.BackupS3Bucket,
			Region:          cfg.BackupS3Region,
			AccessKeyID:     cfg.BackupS3KeyID,
			SecretAccessKey: cfg.BackupS3KeySecr,
		})
	}
	return blob.NewFS(cfg.BackupDir)
}
