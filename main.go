package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsportal/internal/config"
	intdb "newsportal/internal/db"
	api "newsportal/internal/http"
	"newsportal/internal/http/handlers"
	"newsportal/internal/jobs"
	"newsportal/internal/repositories"
	"newsportal/internal/services"
	"newsportal/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := config.OpenDB(env)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if env.RunMigrations {
		if err := intdb.Migrate(db, env.MigrationsDir); err != nil {
			log.Fatalf("migrations: %v", err)
		}
	}

	newsRepo := repositories.NewsRepository{DB: db}
	inquiryRepo := repositories.InquiryRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	codeRepo := repositories.ResetCodeRepository{DB: db}
	files := storage.Files{BaseDir: env.UploadDir}

	hs := api.Handlers{
		System:    handlers.SystemHandler{DB: db},
		News:      handlers.NewsHandler{News: newsRepo, Files: files},
		Inquiries: handlers.InquiryHandler{Inquiries: inquiryRepo},
		Users:     handlers.UserHandler{Users: userRepo, Files: files},
		Auth: handlers.AuthHandler{
			Auth: services.AuthService{
				Users:    userRepo,
				Secret:   []byte(env.JWTSecret),
				TokenTTL: env.TokenTTL,
			},
			Reset: services.ResetService{
				Codes:        codeRepo,
				Users:        userRepo,
				CodeTTL:      env.ResetCodeTTL,
				VerifyWindow: env.ResetVerifyTTL,
			},
		},
		Reports: handlers.ReportHandler{
			Reports: services.ReportService{Inquiries: inquiryRepo},
		},
	}

	cleanup, err := jobs.StartResetCodeCleanup(codeRepo, env.ResetPurgeEvery)
	if err != nil {
		log.Fatalf("jobs: %v", err)
	}
	defer cleanup.Stop()

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           api.NewRouter(env, hs),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}

	log.Println("server stopped")
}
