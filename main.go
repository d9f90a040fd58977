package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parisxmas/featuredesk/internal/attach"
	"github.com/parisxmas/featuredesk/internal/config"
	"github.com/parisxmas/featuredesk/internal/gelf"
	"github.com/parisxmas/featuredesk/internal/handler"
	"github.com/parisxmas/featuredesk/internal/repository"
	"github.com/parisxmas/featuredesk/internal/router"
	"github.com/parisxmas/featuredesk/internal/service"
	"github.com/parisxmas/featuredesk/internal/workbook"
)

func main() {
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	// Durable table
	store := workbook.NewStore(cfg.WorkbookPath)
	if err := store.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to prepare workbook: %v", err)
	}
	log.Printf("Workbook ready at %s", cfg.WorkbookPath)

	// Attachment storage
	files, err := attach.NewStore(cfg.UploadsDir)
	if err != nil {
		log.Fatalf("Failed to prepare uploads dir: %v", err)
	}

	// Repositories
	subRepo := repository.NewSubmissionRepo(store)
	voteRepo := repository.NewVoteRepo(store)

	// Services
	intakeSvc := service.NewIntakeService(files, subRepo)
	voteSvc := service.NewVoteService(store, voteRepo)

	// Handlers
	authH := handler.NewAuthHandler(cfg.Users, cfg.JWTSecret)
	subH := handler.NewSubmissionHandler(intakeSvc)
	voteH := handler.NewVoteHandler(voteSvc)

	// Router
	r := router.New(cfg.JWTSecret, cfg.CORSOrigin, authH, subH, voteH)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		ctrlc := make(chan os.Signal, 1)
		signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
		<-ctrlc
		log.Printf("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("FeatureDesk listening on %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
