package main

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/ludotheque/catalog/config"
	"github.com/ludotheque/catalog/database"
	"github.com/ludotheque/catalog/handlers"
	"github.com/ludotheque/catalog/media"
	"github.com/ludotheque/catalog/repository"
	"github.com/ludotheque/catalog/services"
	"github.com/ludotheque/catalog/views"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	storagePaths := []string{cfg.UploadsPath, filepath.Dir(cfg.DatabasePath)}
	for _, p := range storagePaths {
		log.Printf("Ensuring storage directory exists: %s", p)
		if err := os.MkdirAll(p, 0755); err != nil {
			log.Fatalf("FATAL: Failed to create storage directory %s: %v", p, err)
		}
	}

	db, err := database.InitGormDB(cfg.DatabasePath, database.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}

	mediaStore, err := media.NewLocalStorage(cfg.MediaStoragePath, map[media.AssetType]string{
		media.AssetTypeCover: cfg.UploadsSubDir,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize media store: %v", err)
	}
	covers := media.NewCovers(mediaStore, media.NewProcessor(mediaStore, cfg.CoverMaxSize))

	gameRepo := repository.NewGameRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	editorRepo := repository.NewEditorRepository(db)

	gameService := services.NewGameService(gameRepo, genreRepo, editorRepo, covers)
	genreService := services.NewGenreService(genreRepo)
	editorService := services.NewEditorService(editorRepo)

	if _, err := genreService.SeedDefaults(context.Background(), cfg.DefaultGenres); err != nil {
		log.Fatalf("FATAL: Failed to initialize default genres: %v", err)
	}

	renderer, err := handlers.NewRenderer(views.FS)
	if err != nil {
		log.Fatalf("FATAL: Failed to load templates: %v", err)
	}
	staticFS, err := fs.Sub(views.FS, "static")
	if err != nil {
		log.Fatalf("FATAL: Failed to load static assets: %v", err)
	}

	log.Printf("Using database: %s", cfg.DatabasePath)
	log.Printf("Storing uploads in: %s", cfg.UploadsPath)
	log.Printf("Cover max size (longest side): %dpx", cfg.CoverMaxSize)

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", handlers.MethodOverrideHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}

	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(corsHandler.Handler)

	handlers.RegisterRoutes(r, handlers.Dependencies{
		Games:          gameService,
		Genres:         genreService,
		Editors:        editorService,
		Uploads:        mediaStore,
		Renderer:       renderer,
		Static:         staticFS,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	serverAddr := ":" + cfg.Port
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("FATAL: Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
