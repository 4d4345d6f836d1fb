package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/englishroom/portal-api/internal/config"
	"github.com/englishroom/portal-api/internal/database"
	"github.com/englishroom/portal-api/internal/handler"
	"github.com/englishroom/portal-api/internal/middleware"
	"github.com/englishroom/portal-api/internal/models"
	"github.com/englishroom/portal-api/internal/repository"
	"github.com/englishroom/portal-api/internal/router"
	"github.com/englishroom/portal-api/internal/service"
	cloud "github.com/englishroom/portal-api/pkg/cloudinary"
	"github.com/englishroom/portal-api/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Assignment{}, &models.Classwork{}, &models.GalleryItem{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	blobs, err := storage.New(storage.Config{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		UseSSL:    cfg.MinioUseSSL,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create blob store client: %v", err)
	}

	photos, err := cloud.New(cloud.Config{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		Folder:    cfg.CloudinaryFolder,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create cloudinary client: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	assignmentRepo := repository.NewAssignmentRepository(db)
	classworkRepo := repository.NewClassworkRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	paperRepo := repository.NewPaperRepository(blobs, cfg.PapersBucket)

	assignmentService := service.NewAssignmentService(assignmentRepo, validate, logger)
	classworkService := service.NewClassworkService(classworkRepo, blobs, cfg.ClassworkBucket, cfg.MaxUploadMB, validate, logger)
	paperService := service.NewPaperService(paperRepo, blobs, cfg.PapersBucket, cfg.MaxUploadMB, logger)
	galleryService := service.NewGalleryService(galleryRepo, photos, cfg.MaxUploadMB, validate, logger)
	authService := service.NewAuthService(redisClient, cfg.AdminPassword, cfg.JWTSecret, logger)

	assignmentHandler := handler.NewAssignmentHandler(assignmentService, logger)
	classworkHandler := handler.NewClassworkHandler(classworkService, logger)
	paperHandler := handler.NewPaperHandler(paperService, logger)
	galleryHandler := handler.NewGalleryHandler(galleryService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AssignmentHandler: assignmentHandler,
		ClassworkHandler:  classworkHandler,
		PaperHandler:      paperHandler,
		GalleryHandler:    galleryHandler,
		AuthHandler:       authHandler,
		AdminGuard:        middleware.AdminProtected(authService),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
