package main

import (
	"context"
	"log"
	"media-share-server/config"
	_ "media-share-server/docs"
	"media-share-server/internal/handler"
	"media-share-server/internal/repository"
	"media-share-server/internal/security"
	"media-share-server/internal/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Media-share-server
// @version 1.0
// @description REST API для обмена медиа-файлами по коротким ссылкам и QR-кодам

// @host localhost:8080
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	mediaRepo := repository.NewMediaRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.CacheSeconds)*time.Second)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}
	qrService := service.NewQRService()

	mediaService := service.NewMediaService(
		mediaRepo,
		cacheRepo,
		s3Service,
		qrService,
		cfg.Share.BaseURL,
		time.Duration(cfg.TTL.MediaDays)*24*time.Hour,
		time.Duration(cfg.TTL.PresignSeconds)*time.Second,
	)

	jwtService := security.NewJWTService(&cfg.JWT)
	mediaHandler := handler.NewMediaHandler(mediaService)

	router.Use(config.DBMiddleware(db))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupMediaRoutes(router, mediaHandler, jwtService, cfg)

	runServer(ctx, srv)
}

func setupMediaRoutes(r chi.Router, h *handler.MediaHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Route("/api/media", func(r chi.Router) {
		// авторизация необязательная: share-ссылки публичны,
		// токен лишь помечает владельца загрузки
		r.Use(security.OwnerMiddleware([]byte(cfg.JWT.SecretKey), jwtService, cfg.Admin.AdminToken))

		r.Post("/", h.IngestMedia)

		r.Route("/{media_id}", func(r chi.Router) {
			r.Get("/", h.GetMedia)
			r.Get("/qr", h.GetMediaQR)
			r.Delete("/", h.DeleteMedia)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
