package app

import (
	"context"
	"log/slog"

	httpapp "galleria/internal/app/http"
	"galleria/internal/config"
	"galleria/internal/fallback"
	"galleria/internal/lib/sessiontoken"
	"galleria/internal/repository"
	config_service "galleria/internal/services/config_service"
	content_service "galleria/internal/services/content_service"
	media_service "galleria/internal/services/media_service"
	session_service "galleria/internal/services/session_service"
	slider_service "galleria/internal/services/slider_service"
	filestorage "galleria/internal/storage/filestorage"
	redisapp "galleria/internal/storage/redis"
	httprouters "galleria/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	log   *slog.Logger
	repo  *repository.Repository
	redis *redisapp.Client
}

func New(log *slog.Logger, cfg *config.Config) *App {
	repo, err := repository.NewRepository(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	if err := redisClient.HealthCheck(context.Background()); err != nil {
		panic(err)
	}

	static, err := fallback.Load()
	if err != nil {
		panic(err)
	}

	fileStorage, err := filestorage.NewLocalFileStorage(
		cfg.FileStorage.BaseDir,
		cfg.FileStorage.BaseURL,
		cfg.FileStorage.MaxSize,
		cfg.FileStorage.AllowedExtensions,
	)
	if err != nil {
		panic(err)
	}

	tokens := sessiontoken.New(cfg.Admin.SessionSecret, cfg.Admin.SessionTTL)
	sessionRepo := repository.NewRedisSessionRepo(redisClient)

	sliderSvc := slider_service.NewSliderService(log, repo.Slider)
	contentSvc := content_service.NewContentService(
		log,
		repo.Slider,
		repo.Content,
		repo.Config,
		static,
		content_service.CacheTTLs{
			Sliders: cfg.Cache.SlidersTTL,
			Content: cfg.Cache.ContentTTL,
			Config:  cfg.Cache.ConfigTTL,
		},
		cfg.DefaultLocale,
	)
	configSvc := config_service.NewConfigService(log, repo.Config, repo.Content, static)
	sessionSvc := session_service.New(log, sessionRepo, tokens, cfg.Admin.Email, cfg.Admin.PasswordHash)
	mediaSvc := media_service.NewMediaService(log, fileStorage)

	if cfg.Seed {
		if err := configSvc.Seed(context.Background()); err != nil {
			panic(err)
		}
	}

	routers := httprouters.NewRouter(log, sliderSvc, contentSvc, configSvc, sessionSvc, mediaSvc)

	server := httpapp.New(log, cfg.Admin.SessionSecret, cfg.HTTP.Host, cfg.HTTP.Port, routers)

	return &App{
		HTTPServer: server,
		log:        log,
		repo:       repo,
		redis:      redisClient,
	}
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		a.log.Error("http server stop", slog.Any("error", err))
	}

	a.repo.Close()

	if err := a.redis.Close(); err != nil {
		a.log.Error("redis close", slog.Any("error", err))
	}
}
