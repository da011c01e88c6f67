package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"greenmason/internal/config"
	"greenmason/internal/docs"
	"greenmason/internal/feed"
	"greenmason/internal/handler"
	"greenmason/internal/llm"
	"greenmason/internal/middleware"
	"greenmason/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title        GreenMason API
// @version      1.0.0
// @description  AI-powered campus sustainability hub: waste sorting, EcoChat, Green Score leaderboard and Love Pledges.
// @BasePath     /
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("main(): server stopped", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}

	if err := storage.InitDB(cfg.DBPath); err != nil {
		return err
	}
	defer storage.Close()
	logger.Info("run(): database ready", zap.String("path", cfg.DBPath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	assistant := llm.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, logger.Named("gemini"))
	if cfg.GeminiAPIKey == "" {
		logger.Warn("run(): GEMINI_API_KEY not set, classify/chat/tip endpoints will answer 503")
	}

	hub := feed.NewHub(logger.Named("feed"))
	go hub.Run(ctx)

	opts := []handler.Option{handler.WithFeed(hub), handler.WithLogger(logger.Named("handler"))}

	tts, err := llm.NewTTSClient(ctx, cfg.CredentialsFile, cfg.TTSLanguage, cfg.TTSVoice, logger.Named("tts"))
	if err != nil {
		logger.Warn("run(): text-to-speech disabled", zap.Error(err))
	} else {
		defer tts.Close()
		opts = append(opts, handler.WithSpeaker(tts))
	}

	stt, err := llm.NewSpeechRecognizer(ctx, cfg.CredentialsFile, cfg.TTSLanguage, logger.Named("stt"))
	if err != nil {
		logger.Warn("run(): speech recognition disabled", zap.Error(err))
	} else {
		defer stt.Close()
		opts = append(opts, handler.WithTranscriber(stt))
	}

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	if cfg.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:3001", cfg.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, "X-Tip-Text")
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RateLimit(cfg.RatePerMinute, cfg.RateBurst, logger.Named("ratelimit")))

	handler.New(assistant, opts...).Register(router)

	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("run(): GreenMason API listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("run(): shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
