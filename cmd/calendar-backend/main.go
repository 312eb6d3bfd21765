package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"

	"github.com/daygrid/calendar-backend/internal/api"
	events_service "github.com/daygrid/calendar-backend/internal/business/events"
	"github.com/daygrid/calendar-backend/internal/config"
	"github.com/daygrid/calendar-backend/internal/database"
	"github.com/daygrid/calendar-backend/internal/database/events"
	"github.com/daygrid/calendar-backend/internal/database/user"
	"github.com/daygrid/calendar-backend/internal/pkg/jwt"
	"github.com/daygrid/calendar-backend/internal/pkg/oauth"
	"github.com/daygrid/calendar-backend/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	jwts := jwt.NewManager()
	tokenParser := oauth.NewParser()

	redisPool := redis.NewRedisPool(logger)
	refreshTokens := redis.NewRefreshTokenRepository(redisPool, logger)
	go refreshTokens.StartCleanup(ctx)

	if err := database.Migrate(); err != nil {
		log.Fatalf("unable to migrate db: %v", err)
	}

	db, err := database.NewPGX(ctx)
	if err != nil {
		log.Fatalf("unable to initialize db: %v", err)
	}

	usersRepository := user.NewRepository()
	eventsRepository := events.NewRepository()

	eventsService := events_service.NewService(db, eventsRepository)

	api, err := api.NewApi(
		logger,
		rand.Reader,
		jwts,
		tokenParser,
		refreshTokens,
		db,
		usersRepository,
		eventsService,
	)
	if err != nil {
		logger.Fatalw("error initiating api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
