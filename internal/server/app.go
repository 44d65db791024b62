// Package server initializes and runs the AlbumKeeper server: the gRPC
// catalog/issuance endpoint and the transcode webhook listener, over a
// shared PostgreSQL-backed storage layer.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/logging"
	"github.com/dmitrijs2005/albumkeeper/internal/server/config"
	"github.com/dmitrijs2005/albumkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/albumkeeper/internal/server/services"
	"github.com/dmitrijs2005/albumkeeper/internal/server/signing"
	"github.com/dmitrijs2005/albumkeeper/internal/server/webhook"

	gs "github.com/dmitrijs2005/albumkeeper/internal/server/grpc"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	mediaService *services.MediaService
	issuer       *services.IssuerService
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	streamKey, err := signing.LoadPrivateKeyPEM(c.StreamPrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("stream key error: %w", err)
	}

	ms := services.NewMediaService(db, rm, c)
	is := services.NewIssuerService(db, rm, c, streamKey)

	return &App{config: c, logger: logger, db: db, mediaService: ms, issuer: is}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.mediaService, app.issuer, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) startWebhookServer(ctx context.Context, cancelFunc context.CancelFunc) {

	mux := http.NewServeMux()
	mux.Handle("/webhooks/transcode", webhook.NewHandler([]byte(app.config.WebhookSecret), app.mediaService, app.logger))

	srv := &http.Server{Addr: app.config.WebhookAddr, Handler: mux}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping webhook server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting webhook server", "address", app.config.WebhookAddr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startWebhookServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

}
