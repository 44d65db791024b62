package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/client/catalog"
	"github.com/dmitrijs2005/albumkeeper/internal/client/config"
	"github.com/dmitrijs2005/albumkeeper/internal/client/session"
	"github.com/dmitrijs2005/albumkeeper/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// backendClient is the server connection as the CLI needs it: the session
// surface plus token installation.
type backendClient interface {
	session.Backend
	SetAccessToken(token string)
}

// newBackend is a test seam for dialing the catalog service.
var newBackend = func(endpoint string) (backendClient, error) {
	return catalog.NewAlbumKeeperClient(endpoint)
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	backend backendClient
	session *session.Session
	userID  string
	Mode    Mode
	reader  *bufio.Reader

	stopWatcher context.CancelFunc
}

func NewApp(c *config.Config) *App {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	return &App{config: c, logger: logger, reader: bufio.NewReader(os.Stdin)}
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn("Switched to", string(mode), "mode")
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.shutdown()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) shutdown() {
	if a.stopWatcher != nil {
		a.stopWatcher()
		a.stopWatcher = nil
	}
	if a.session != nil {
		_ = a.session.SignOut()
		a.session = nil
		a.backend = nil
	}
}

// StartAlbumWatcher follows the album change stream so arriving records warm
// the signed URL cache and retire optimistic entries while the user works.
// The stream is re-established with a delay after transport errors.
func (a *App) StartAlbumWatcher(ctx context.Context, retryInterval time.Duration) {
	// Capture the session: logout clears a.session but cancels ctx first,
	// so the captured one stays usable until the loop exits.
	sess := a.session
	for {
		if err := sess.Watch(ctx); err != nil {
			a.logger.Warn(ctx, "album watch interrupted", "error", err.Error())
		}

		select {
		case <-time.After(retryInterval):
		case <-ctx.Done():
			return
		}
	}
}

// StartOnlineStatusWatcher pings the server on an interval and flips the
// Mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	backend := a.backend
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := backend.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
