package cli

import (
	"context"
	"os"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/client/session"
	"github.com/dmitrijs2005/albumkeeper/internal/shared"
)

// getSimpleText and getAccessToken are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getAccessToken = GetAccessToken

const albumWatchRetryInterval = 5 * time.Second

// Login prompts for a user id and an access token, dials the catalog
// service, and opens a session on success.
//
// The token is installed on the connection, verified with a ping, and
// securely wiped before returning. A failed ping tears the connection down
// again so a later login starts clean.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in as", a.userID)
		return nil
	}

	userID, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}

	token, err := getAccessToken(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(token)

	backend, err := newBackend(a.config.ServerEndpointAddr)
	if err != nil {
		return err
	}
	backend.SetAccessToken(string(token))

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err = backend.Ping(pingCtx)
	cancel()
	if err != nil {
		_ = backend.Close()
		printlnFn("Login unsuccessful:", err.Error())
		return err
	}

	a.backend = backend
	a.userID = userID
	a.session = session.New(a.config, backend, userID, a.logger)
	a.setMode(ModeOnline)

	watchCtx, stop := context.WithCancel(ctx)
	a.stopWatcher = stop
	go a.StartAlbumWatcher(watchCtx, albumWatchRetryInterval)
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	printlnFn("Login successful")
	return nil
}

// Logout tears the session down: cached signed values and optimistic
// entries are dropped and the connection is closed.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return nil
	}
	a.shutdown()
	a.userID = ""
	a.Mode = ""
	printlnFn("Logged out")
	return nil
}
