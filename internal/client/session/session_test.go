package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/client/config"
	"github.com/dmitrijs2005/albumkeeper/internal/client/upload"
	"github.com/dmitrijs2005/albumkeeper/internal/logging"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createdCall struct {
	albumID        string
	uploaderID     string
	asset          media.Asset
	correlationKey string
}

// fakeBackend implements Backend in memory.
type fakeBackend struct {
	mu sync.Mutex

	uploadURL string
	listResp  []media.Record
	listErr   error
	watchSend [][]media.Record

	created []createdCall
	deleted []string
	closed  bool
}

func (f *fakeBackend) SignImageURL(ctx context.Context, imageID string) (string, error) {
	exp := time.Now().Add(time.Hour).Unix()
	return fmt.Sprintf("https://images.example.com/%s/public?exp=%d&sig=aa", imageID, exp), nil
}

func (f *fakeBackend) SignVideoToken(ctx context.Context, videoUID string) (string, error) {
	return "token-" + videoUID, nil
}

func (f *fakeBackend) IssueUploadCredentials(ctx context.Context, _ string, filenames []string) ([]upload.Credential, error) {
	creds := make([]upload.Credential, 0, len(filenames))
	for i := range filenames {
		id := fmt.Sprintf("asset-%d", i)
		creds = append(creds, upload.Credential{AssetID: id, UploadURL: f.uploadURL + "/" + id})
	}
	return creds, nil
}

func (f *fakeBackend) CreateMedia(ctx context.Context, albumID, uploaderID string, asset media.Asset, sizeBytes int64, correlationKey string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, createdCall{albumID, uploaderID, asset, correlationKey})
	return fmt.Sprintf("rec-%d", len(f.created)), nil
}

func (f *fakeBackend) Ping(ctx context.Context) error { return nil }

func (f *fakeBackend) ListAlbum(ctx context.Context, albumID string) ([]media.Record, error) {
	return f.listResp, f.listErr
}

func (f *fakeBackend) WatchAlbum(ctx context.Context, albumID string, sinceVersion int64, fn func(records []media.Record, version int64)) error {
	for i, batch := range f.watchSend {
		fn(batch, int64(i+1))
	}
	return nil
}

func (f *fakeBackend) DeleteMedia(ctx context.Context, albumID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, albumID+"/"+id)
	return nil
}

func (f *fakeBackend) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.AlbumID = "alb1"
	return c
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func newTestSession(backend *fakeBackend) *Session {
	return New(testConfig(), backend, "user-1", testLogger())
}

func writeAssetFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	return path
}

func TestList_WarmsSignedURLCache(t *testing.T) {
	backend := &fakeBackend{listResp: []media.Record{
		{ID: "m1", AlbumID: "alb1", Asset: media.Image{ImageID: "img_a"}, Ready: true},
		{ID: "m2", AlbumID: "alb1", Asset: media.Video{VideoUID: "vid_b"}, Ready: true},
	}}
	s := newTestSession(backend)

	records, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, id := range []string{"img_a", "vid_b"} {
		_, ok := s.Cache.Get(id)
		assert.True(t, ok, "expected %s to be warmed", id)
	}
}

func TestUpload_PersistsAndReconciles(t *testing.T) {
	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer cdn.Close()

	backend := &fakeBackend{uploadURL: cdn.URL}
	s := newTestSession(backend)

	path := writeAssetFile(t, "beach.jpg", 128)
	batch, err := s.Upload(context.Background(), []string{path})
	require.NoError(t, err)
	require.Len(t, batch.Keys, 1)
	require.Empty(t, batch.Invalid)

	require.Len(t, backend.created, 1)
	call := backend.created[0]
	assert.Equal(t, "alb1", call.albumID)
	assert.Equal(t, "user-1", call.uploaderID)
	assert.Equal(t, batch.Keys[0], call.correlationKey)
	img, ok := call.asset.(media.Image)
	require.True(t, ok)
	assert.Equal(t, "asset-0", img.ImageID)

	// The authoritative record arriving with the same correlation key
	// removes the optimistic entry.
	s.ObserveList(context.Background(), []media.Record{
		{ID: "rec-1", AlbumID: "alb1", Asset: media.Image{ImageID: "asset-0"}, Ready: true, CorrelationKey: batch.Keys[0]},
	})
	assert.Empty(t, s.Pipeline.Snapshot())
}

func TestUpload_UnsupportedExtension(t *testing.T) {
	s := newTestSession(&fakeBackend{})

	path := writeAssetFile(t, "notes.txt", 16)
	_, err := s.Upload(context.Background(), []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".txt")
}

func TestUpload_MissingFile(t *testing.T) {
	s := newTestSession(&fakeBackend{})

	_, err := s.Upload(context.Background(), []string{filepath.Join(t.TempDir(), "absent.jpg")})
	require.Error(t, err)
}

func TestWatch_FeedsObservePass(t *testing.T) {
	backend := &fakeBackend{watchSend: [][]media.Record{
		{{ID: "m1", AlbumID: "alb1", Asset: media.Image{ImageID: "img_a"}, Ready: true}},
	}}
	s := newTestSession(backend)

	require.NoError(t, s.Watch(context.Background()))

	_, ok := s.Cache.Get("img_a")
	assert.True(t, ok)
}

func TestDelete_TargetsSessionAlbum(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSession(backend)

	require.NoError(t, s.Delete(context.Background(), "m1"))
	assert.Equal(t, []string{"alb1/m1"}, backend.deleted)
}

func TestSignOut_ClearsSessionState(t *testing.T) {
	backend := &fakeBackend{listResp: []media.Record{
		{ID: "m1", AlbumID: "alb1", Asset: media.Image{ImageID: "img_a"}, Ready: true},
	}}
	s := newTestSession(backend)

	_, err := s.List(context.Background())
	require.NoError(t, err)
	s.Store.Add(upload.Entry{Key: "k1", Status: upload.StatusPending})

	require.NoError(t, s.SignOut())

	_, ok := s.Cache.Get("img_a")
	assert.False(t, ok)
	assert.Empty(t, s.Store.Snapshot())
	assert.True(t, backend.closed)
}
