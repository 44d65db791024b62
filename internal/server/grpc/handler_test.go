package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/logging"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	pb "github.com/dmitrijs2005/albumkeeper/internal/proto"
	"github.com/dmitrijs2005/albumkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type updatesCall struct {
	albumID string
	cursor  int64
}

type fakeMedia struct {
	createRec    media.Record
	createErr    error
	createdAlbum string
	createdUpldr string
	createdKey   string

	listRecs []media.Record
	listErr  error

	// successive Updates results, one per poll
	updates  [][]media.Record
	versions []int64
	updErr   error
	calls    []updatesCall

	deletedAlbum string
	deletedID    string
	delErr       error
}

func (f *fakeMedia) CreateMedia(ctx context.Context, albumID, uploaderID string, asset media.Asset, sizeBytes int64, correlationKey string) (media.Record, error) {
	f.createdAlbum = albumID
	f.createdUpldr = uploaderID
	f.createdKey = correlationKey
	return f.createRec, f.createErr
}

func (f *fakeMedia) ListAlbum(ctx context.Context, albumID string) ([]media.Record, error) {
	return f.listRecs, f.listErr
}

func (f *fakeMedia) Updates(ctx context.Context, albumID string, sinceVersion int64) ([]media.Record, int64, error) {
	f.calls = append(f.calls, updatesCall{albumID: albumID, cursor: sinceVersion})
	if f.updErr != nil {
		return nil, 0, f.updErr
	}
	i := len(f.calls) - 1
	if i >= len(f.updates) {
		return nil, f.versions[len(f.versions)-1], nil
	}
	return f.updates[i], f.versions[i], nil
}

func (f *fakeMedia) SoftDelete(ctx context.Context, albumID, id string) error {
	f.deletedAlbum = albumID
	f.deletedID = id
	return f.delErr
}

type fakeIssuer struct {
	creds    []services.UploadCredential
	credsErr error

	url    string
	urlErr error

	token    string
	tokenErr error
}

func (f *fakeIssuer) IssueUploadCredentials(ctx context.Context, ownerID string, filenames []string) ([]services.UploadCredential, error) {
	return f.creds, f.credsErr
}
func (f *fakeIssuer) SignImageURL(ctx context.Context, imageID string) (string, error) {
	return f.url, f.urlErr
}
func (f *fakeIssuer) SignVideoToken(ctx context.Context, videoUID string) (string, error) {
	return f.token, f.tokenErr
}

// ---- helpers ----

func newServer(m mediaSvc, i issuerSvc) *GRPCServer {
	return &GRPCServer{
		address:      "127.0.0.1:0",
		media:        m,
		issuer:       i,
		logger:       nopLogger{},
		jwtSecret:    []byte("k"),
		pollInterval: 5 * time.Millisecond,
	}
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), userIDKey, userID)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	if st.Code() != code {
		t.Fatalf("want code %v, got %v (%v)", code, st.Code(), err)
	}
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeMedia{}, &fakeIssuer{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
}

func TestCreateMedia_Success(t *testing.T) {
	m := &fakeMedia{createRec: media.Record{
		ID:             "m1",
		AlbumID:        "alb1",
		Asset:          media.Image{ImageID: "img-1", Width: 10, Height: 20},
		CorrelationKey: "corr-1",
		Ready:          true,
		Version:        3,
	}}
	s := newServer(m, &fakeIssuer{})

	resp, err := s.CreateMedia(authedCtx("user1"), &pb.CreateMediaRequest{
		AlbumId:        "alb1",
		Kind:           "image",
		AssetId:        "img-1",
		Width:          10,
		Height:         20,
		SizeBytes:      100,
		CorrelationKey: "corr-1",
	})
	if err != nil {
		t.Fatalf("CreateMedia error: %v", err)
	}
	if m.createdUpldr != "user1" {
		t.Fatalf("uploader not taken from token: %q", m.createdUpldr)
	}
	if m.createdKey != "corr-1" {
		t.Fatalf("correlation key not forwarded: %q", m.createdKey)
	}
	if resp.Record.AssetId != "img-1" || resp.Record.Kind != "image" || resp.Record.Width != 10 {
		t.Fatalf("record not flattened correctly: %+v", resp.Record)
	}
}

func TestCreateMedia_UnknownKind(t *testing.T) {
	s := newServer(&fakeMedia{}, &fakeIssuer{})
	_, err := s.CreateMedia(authedCtx("u"), &pb.CreateMediaRequest{Kind: "gif"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestCreateMedia_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "reused credential", err: common.ErrCredentialReused, code: codes.FailedPrecondition},
		{name: "unknown credential", err: common.ErrNotFound, code: codes.NotFound},
		{name: "validation", err: common.ErrValidation, code: codes.InvalidArgument},
		{name: "other", err: errors.New("boom"), code: codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(&fakeMedia{createErr: tt.err}, &fakeIssuer{})
			_, err := s.CreateMedia(authedCtx("u"), &pb.CreateMediaRequest{Kind: "image", AssetId: "x"})
			wantCode(t, err, tt.code)
		})
	}
}

func TestListAlbumMedia(t *testing.T) {
	m := &fakeMedia{listRecs: []media.Record{
		{ID: "m1", Asset: media.Image{ImageID: "img-1"}},
		{ID: "m2", Asset: media.Video{VideoUID: "vid-1", DurationSecs: 3.5}},
	}}
	s := newServer(m, &fakeIssuer{})

	resp, err := s.ListAlbumMedia(authedCtx("u"), &pb.ListAlbumMediaRequest{AlbumId: "alb1"})
	if err != nil {
		t.Fatalf("ListAlbumMedia error: %v", err)
	}
	if len(resp.Records) != 2 {
		t.Fatalf("want 2 records, got %d", len(resp.Records))
	}
	if resp.Records[1].Kind != "video" || resp.Records[1].DurationSecs != 3.5 {
		t.Fatalf("video not flattened: %+v", resp.Records[1])
	}
}

func TestIssueUploadCredentials(t *testing.T) {
	i := &fakeIssuer{creds: []services.UploadCredential{
		{AssetID: "a1", UploadURL: "https://u/1"},
		{AssetID: "a2", UploadURL: "https://u/2"},
	}}
	s := newServer(&fakeMedia{}, i)

	resp, err := s.IssueUploadCredentials(authedCtx("u"), &pb.IssueUploadCredentialsRequest{Filenames: []string{"a.jpg", "b.jpg"}})
	if err != nil {
		t.Fatalf("IssueUploadCredentials error: %v", err)
	}
	if len(resp.Credentials) != 2 || resp.Credentials[0].AssetId != "a1" {
		t.Fatalf("credentials not forwarded: %+v", resp.Credentials)
	}

	_, err = s.IssueUploadCredentials(authedCtx("u"), &pb.IssueUploadCredentialsRequest{})
	wantCode(t, err, codes.InvalidArgument)
}

func TestSignImageURL_NotFound(t *testing.T) {
	s := newServer(&fakeMedia{}, &fakeIssuer{urlErr: common.ErrNotFound})
	_, err := s.SignImageURL(authedCtx("u"), &pb.SignImageURLRequest{ImageId: "ghost"})
	wantCode(t, err, codes.NotFound)
}

func TestSignVideoToken_OK(t *testing.T) {
	s := newServer(&fakeMedia{}, &fakeIssuer{token: "tok"})
	resp, err := s.SignVideoToken(authedCtx("u"), &pb.SignVideoTokenRequest{VideoUid: "vid-1"})
	if err != nil {
		t.Fatalf("SignVideoToken error: %v", err)
	}
	if resp.Token != "tok" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
}

func TestDeleteMedia(t *testing.T) {
	m := &fakeMedia{}
	s := newServer(m, &fakeIssuer{})

	_, err := s.DeleteMedia(authedCtx("u"), &pb.DeleteMediaRequest{AlbumId: "alb1", Id: "m1"})
	if err != nil {
		t.Fatalf("DeleteMedia error: %v", err)
	}
	if m.deletedAlbum != "alb1" || m.deletedID != "m1" {
		t.Fatalf("delete not forwarded: %q %q", m.deletedAlbum, m.deletedID)
	}
}

// ---- watch stream ----

type fakeWatchStream struct {
	grpc.ServerStream
	ctx       context.Context
	cancel    context.CancelFunc
	sent      []*pb.WatchAlbumResponse
	stopAfter int
}

func (f *fakeWatchStream) Context() context.Context { return f.ctx }

func (f *fakeWatchStream) Send(r *pb.WatchAlbumResponse) error {
	f.sent = append(f.sent, r)
	if len(f.sent) >= f.stopAfter {
		f.cancel()
	}
	return nil
}

func TestWatchAlbum_AdvancesCursorAndSkipsEmptyPolls(t *testing.T) {
	m := &fakeMedia{
		updates: [][]media.Record{
			{{ID: "m1", Asset: media.Image{ImageID: "img-1"}, Version: 3}},
			nil, // quiet poll, nothing must be sent
			{{ID: "m2", Asset: media.Video{VideoUID: "vid-1"}, Version: 4}},
		},
		versions: []int64{3, 3, 4},
	}
	s := newServer(m, &fakeIssuer{})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	stream := &fakeWatchStream{ctx: ctx, cancel: cancel, stopAfter: 2}

	if err := s.WatchAlbum(&pb.WatchAlbumRequest{AlbumId: "alb1", SinceVersion: 1}, stream); err != nil {
		t.Fatalf("WatchAlbum error: %v", err)
	}

	if len(stream.sent) != 2 {
		t.Fatalf("want 2 responses, got %d", len(stream.sent))
	}
	if stream.sent[0].Version != 3 || stream.sent[1].Version != 4 {
		t.Fatalf("version cursor not forwarded: %+v", stream.sent)
	}

	// the initial poll uses the client's cursor, later polls the advanced one
	if m.calls[0].cursor != 1 {
		t.Fatalf("first poll cursor: %d", m.calls[0].cursor)
	}
	if m.calls[1].cursor != 3 {
		t.Fatalf("second poll cursor: %d", m.calls[1].cursor)
	}
}

func TestWatchAlbum_PollError(t *testing.T) {
	m := &fakeMedia{updErr: errors.New("boom")}
	s := newServer(m, &fakeIssuer{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := &fakeWatchStream{ctx: ctx, cancel: cancel, stopAfter: 1}

	err := s.WatchAlbum(&pb.WatchAlbumRequest{AlbumId: "alb1"}, stream)
	wantCode(t, err, codes.Internal)
}
