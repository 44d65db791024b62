package catalog

import (
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	pb "github.com/dmitrijs2005/albumkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake pb client
 *************/

type fakeWatchClient struct {
	grpc.ClientStream
	responses []*pb.WatchAlbumResponse
	i         int
}

func (f *fakeWatchClient) Recv() (*pb.WatchAlbumResponse, error) {
	if f.i >= len(f.responses) {
		return nil, io.EOF
	}
	r := f.responses[f.i]
	f.i++
	return r, nil
}

type fakePB struct {
	pb.AlbumKeeperServiceClient

	lastCreateReq *pb.CreateMediaRequest
	lastIssueReq  *pb.IssueUploadCredentialsRequest

	pingResp *pb.PingResponse
	pingErr  error

	createResp *pb.CreateMediaResponse
	createErr  error

	listResp *pb.ListAlbumMediaResponse
	listErr  error

	watchStream *fakeWatchClient
	watchErr    error

	issueResp *pb.IssueUploadCredentialsResponse
	issueErr  error

	signURLResp *pb.SignImageURLResponse
	signURLErr  error

	signTokResp *pb.SignVideoTokenResponse
	signTokErr  error
}

func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}
func (f *fakePB) CreateMedia(ctx context.Context, in *pb.CreateMediaRequest, opts ...grpc.CallOption) (*pb.CreateMediaResponse, error) {
	f.lastCreateReq = in
	return f.createResp, f.createErr
}
func (f *fakePB) ListAlbumMedia(ctx context.Context, in *pb.ListAlbumMediaRequest, opts ...grpc.CallOption) (*pb.ListAlbumMediaResponse, error) {
	return f.listResp, f.listErr
}
func (f *fakePB) WatchAlbum(ctx context.Context, in *pb.WatchAlbumRequest, opts ...grpc.CallOption) (pb.AlbumKeeperService_WatchAlbumClient, error) {
	return f.watchStream, f.watchErr
}
func (f *fakePB) IssueUploadCredentials(ctx context.Context, in *pb.IssueUploadCredentialsRequest, opts ...grpc.CallOption) (*pb.IssueUploadCredentialsResponse, error) {
	f.lastIssueReq = in
	return f.issueResp, f.issueErr
}
func (f *fakePB) SignImageURL(ctx context.Context, in *pb.SignImageURLRequest, opts ...grpc.CallOption) (*pb.SignImageURLResponse, error) {
	return f.signURLResp, f.signURLErr
}
func (f *fakePB) SignVideoToken(ctx context.Context, in *pb.SignVideoTokenRequest, opts ...grpc.CallOption) (*pb.SignVideoTokenResponse, error) {
	return f.signTokResp, f.signTokErr
}

func newClientWithFake(f *fakePB) *GRPCClient {
	return &GRPCClient{endpointURL: "127.0.0.1:0", client: f, accessToken: "tok"}
}

/*************
 * Tests
 *************/

func TestWithAccessToken_SetsMetadata(t *testing.T) {
	ctx := withAccessToken(context.Background(), "abc")
	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	require.Equal(t, []string{"abc"}, md.Get(common.AccessTokenHeaderName))

	// replaces, never appends
	ctx = withAccessToken(ctx, "def")
	md, _ = metadata.FromOutgoingContext(ctx)
	require.Equal(t, []string{"def"}, md.Get(common.AccessTokenHeaderName))
}

func TestPing(t *testing.T) {
	c := newClientWithFake(&fakePB{pingResp: &pb.PingResponse{Status: "OK"}})
	require.NoError(t, c.Ping(context.Background()))

	c = newClientWithFake(&fakePB{pingResp: &pb.PingResponse{Status: "DEGRADED"}})
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestCreateMedia_FlattensAsset(t *testing.T) {
	f := &fakePB{createResp: &pb.CreateMediaResponse{Record: &pb.MediaRecord{Id: "m1"}}}
	c := newClientWithFake(f)

	id, err := c.CreateMedia(context.Background(), "alb1", "ignored",
		media.Image{ImageID: "img-1", Width: 4, Height: 3}, 100, "corr-1")
	require.NoError(t, err)
	assert.Equal(t, "m1", id)

	require.NotNil(t, f.lastCreateReq)
	assert.Equal(t, "image", f.lastCreateReq.Kind)
	assert.Equal(t, "img-1", f.lastCreateReq.AssetId)
	assert.Equal(t, "corr-1", f.lastCreateReq.CorrelationKey)
}

func TestCreateMedia_ReusedCredential(t *testing.T) {
	f := &fakePB{createErr: status.Error(codes.FailedPrecondition, "upload credential already used")}
	c := newClientWithFake(f)

	_, err := c.CreateMedia(context.Background(), "alb1", "",
		media.Image{ImageID: "img-1"}, 100, "corr-1")
	require.ErrorIs(t, err, common.ErrCredentialReused)
}

func TestIssueUploadCredentials(t *testing.T) {
	f := &fakePB{issueResp: &pb.IssueUploadCredentialsResponse{Credentials: []*pb.UploadCredential{
		{AssetId: "a1", UploadUrl: "https://u/1"},
		{AssetId: "a2", UploadUrl: "https://u/2"},
	}}}
	c := newClientWithFake(f)

	creds, err := c.IssueUploadCredentials(context.Background(), "", []string{"a.jpg", "b.jpg"})
	require.NoError(t, err)
	require.Len(t, creds, 2)
	assert.Equal(t, "a1", creds[0].AssetID)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, f.lastIssueReq.Filenames)
}

func TestSigners(t *testing.T) {
	c := newClientWithFake(&fakePB{
		signURLResp: &pb.SignImageURLResponse{Url: "https://img?exp=1&sig=2"},
		signTokResp: &pb.SignVideoTokenResponse{Token: "jwt"},
	})

	url, err := c.SignImageURL(context.Background(), "img-1")
	require.NoError(t, err)
	assert.Equal(t, "https://img?exp=1&sig=2", url)

	tok, err := c.SignVideoToken(context.Background(), "vid-1")
	require.NoError(t, err)
	assert.Equal(t, "jwt", tok)
}

func TestWatchAlbum_DeliversDeltasUntilEOF(t *testing.T) {
	stream := &fakeWatchClient{responses: []*pb.WatchAlbumResponse{
		{Records: []*pb.MediaRecord{{Id: "m1", Kind: "image", AssetId: "img-1"}}, Version: 3},
		{Records: []*pb.MediaRecord{{Id: "m2", Kind: "video", AssetId: "vid-1"}}, Version: 4},
	}}
	c := newClientWithFake(&fakePB{watchStream: stream})

	var versions []int64
	var ids []string
	err := c.WatchAlbum(context.Background(), "alb1", 0, func(records []media.Record, version int64) {
		versions = append(versions, version)
		for _, r := range records {
			ids = append(ids, r.ID)
		}
	})
	require.Error(t, err, "EOF surfaces as an rpc error")
	assert.Equal(t, []int64{3, 4}, versions)
	assert.Equal(t, []string{"m1", "m2"}, ids)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	assert.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x")), common.ErrNotFound)
	assert.ErrorIs(t, c.mapError(status.Error(codes.FailedPrecondition, "x")), common.ErrCredentialReused)
	assert.Error(t, c.mapError(status.Error(codes.Internal, "x")))
	assert.NoError(t, c.mapError(nil))
}

func TestRecordFromPB_UnknownKind(t *testing.T) {
	_, err := recordFromPB(&pb.MediaRecord{Id: "m1", Kind: "gif"})
	require.Error(t, err)
}
