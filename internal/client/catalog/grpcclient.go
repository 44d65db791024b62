// Package catalog is the client-side gRPC adapter to the AlbumKeeper
// server. It satisfies the signing issuer, credential issuer and catalog
// ports of the client core, so the rest of the client never sees protobuf.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/client/upload"
	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	pb "github.com/dmitrijs2005/albumkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const rpcTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AlbumKeeperServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withAccessToken(ctx, s.accessToken), method, req, reply, cc, opts...)
}

func (s *GRPCClient) accessTokenStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withAccessToken(ctx, s.accessToken), desc, cc, method, opts...)
}

func NewAlbumKeeperClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.accessTokenStreamInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAlbumKeeperServiceClient(conn)
	return nil
}

// SetAccessToken installs the token attached to every subsequent call.
func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

// CreateMedia persists one uploaded asset and returns the record id. The
// uploader identity travels in the access token, not the request.
func (s *GRPCClient) CreateMedia(ctx context.Context, albumID, _ string, asset media.Asset, sizeBytes int64, correlationKey string) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	req := &pb.CreateMediaRequest{
		AlbumId:        albumID,
		SizeBytes:      sizeBytes,
		CorrelationKey: correlationKey,
	}
	switch a := asset.(type) {
	case media.Image:
		req.Kind = string(media.KindImage)
		req.AssetId = a.ImageID
		req.Width = int32(a.Width)
		req.Height = int32(a.Height)
	case media.Video:
		req.Kind = string(media.KindVideo)
		req.AssetId = a.VideoUID
		req.DurationSecs = a.DurationSecs
	default:
		return "", fmt.Errorf("%w: unknown asset variant %T", common.ErrValidation, asset)
	}

	resp, err := s.client.CreateMedia(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.Record.Id, nil

}

func (s *GRPCClient) ListAlbum(ctx context.Context, albumID string) ([]media.Record, error) {

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	resp, err := s.client.ListAlbumMedia(ctx, &pb.ListAlbumMediaRequest{AlbumId: albumID})
	if err != nil {
		return nil, s.mapError(err)
	}

	return recordsFromPB(resp.Records)

}

// WatchAlbum consumes the server stream, invoking fn for every delta until
// the context ends or the stream breaks.
func (s *GRPCClient) WatchAlbum(ctx context.Context, albumID string, sinceVersion int64, fn func(records []media.Record, version int64)) error {

	stream, err := s.client.WatchAlbum(ctx, &pb.WatchAlbumRequest{AlbumId: albumID, SinceVersion: sinceVersion})
	if err != nil {
		return s.mapError(err)
	}

	for {
		resp, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return s.mapError(err)
		}

		records, err := recordsFromPB(resp.Records)
		if err != nil {
			return err
		}
		fn(records, resp.Version)
	}

}

func (s *GRPCClient) IssueUploadCredentials(ctx context.Context, _ string, filenames []string) ([]upload.Credential, error) {

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	resp, err := s.client.IssueUploadCredentials(ctx, &pb.IssueUploadCredentialsRequest{Filenames: filenames})
	if err != nil {
		return nil, s.mapError(err)
	}

	creds := make([]upload.Credential, 0, len(resp.Credentials))
	for _, c := range resp.Credentials {
		creds = append(creds, upload.Credential{AssetID: c.AssetId, UploadURL: c.UploadUrl})
	}
	return creds, nil

}

func (s *GRPCClient) SignImageURL(ctx context.Context, imageID string) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	resp, err := s.client.SignImageURL(ctx, &pb.SignImageURLRequest{ImageId: imageID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Url, nil

}

func (s *GRPCClient) SignVideoToken(ctx context.Context, videoUID string) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	resp, err := s.client.SignVideoToken(ctx, &pb.SignVideoTokenRequest{VideoUid: videoUID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Token, nil

}

func (s *GRPCClient) DeleteMedia(ctx context.Context, albumID, id string) error {

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	_, err := s.client.DeleteMedia(ctx, &pb.DeleteMediaRequest{AlbumId: albumID, Id: id})
	if err != nil {
		return s.mapError(err)
	}
	return nil

}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return common.ErrNotFound
	case codes.FailedPrecondition:
		return common.ErrCredentialReused
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func recordFromPB(m *pb.MediaRecord) (media.Record, error) {
	r := media.Record{
		ID:             m.Id,
		AlbumID:        m.AlbumId,
		UploaderID:     m.UploaderId,
		SizeBytes:      m.SizeBytes,
		CorrelationKey: m.CorrelationKey,
		Ready:          m.Ready,
		Deleted:        m.Deleted,
		CreatedAt:      time.Unix(m.CreatedAtUnix, 0),
		Version:        m.Version,
	}
	switch media.Kind(m.Kind) {
	case media.KindImage:
		r.Asset = media.Image{ImageID: m.AssetId, Width: int(m.Width), Height: int(m.Height)}
	case media.KindVideo:
		r.Asset = media.Video{VideoUID: m.AssetId, DurationSecs: m.DurationSecs}
	default:
		return media.Record{}, fmt.Errorf("record %q: unknown kind %q", m.Id, m.Kind)
	}
	return r, nil
}

func recordsFromPB(in []*pb.MediaRecord) ([]media.Record, error) {
	out := make([]media.Record, 0, len(in))
	for _, m := range in {
		r, err := recordFromPB(m)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
