package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	pb "github.com/dmitrijs2005/albumkeeper/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) CreateMedia(ctx context.Context, req *pb.CreateMediaRequest) (*pb.CreateMediaResponse, error) {

	asset, err := assetFromRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	rec, err := s.media.CreateMedia(ctx, req.AlbumId, userIDFromContext(ctx), asset, req.SizeBytes, req.CorrelationKey)
	if err != nil {
		s.logger.Error(ctx, "create media failed", "error", err.Error())
		switch {
		case errors.Is(err, common.ErrCredentialReused):
			return nil, status.Error(codes.FailedPrecondition, "upload credential already used")
		case errors.Is(err, common.ErrNotFound):
			return nil, status.Error(codes.NotFound, "unknown upload credential")
		case errors.Is(err, common.ErrValidation):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	s.logger.Info(ctx, "media created", "album", req.AlbumId, "asset", req.AssetId)
	return &pb.CreateMediaResponse{Record: recordToPB(rec)}, nil

}

func (s *GRPCServer) ListAlbumMedia(ctx context.Context, req *pb.ListAlbumMediaRequest) (*pb.ListAlbumMediaResponse, error) {

	records, err := s.media.ListAlbum(ctx, req.AlbumId)
	if err != nil {
		s.logger.Error(ctx, "list album failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.ListAlbumMediaResponse{Records: recordsToPB(records)}, nil

}

// WatchAlbum streams album changes to the client. The first response
// carries everything past the client's cursor; afterwards the album version
// is polled and only deltas are sent.
func (s *GRPCServer) WatchAlbum(req *pb.WatchAlbumRequest, stream pb.AlbumKeeperService_WatchAlbumServer) error {

	ctx := stream.Context()
	cursor := req.SinceVersion

	send := func() error {
		records, version, err := s.media.Updates(ctx, req.AlbumId, cursor)
		if err != nil {
			s.logger.Error(ctx, "watch poll failed", "error", err.Error())
			return status.Error(codes.Internal, "internal error")
		}
		if len(records) == 0 {
			return nil
		}
		cursor = version
		return stream.Send(&pb.WatchAlbumResponse{Records: recordsToPB(records), Version: version})
	}

	// initial catch-up
	if err := send(); err != nil {
		return err
	}

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := send(); err != nil {
				return err
			}
		}
	}

}

func (s *GRPCServer) IssueUploadCredentials(ctx context.Context, req *pb.IssueUploadCredentialsRequest) (*pb.IssueUploadCredentialsResponse, error) {

	if len(req.Filenames) == 0 {
		return nil, status.Error(codes.InvalidArgument, "no filenames")
	}

	creds, err := s.issuer.IssueUploadCredentials(ctx, userIDFromContext(ctx), req.Filenames)
	if err != nil {
		s.logger.Error(ctx, "credential issuance failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &pb.IssueUploadCredentialsResponse{}
	for _, c := range creds {
		resp.Credentials = append(resp.Credentials, &pb.UploadCredential{AssetId: c.AssetID, UploadUrl: c.UploadURL})
	}
	return resp, nil

}

func (s *GRPCServer) SignImageURL(ctx context.Context, req *pb.SignImageURLRequest) (*pb.SignImageURLResponse, error) {

	url, err := s.issuer.SignImageURL(ctx, req.ImageId)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "unknown image")
		}
		s.logger.Error(ctx, "image signing failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.SignImageURLResponse{Url: url}, nil

}

func (s *GRPCServer) SignVideoToken(ctx context.Context, req *pb.SignVideoTokenRequest) (*pb.SignVideoTokenResponse, error) {

	token, err := s.issuer.SignVideoToken(ctx, req.VideoUid)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "unknown video")
		}
		s.logger.Error(ctx, "token signing failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.SignVideoTokenResponse{Token: token}, nil

}

func (s *GRPCServer) DeleteMedia(ctx context.Context, req *pb.DeleteMediaRequest) (*pb.DeleteMediaResponse, error) {

	err := s.media.SoftDelete(ctx, req.AlbumId, req.Id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "unknown media")
		}
		s.logger.Error(ctx, "delete failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.DeleteMediaResponse{}, nil

}

func assetFromRequest(req *pb.CreateMediaRequest) (media.Asset, error) {
	switch media.Kind(req.Kind) {
	case media.KindImage:
		return media.Image{ImageID: req.AssetId, Width: int(req.Width), Height: int(req.Height)}, nil
	case media.KindVideo:
		return media.Video{VideoUID: req.AssetId, DurationSecs: req.DurationSecs}, nil
	default:
		return nil, errors.New("unknown media kind " + req.Kind)
	}
}

func recordToPB(r media.Record) *pb.MediaRecord {
	m := &pb.MediaRecord{
		Id:             r.ID,
		AlbumId:        r.AlbumID,
		UploaderId:     r.UploaderID,
		SizeBytes:      r.SizeBytes,
		CorrelationKey: r.CorrelationKey,
		Ready:          r.Ready,
		Deleted:        r.Deleted,
		CreatedAtUnix:  r.CreatedAt.Unix(),
		Version:        r.Version,
	}
	switch a := r.Asset.(type) {
	case media.Image:
		m.Kind = string(media.KindImage)
		m.AssetId = a.ImageID
		m.Width = int32(a.Width)
		m.Height = int32(a.Height)
	case media.Video:
		m.Kind = string(media.KindVideo)
		m.AssetId = a.VideoUID
		m.DurationSecs = a.DurationSecs
	}
	return m
}

func recordsToPB(records []media.Record) []*pb.MediaRecord {
	out := make([]*pb.MediaRecord, 0, len(records))
	for _, r := range records {
		out = append(out, recordToPB(r))
	}
	return out
}
