// Package grpc exposes the catalog and issuance services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/logging"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	pb "github.com/dmitrijs2005/albumkeeper/internal/proto"
	"github.com/dmitrijs2005/albumkeeper/internal/server/services"
	"google.golang.org/grpc"
)

// watchPollInterval is how often a WatchAlbum stream re-reads the album
// version cursor.
const watchPollInterval = 2 * time.Second

type mediaSvc interface {
	CreateMedia(ctx context.Context, albumID, uploaderID string, asset media.Asset, sizeBytes int64, correlationKey string) (media.Record, error)
	ListAlbum(ctx context.Context, albumID string) ([]media.Record, error)
	Updates(ctx context.Context, albumID string, sinceVersion int64) ([]media.Record, int64, error)
	SoftDelete(ctx context.Context, albumID, id string) error
}

type issuerSvc interface {
	IssueUploadCredentials(ctx context.Context, ownerID string, filenames []string) ([]services.UploadCredential, error)
	SignImageURL(ctx context.Context, imageID string) (string, error)
	SignVideoToken(ctx context.Context, videoUID string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedAlbumKeeperServiceServer
	address      string
	media        mediaSvc
	issuer       issuerSvc
	logger       logging.Logger
	jwtSecret    []byte
	pollInterval time.Duration
}

func NewGRPCServer(a string, l logging.Logger, ms mediaSvc, is issuerSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		media:        ms,
		issuer:       is,
		jwtSecret:    []byte(secretKey),
		pollInterval: watchPollInterval,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
	)

	// registers service
	pb.RegisterAlbumKeeperServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
