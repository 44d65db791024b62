package services

import (
	"context"
	"crypto/rsa"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
	sc "github.com/dmitrijs2005/albumkeeper/internal/server/config"
	"github.com/dmitrijs2005/albumkeeper/internal/server/models"
	"github.com/dmitrijs2005/albumkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/albumkeeper/internal/server/signing"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// UploadCredential is a one-time upload grant: the provider-side asset id
// and the direct URL the client PUTs the bytes to.
type UploadCredential struct {
	AssetID   string
	UploadURL string
}

// IssuerService mints all short-lived credentials: batches of one-time
// upload grants, signed image delivery URLs and RS256 stream playback
// tokens.
type IssuerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	images      *signing.ImageURLSigner
	stream      *signing.StreamTokenSigner
}

func NewIssuerService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config, streamKey *rsa.PrivateKey) *IssuerService {
	return &IssuerService{
		db:          db,
		repomanager: repomanager,
		config:      config,
		images:      signing.NewImageURLSigner([]byte(config.ImageSigningSecret), config.SignedURLTTL),
		stream:      signing.NewStreamTokenSigner(streamKey, signing.DefaultStreamTokenTTL),
	}
}

// GetStorageKey returns the object key for a freshly issued asset, sharded
// by date.
func GetStorageKey(assetID string) string {
	d := time.Now()
	return fmt.Sprintf("albums/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), assetID)
}

func (s *IssuerService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

func (s *IssuerService) getPresignedPutURL(ctx context.Context, key string) (string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	// Presigned PUT
	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// IssueUploadCredentials mints one credential per filename, in order. Each
// credential is recorded as an unused upload slot keyed by the asset id;
// consumption happens later, inside CreateMedia.
func (s *IssuerService) IssueUploadCredentials(ctx context.Context, ownerID string, filenames []string) ([]UploadCredential, error) {

	slotRepo := s.repomanager.UploadSlots(s.db)

	creds := make([]UploadCredential, 0, len(filenames))
	for _, filename := range filenames {
		assetID := uuid.New().String()

		url, err := s.getPresignedPutURL(ctx, GetStorageKey(assetID))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrSigning, err)
		}

		slot := &models.UploadSlot{
			ID:        assetID,
			OwnerID:   ownerID,
			Filename:  filename,
			UploadURL: url,
			CreatedAt: time.Now(),
		}
		if err := slotRepo.Create(ctx, slot); err != nil {
			return nil, fmt.Errorf("error recording upload slot: %v", err)
		}

		creds = append(creds, UploadCredential{AssetID: assetID, UploadURL: url})
	}

	return creds, nil
}

// SignImageURL returns a signed delivery URL for the stored image with the
// given provider id. Unknown or deleted images are refused.
func (s *IssuerService) SignImageURL(ctx context.Context, imageID string) (string, error) {

	rec, err := s.repomanager.Records(s.db).GetByAssetID(ctx, imageID)
	if err != nil {
		return "", err
	}
	if rec.Deleted {
		return "", common.ErrNotFound
	}

	signed, err := s.images.Sign(fmt.Sprintf("%s/%s", s.config.ImageDeliveryBase, imageID))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrSigning, err)
	}
	return signed, nil
}

// SignVideoToken returns an RS256 playback token for the stored video with
// the given provider uid. Unknown or deleted videos are refused.
func (s *IssuerService) SignVideoToken(ctx context.Context, videoUID string) (string, error) {

	rec, err := s.repomanager.Records(s.db).GetByAssetID(ctx, videoUID)
	if err != nil {
		return "", err
	}
	if rec.Deleted {
		return "", common.ErrNotFound
	}

	token, err := s.stream.Sign(videoUID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrSigning, err)
	}
	return token, nil
}
