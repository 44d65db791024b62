package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	sc "github.com/dmitrijs2005/albumkeeper/internal/server/config"
	"github.com/dmitrijs2005/albumkeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStreamKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func newIssuerService(t *testing.T, db *sql.DB, m *fakeRepoManager) *IssuerService {
	t.Helper()
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	return NewIssuerService(db, m, cfg, testStreamKey(t))
}

// stubPresign replaces the AWS seams so no network is touched. Each issued
// URL embeds the object key so tests can tell credentials apart.
func stubPresign(t *testing.T) {
	t.Helper()

	origLoad, origNewS3, origNewPre, origPut := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, presignPutObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: fmt.Sprintf("https://s3.example.com/%s/%s?X-Amz-Signature=stub", *in.Bucket, *in.Key)}, nil
	}
}

func TestIssueUploadCredentials_OnePerFilenameInOrder(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	stubPresign(t)

	m := newFakeRepoManager()
	svc := newIssuerService(t, db, m)

	creds, err := svc.IssueUploadCredentials(context.Background(), "user1", []string{"a.jpg", "b.mp4"})
	require.NoError(t, err)
	require.Len(t, creds, 2)

	// distinct asset ids, each recorded as an unused slot
	assert.NotEqual(t, creds[0].AssetID, creds[1].AssetID)
	require.Len(t, m.s.slots, 2)
	assert.Equal(t, "a.jpg", m.s.slots[0].Filename)
	assert.Equal(t, "b.mp4", m.s.slots[1].Filename)
	assert.Equal(t, creds[0].AssetID, m.s.slots[0].ID)
	assert.Equal(t, creds[1].AssetID, m.s.slots[1].ID)

	for _, c := range creds {
		assert.Contains(t, c.UploadURL, c.AssetID, "upload URL must target the issued asset's key")
	}
}

func TestIssueUploadCredentials_PresignFailure(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	stubPresign(t)

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-put-fail")
	}

	m := newFakeRepoManager()
	svc := newIssuerService(t, db, m)

	_, err := svc.IssueUploadCredentials(context.Background(), "user1", []string{"a.jpg"})
	require.ErrorIs(t, err, common.ErrSigning)
	assert.Empty(t, m.s.slots)
}

func TestSignImageURL_SignedForStoredImage(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeRepoManager()
	m.r.byAsset = &models.Media{ID: "m1", Kind: string(media.KindImage), AssetID: "img-1"}
	svc := newIssuerService(t, db, m)

	signed, err := svc.SignImageURL(context.Background(), "img-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed, svc.config.ImageDeliveryBase+"/img-1?"), "signed URL %q", signed)
	assert.Contains(t, signed, "exp=")
	assert.Contains(t, signed, "sig=")
}

func TestSignImageURL_UnknownOrDeleted(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	t.Run("unknown", func(t *testing.T) {
		m := newFakeRepoManager()
		m.r.getErr = common.ErrNotFound
		svc := newIssuerService(t, db, m)

		_, err := svc.SignImageURL(context.Background(), "ghost")
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("deleted", func(t *testing.T) {
		m := newFakeRepoManager()
		m.r.byAsset = &models.Media{ID: "m1", Kind: string(media.KindImage), AssetID: "img-1", Deleted: true}
		svc := newIssuerService(t, db, m)

		_, err := svc.SignImageURL(context.Background(), "img-1")
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestSignVideoToken_RS256WithSubject(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	key := testStreamKey(t)
	cfg := &sc.Config{}
	cfg.LoadDefaults()

	m := newFakeRepoManager()
	m.r.byAsset = &models.Media{ID: "m1", Kind: string(media.KindVideo), AssetID: "vid-1"}
	svc := NewIssuerService(db, m, cfg, key)

	token, err := svc.SignVideoToken(context.Background(), "vid-1")
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(tok *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)

	claims := parsed.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, "vid-1", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
}

func TestSignVideoToken_Unknown(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeRepoManager()
	m.r.getErr = common.ErrNotFound
	svc := newIssuerService(t, db, m)

	_, err := svc.SignVideoToken(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrNotFound)
}
