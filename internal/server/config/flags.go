package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-w string   webhook HTTP bind address (e.g., ":8081")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-i string   image URL signing secret
//	-l string   image delivery base URL
//	-m string   stream base URL
//	-k string   path to the RS256 stream signing key (PEM)
//	-x string   webhook signing secret
//	-n int      signed image URL validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in minutes and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-d", "-s", "-t", "-i", "-l", "-m", "-k", "-x", "-n", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.WebhookAddr, "w", config.WebhookAddr, "address and port for the webhook listener")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	signedURLTTL := fs.Int("n", int(config.SignedURLTTL.Minutes()), "signed_url_ttl (in minutes)")

	fs.StringVar(&config.ImageSigningSecret, "i", config.ImageSigningSecret, "image URL signing secret")
	fs.StringVar(&config.ImageDeliveryBase, "l", config.ImageDeliveryBase, "image delivery base URL")
	fs.StringVar(&config.StreamBase, "m", config.StreamBase, "stream base URL")
	fs.StringVar(&config.StreamPrivateKeyPath, "k", config.StreamPrivateKeyPath, "stream signing key path (PEM)")
	fs.StringVar(&config.WebhookSecret, "x", config.WebhookSecret, "webhook signing secret")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.SignedURLTTL = time.Duration(*signedURLTTL) * time.Minute
}
