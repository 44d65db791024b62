// Package config loads runtime configuration for the AlbumKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-m string   base URL of the video streaming host
//	-p string   placeholder image URL shown while signing fails
//	-w string   album id the client observes
//	-i int      online check interval in seconds
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "stream_base": "http://127.0.0.1:8787/stream",
//	  "placeholder_url": "https://static.example.com/placeholder.png",
//	  "album_id": "family",
//	  "max_image_bytes": 10485760,
//	  "max_video_bytes": 1073741824,
//	  "max_duration_secs": 600,
//	  "online_check_interval": "3s"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
