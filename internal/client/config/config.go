package config

import "time"

// Config holds runtime settings for the AlbumKeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - StreamBase: base URL of the video streaming host, used to template
//     playback and thumbnail URLs around signed tokens.
//   - PlaceholderURL: image shown in place of an asset whose URL could not
//     be signed.
//   - AlbumID: the album this client session observes and uploads into.
//   - MaxImageBytes / MaxVideoBytes: upload size ceilings, zero = unlimited.
//   - MaxDurationSecs: video length ceiling, zero = unlimited.
//   - OnlineCheckInterval: how often the CLI pings the server to refresh the
//     connectivity status shown in the prompt.
type Config struct {
	ServerEndpointAddr  string
	StreamBase          string
	PlaceholderURL      string
	AlbumID             string
	MaxImageBytes       int64
	MaxVideoBytes       int64
	MaxDurationSecs     float64
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.StreamBase = "http://127.0.0.1:8787/stream"
	c.PlaceholderURL = "https://static.example.com/placeholder.png"
	c.AlbumID = "default"
	c.MaxImageBytes = 10 << 20
	c.MaxVideoBytes = 1 << 30
	c.MaxDurationSecs = 600
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
