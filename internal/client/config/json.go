package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/albumkeeper/internal/flagx"
	"github.com/dmitrijs2005/albumkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	StreamBase          string         `json:"stream_base"`
	PlaceholderURL      string         `json:"placeholder_url"`
	AlbumID             string         `json:"album_id"`
	MaxImageBytes       int64          `json:"max_image_bytes"`
	MaxVideoBytes       int64          `json:"max_video_bytes"`
	MaxDurationSecs     float64        `json:"max_duration_secs"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies known fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.StreamBase = jc.StreamBase
	cfg.PlaceholderURL = jc.PlaceholderURL
	cfg.AlbumID = jc.AlbumID
	cfg.MaxImageBytes = jc.MaxImageBytes
	cfg.MaxVideoBytes = jc.MaxVideoBytes
	cfg.MaxDurationSecs = jc.MaxDurationSecs
	cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
}
