package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server (default from Config)
//	-m string   stream base URL
//	-p string   placeholder image URL
//	-w string   album id to observe
//	-i int      online check interval (in seconds)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-p", "-w", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.StreamBase, "m", cfg.StreamBase, "stream base URL")
	fs.StringVar(&cfg.PlaceholderURL, "p", cfg.PlaceholderURL, "placeholder image URL")
	fs.StringVar(&cfg.AlbumID, "w", cfg.AlbumID, "album id to observe")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
