// Package cli provides the interactive AlbumKeeper command-line client.
//
// It wires configuration, the gRPC catalog client, and an interactive REPL
// over one signed-in session. Typical flow: prompt for credentials, start a
// background album watcher, and execute user commands.
//
// Key features:
//   - Login / Logout
//   - List album media with signed display URLs
//   - Upload local files through the optimistic pipeline
//   - Inspect and retry pending uploads
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartAlbumWatcher, and runREPL for details.
package cli
