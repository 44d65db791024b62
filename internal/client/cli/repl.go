package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Upload(ctx context.Context, paths []string) error
	Pending(ctx context.Context) error
	Retry(ctx context.Context, key string) error
	Discard(ctx context.Context, key string) error
	Delete(ctx context.Context, id string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the AlbumKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help              — show available commands
//	  - login             — authenticate with a user id and access token
//	  - exit | quit       — leave the program
//
//	Logged in:
//	  - help              — show available commands
//	  - list | l          — list album media with display URLs
//	  - upload <path>...  — upload local files into the album
//	  - pending           — show in-flight and failed uploads
//	  - retry <key>       — retry a failed upload
//	  - discard <key>     — drop a failed upload without retrying
//	  - delete <id>       — remove a media record from the album
//	  - logout            — log out
//	  - exit | quit       — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ak> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, upload, pending, retry, discard, delete, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path> [path...]")
				continue
			}
			_ = a.Upload(ctx, args)

		case "pending":
			_ = a.Pending(ctx)

		case "retry":
			if len(args) == 0 {
				printlnFn("Usage: retry <key>")
				continue
			}
			_ = a.Retry(ctx, args[0])

		case "discard":
			if len(args) == 0 {
				printlnFn("Usage: discard <key>")
				continue
			}
			_ = a.Discard(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
