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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Drafts(ctx context.Context) error
	DeleteDraft(ctx context.Context) error
	Sync(ctx context.Context) error
	Favorite(ctx context.Context) error
	Unfavorite(ctx context.Context) error
	Favorites(ctx context.Context) error
	PushKey(ctx context.Context) error
}

// runREPL starts a simple read/eval/print loop for the storyline CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("story %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add, drafts, deldraft, sync, fav, unfav, favorites, pushkey, logout, exit")
			} else {
				printlnFn("Available commands: register, login, list, favorites, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "list", "l":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx)

		case "drafts":
			_ = a.Drafts(ctx)

		case "deldraft":
			_ = a.DeleteDraft(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "fav":
			_ = a.Favorite(ctx)

		case "unfav":
			_ = a.Unfavorite(ctx)

		case "favorites":
			_ = a.Favorites(ctx)

		case "pushkey":
			_ = a.PushKey(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
