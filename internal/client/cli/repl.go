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
	Stats(ctx context.Context) error
	Facilities(ctx context.Context) error
	Feedback(ctx context.Context) error
	Trend(ctx context.Context, month string) error
	Nav(ctx context.Context) error
	Whoami(ctx context.Context) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the StoreDash CLI.
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
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - stats          — headline stat cards
//	  - facilities     — facility details table
//	  - feedback       — per-category feedback scores
//	  - trend [month]  — daily reviews trend (defaults to current month)
//	  - nav            — navigation menu
//	  - whoami         — signed-in user and session expiry
//	  - refresh        — exchange the refresh token for a fresh pair
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Every protected view passes the session gate before rendering, so a stale
// or malformed token drops the user back to the anonymous prompt.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sd> %s > ", statusFn()))
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
				printlnFn("Available commands: (s)tats, facilities, feedback, trend [month], nav, whoami, refresh, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "s", "stats":
			_ = a.Stats(ctx)

		case "facilities":
			_ = a.Facilities(ctx)

		case "feedback":
			_ = a.Feedback(ctx)

		case "trend":
			month := ""
			if len(parts) > 1 {
				month = parts[1]
			}
			_ = a.Trend(ctx, month)

		case "nav":
			_ = a.Nav(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

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
