package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Search(ctx context.Context) error
	Results(ctx context.Context) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Open(ctx context.Context, row int) error
	Details(ctx context.Context) error
	Agencies(ctx context.Context) error
	EuroTrips(ctx context.Context) error
	List(ctx context.Context, entity string, filters []string) error
	Report(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the portal CLI.
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
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - search         — run a hotel search
//	  - results        — show the saved search results
//	  - next | prev    — page through the saved search
//	  - open <n>       — select result row n and show its details
//	  - details        — show the selected hotel again
//	  - agencies       — browse agency profiles
//	  - eurotrips      — browse Euro-trip profiles
//	  - list <entity> [col=value ...] — admin entity tables, optionally
//	    filtered per column
//	  - report         — user-activity report
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("portal> %s ", statusFn()))
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
				printlnFn("Available commands: search, results, next, prev, open <n>, details, agencies, eurotrips, list <entity> [col=value ...], report, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "search":
			_ = a.Search(ctx)

		case "results":
			_ = a.Results(ctx)

		case "next":
			_ = a.NextPage(ctx)

		case "prev":
			_ = a.PrevPage(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <row>")
				continue
			}
			row, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Usage: open <row>")
				continue
			}
			_ = a.Open(ctx, row)

		case "details":
			_ = a.Details(ctx)

		case "agencies":
			_ = a.Agencies(ctx)

		case "eurotrips":
			_ = a.EuroTrips(ctx)

		case "list":
			if len(args) == 0 {
				printlnFn("Usage: list <entity> [col=value ...]")
				continue
			}
			_ = a.List(ctx, args[0], args[1:])

		case "report":
			_ = a.Report(ctx)

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
