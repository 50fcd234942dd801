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
	Stage(ctx context.Context, path string) error
	Submit(ctx context.Context) error
	Save(ctx context.Context) error
	History(ctx context.Context) error
	Templates(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Rapihin CLI.
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
//	  - help            — show available commands
//	  - register        — create an account
//	  - login           — authenticate
//	  - templates       — list document types and universities
//	  - exit | quit     — leave the program
//
//	Logged in:
//	  - help            — show available commands
//	  - stage <path>    — stage a .docx file for formatting
//	  - submit          — format the staged file
//	  - save            — write the last formatted document again
//	  - history         — list past formatting requests
//	  - templates       — list document types and universities
//	  - logout          — log out
//	  - exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rapihin> %s ", statusFn()))
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
				printlnFn("Available commands: stage <path>, submit, save, history, templates, logout, exit")
			} else {
				printlnFn("Available commands: register, login, templates, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "stage":
			if len(parts) < 2 {
				printlnFn("Usage: stage <path-to-docx>")
				continue
			}
			_ = a.Stage(ctx, strings.Join(parts[1:], " "))

		case "submit":
			_ = a.Submit(ctx)

		case "save":
			_ = a.Save(ctx)

		case "history":
			_ = a.History(ctx)

		case "templates":
			_ = a.Templates(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
