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
	ChangePassword(ctx context.Context) error
	Whoami(ctx context.Context) error
	TokenInfo(ctx context.Context) error
	Goto(ctx context.Context, path string) error
	Copy(ctx context.Context, text string) error
	Paste(ctx context.Context) error
	OSDescribe(ctx context.Context) error
	Open(ctx context.Context, url string) error
	Ping(ctx context.Context) error
	SetTitle(ctx context.Context, title string) error
}

// runREPL starts a simple read–eval–print loop for the moonui client.
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
//	  - goto <path>    — navigate (the guard redirects protected paths)
//	  - os             — describe the host platform
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - whoami         — show the current user
//	  - token          — show token expiry information
//	  - passwd         — change the account password
//	  - goto <path>    — navigate
//	  - copy <text>    — copy text to the clipboard
//	  - paste          — print the clipboard contents
//	  - open <url>     — open a URL with the system handler
//	  - ping           — probe the backend
//	  - title <text>   — set the window title
//	  - os             — describe the host platform
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("moonui> %s > ", statusFn()))
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
				printlnFn("Available commands: whoami, token, passwd, goto, copy, paste, open, ping, title, os, logout, exit")
			} else {
				printlnFn("Available commands: register, login, goto, os, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "token":
			_ = a.TokenInfo(ctx)

		case "goto":
			if len(parts) < 2 {
				printlnFn("Usage: goto <path>")
				continue
			}
			_ = a.Goto(ctx, parts[1])

		case "copy":
			if len(parts) < 2 {
				printlnFn("Usage: copy <text>")
				continue
			}
			_ = a.Copy(ctx, strings.Join(parts[1:], " "))

		case "paste":
			_ = a.Paste(ctx)

		case "os":
			_ = a.OSDescribe(ctx)

		case "open":
			if len(parts) < 2 {
				printlnFn("Usage: open <url>")
				continue
			}
			_ = a.Open(ctx, parts[1])

		case "ping":
			_ = a.Ping(ctx)

		case "title":
			if len(parts) < 2 {
				printlnFn("Usage: title <text>")
				continue
			}
			_ = a.SetTitle(ctx, strings.Join(parts[1:], " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
