package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Vaults(ctx context.Context) error
	NewVault(ctx context.Context) error
	Upload(ctx context.Context) error
	Download(ctx context.Context) error
}

// runREPL starts a simple read, eval, print loop for the Vaultic CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - whoami         show the account profile
//	  - vaults         list vaults
//	  - newvault       create a vault
//	  - upload         upload a file as an attachment
//	  - download       download an attachment
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	report := func(err error) {
		if err != nil {
			fmt.Fprintln(w, "error:", err)
		}
	}

	for {
		fmt.Fprintf(w, "vaultic %s> ", statusFn())
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
				fmt.Fprintln(w, "Available commands: whoami, (v)aults, newvault, upload, download, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "whoami":
			report(a.WhoAmI(ctx))

		case "v", "vaults":
			report(a.Vaults(ctx))

		case "newvault":
			report(a.NewVault(ctx))

		case "upload":
			report(a.Upload(ctx))

		case "download":
			report(a.Download(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
