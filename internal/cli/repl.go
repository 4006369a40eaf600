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
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context)
	Login(ctx context.Context)
	Logout(ctx context.Context)
	List(ctx context.Context)
	Add(ctx context.Context)
	Show(ctx context.Context, args []string)
	Update(ctx context.Context, args []string)
	Delete(ctx context.Context, args []string)
	Stats(ctx context.Context)
	Clients(ctx context.Context)
	Search(ctx context.Context, args []string)
	Export(ctx context.Context, args []string)
	Report(ctx context.Context)
	Profile(ctx context.Context)
	Whoami(ctx context.Context)
}

// runREPL starts a read-eval-print loop over the portal commands.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that operate on a record ("show SH-001") receive the remaining
// tokens as arguments. Mutating commands require a login; the logged-out
// command set is limited to register/login/help/exit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("portal %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				a.Register(ctx)
			case "login":
				a.Login(ctx)
			case "exit", "quit":
				return
			default:
				printlnFn(fmt.Sprintf("Unknown command: %s (log in first?)", cmd))
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: list, add, show <id>, update <id>, delete <id>, " +
				"stats, clients, search <text>, export [file], report, profile, whoami, logout, exit")
		case "list":
			a.List(ctx)
		case "add":
			a.Add(ctx)
		case "show":
			a.Show(ctx, args)
		case "update":
			a.Update(ctx, args)
		case "delete":
			a.Delete(ctx, args)
		case "stats":
			a.Stats(ctx)
		case "clients":
			a.Clients(ctx)
		case "search":
			a.Search(ctx, args)
		case "export":
			a.Export(ctx, args)
		case "report":
			a.Report(ctx)
		case "profile":
			a.Profile(ctx)
		case "whoami":
			a.Whoami(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			return
		default:
			printlnFn(fmt.Sprintf("Unknown command: %s", cmd))
		}
	}
}
