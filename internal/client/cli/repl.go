package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL dispatches to. The
// real App satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	More(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Fav(ctx context.Context, id string) error
	Favorites(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command and
// dispatches. It exits on scanner EOF or "exit"/"quit". Command errors are
// reported by the handlers themselves; the loop only keeps reading.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("filmoteka %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, more, show <id>, fav <id>, favorites, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, (l)ist, more, show <id>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "more":
			_ = a.More(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <movie id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <movie id>")
				continue
			}
			_ = a.Fav(ctx, args[0])

		case "favorites":
			_ = a.Favorites(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
