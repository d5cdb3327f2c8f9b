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
	List(ctx context.Context) error
	CreateFolder(ctx context.Context, name string) error
	ChangeFolder(ctx context.Context, name string) error
	ReadFile(ctx context.Context, name string) error
	WriteFile(ctx context.Context, name string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the FileKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that take a name (mkdir, cd, read, write) accept it as an
// argument; when it is omitted the handler prompts for it.
//
//	Not logged in:
//	  - help              — show available commands
//	  - register          — create an account
//	  - login             — authenticate
//	  - exit | quit       — leave the program
//
//	Logged in:
//	  - help              — show available commands
//	  - l | list          — list files in the current folder
//	  - mkdir [name]      — create a folder
//	  - cd [name]         — change the current folder (".." goes up)
//	  - read [name]       — print a file
//	  - write [name]      — append text to a file
//	  - logout            — drop the session
//	  - exit | quit       — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		fmt.Print("fk> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, mkdir, cd, read, write, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "mkdir":
			_ = a.CreateFolder(ctx, arg)

		case "cd":
			_ = a.ChangeFolder(ctx, arg)

		case "read":
			_ = a.ReadFile(ctx, arg)

		case "write":
			_ = a.WriteFile(ctx, arg)

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
