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
	Logout(ctx context.Context) error

	AddVehicle(ctx context.Context) error
	ListVehicles(ctx context.Context) error
	UpdateVehicle(ctx context.Context) error
	DeleteVehicle(ctx context.Context) error

	AddService(ctx context.Context) error
	ListServices(ctx context.Context) error
	AddExpense(ctx context.Context) error
	ListExpenses(ctx context.Context) error
	AddPolicy(ctx context.Context) error
	ListPolicies(ctx context.Context) error
	AddDocument(ctx context.Context) error
	ListDocuments(ctx context.Context) error
	DeleteDocument(ctx context.Context) error

	Alerts(ctx context.Context) error
	Stats(ctx context.Context) error
	Recent(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Ask(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, exit"
	helpLoggedIn  = "Available commands: vehicles, addvehicle, editvehicle, delvehicle, " +
		"services, addservice, expenses, addexpense, policies, addpolicy, " +
		"docs, adddoc, deldoc, alerts, stats, recent, profile, editprofile, " +
		"ask, clearall, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the myGaadi CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gaadi %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn(helpLoggedOut)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpLoggedIn)

		case "v", "vehicles":
			_ = a.ListVehicles(ctx)
		case "addvehicle":
			_ = a.AddVehicle(ctx)
		case "editvehicle":
			_ = a.UpdateVehicle(ctx)
		case "delvehicle":
			_ = a.DeleteVehicle(ctx)

		case "services":
			_ = a.ListServices(ctx)
		case "addservice":
			_ = a.AddService(ctx)
		case "expenses":
			_ = a.ListExpenses(ctx)
		case "addexpense":
			_ = a.AddExpense(ctx)
		case "policies":
			_ = a.ListPolicies(ctx)
		case "addpolicy":
			_ = a.AddPolicy(ctx)
		case "docs":
			_ = a.ListDocuments(ctx)
		case "adddoc":
			_ = a.AddDocument(ctx)
		case "deldoc":
			_ = a.DeleteDocument(ctx)

		case "alerts":
			_ = a.Alerts(ctx)
		case "stats":
			_ = a.Stats(ctx)
		case "recent":
			_ = a.Recent(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "editprofile":
			_ = a.EditProfile(ctx)
		case "ask":
			_ = a.Ask(ctx)
		case "clearall":
			_ = a.ClearAll(ctx)

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
