package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. The real App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Save(ctx context.Context, slot string) error
	Delete(ctx context.Context) error
	List(ctx context.Context, date string) error
	Sync(ctx context.Context) error
	Status(ctx context.Context) error
	Backup(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit", and
// dispatches them to a. Command errors are printed and the loop goes on.
//
//	help                 show available commands
//	register | login     create an account / sign in
//	save | morning | night  write an entry
//	delete               soft-delete an entry
//	l | list [date]      list a day, today by default
//	sync | status | backup
//	logout | exit | quit
//
// Prompts of the commands read from the same reader, so answers are never
// swallowed by a second buffer.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "sanmitsu %s> ", statusFn())
		line, rerr := reader.ReadString('\n')
		if rerr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: save, morning, night, delete, (l)ist [date], sync, status, backup, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, save, morning, night, delete, (l)ist [date], sync, status, exit")
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "save":
			err = a.Save(ctx, "")
		case "morning", "night":
			err = a.Save(ctx, cmd)
		case "delete":
			err = a.Delete(ctx)
		case "l", "list":
			date := ""
			if len(args) > 0 {
				date = args[0]
			}
			err = a.List(ctx, date)
		case "sync":
			err = a.Sync(ctx)
		case "status":
			err = a.Status(ctx)
		case "backup":
			err = a.Backup(ctx)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if m := a.Mode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run starts the online watcher and the interactive shell on a.reader.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to sanmitsu (type 'help' for commands)")

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
