package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	err      error
}

func (f *fakeExec) record(s string) error {
	f.calls = append(f.calls, s)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool                  { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error    { return f.record("register") }
func (f *fakeExec) Login(context.Context) error       { f.loggedIn = true; return f.record("login") }
func (f *fakeExec) Logout(context.Context) error      { f.loggedIn = false; return f.record("logout") }
func (f *fakeExec) Delete(context.Context) error      { return f.record("delete") }
func (f *fakeExec) Sync(context.Context) error        { return f.record("sync") }
func (f *fakeExec) Status(context.Context) error      { return f.record("status") }
func (f *fakeExec) Backup(context.Context) error      { return f.record("backup") }
func (f *fakeExec) Save(_ context.Context, slot string) error {
	return f.record("save:" + slot)
}
func (f *fakeExec) List(_ context.Context, date string) error {
	return f.record("list:" + date)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"save",
		"morning",
		"night",
		"list",
		"l 2025-01-10",
		"delete",
		"sync",
		"status",
		"backup",
		"logout",
		"foobar",
		"exit",
		"register",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "(alice online)" }, rdr(input), &out)

	assert.Equal(t, []string{
		"login", "save:", "save:morning", "save:night", "list:", "list:2025-01-10",
		"delete", "sync", "status", "backup", "logout",
	}, exec.calls)

	s := out.String()
	assert.Contains(t, s, "sanmitsu (alice online)> ")
	assert.Contains(t, s, "Available commands: register, login")
	assert.Contains(t, s, "Available commands: save, morning")
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	exec := &fakeExec{err: errors.New("disk full")}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("sync\nstatus"), &out)

	assert.Equal(t, []string{"sync", "status"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out.String(), "Error: disk full"))
}

func TestGetStatus(t *testing.T) {
	assert.Equal(t, "", (&App{}).getStatus())
	assert.Equal(t, "(alice )", (&App{userName: "alice"}).getStatus())
	assert.Equal(t, "(alice offline)", (&App{userName: "alice", mode: ModeOffline}).getStatus())
	assert.Equal(t, "(online)", (&App{mode: ModeOnline}).getStatus())
}
