package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	lastArgs []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) {
	f.calls = append(f.calls, "register")
}
func (f *fakeExec) Login(context.Context) {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
}
func (f *fakeExec) Logout(context.Context) {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
}
func (f *fakeExec) List(context.Context)  { f.calls = append(f.calls, "list") }
func (f *fakeExec) Add(context.Context)   { f.calls = append(f.calls, "add") }
func (f *fakeExec) Stats(context.Context) { f.calls = append(f.calls, "stats") }
func (f *fakeExec) Clients(context.Context) {
	f.calls = append(f.calls, "clients")
}
func (f *fakeExec) Report(context.Context)  { f.calls = append(f.calls, "report") }
func (f *fakeExec) Profile(context.Context) { f.calls = append(f.calls, "profile") }
func (f *fakeExec) Whoami(context.Context)  { f.calls = append(f.calls, "whoami") }
func (f *fakeExec) Show(_ context.Context, args []string) {
	f.calls = append(f.calls, "show")
	f.lastArgs = args
}
func (f *fakeExec) Update(_ context.Context, args []string) {
	f.calls = append(f.calls, "update")
	f.lastArgs = args
}
func (f *fakeExec) Delete(_ context.Context, args []string) {
	f.calls = append(f.calls, "delete")
	f.lastArgs = args
}
func (f *fakeExec) Search(_ context.Context, args []string) {
	f.calls = append(f.calls, "search")
	f.lastArgs = args
}
func (f *fakeExec) Export(_ context.Context, args []string) {
	f.calls = append(f.calls, "export")
	f.lastArgs = args
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func runScript(t *testing.T, exec *fakeExec, lines ...string) {
	t.Helper()
	muteOutput(t)
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}

	runScript(t, exec,
		"help",
		"login",
		"list",
		"show SH-001",
		"stats",
		"nonsense",
		"logout",
		"exit",
	)

	assert.Equal(t, []string{"login", "list", "show", "stats", "logout"}, exec.calls)
}

func TestRunREPL_MutatingCommandsRequireLogin(t *testing.T) {
	exec := &fakeExec{}

	runScript(t, exec,
		"list",
		"add",
		"delete SH-001",
		"register",
		"exit",
	)

	assert.Equal(t, []string{"register"}, exec.calls)
}

func TestRunREPL_PassesArguments(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	runScript(t, exec, "search medical equipment", "exit")

	assert.Equal(t, []string{"search"}, exec.calls)
	assert.Equal(t, []string{"medical", "equipment"}, exec.lastArgs)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	runScript(t, exec, "list")

	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_BlankLinesAreSkipped(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	runScript(t, exec, "", "   ", "list", "quit")

	assert.Equal(t, []string{"list"}, exec.calls)
}
