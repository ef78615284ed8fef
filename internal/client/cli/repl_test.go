package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) AddVehicle(ctx context.Context) error     { return f.record("addvehicle") }
func (f *fakeExec) ListVehicles(ctx context.Context) error   { return f.record("vehicles") }
func (f *fakeExec) UpdateVehicle(ctx context.Context) error  { return f.record("editvehicle") }
func (f *fakeExec) DeleteVehicle(ctx context.Context) error  { return f.record("delvehicle") }
func (f *fakeExec) AddService(ctx context.Context) error     { return f.record("addservice") }
func (f *fakeExec) ListServices(ctx context.Context) error   { return f.record("services") }
func (f *fakeExec) AddExpense(ctx context.Context) error     { return f.record("addexpense") }
func (f *fakeExec) ListExpenses(ctx context.Context) error   { return f.record("expenses") }
func (f *fakeExec) AddPolicy(ctx context.Context) error      { return f.record("addpolicy") }
func (f *fakeExec) ListPolicies(ctx context.Context) error   { return f.record("policies") }
func (f *fakeExec) AddDocument(ctx context.Context) error    { return f.record("adddoc") }
func (f *fakeExec) ListDocuments(ctx context.Context) error  { return f.record("docs") }
func (f *fakeExec) DeleteDocument(ctx context.Context) error { return f.record("deldoc") }
func (f *fakeExec) Alerts(ctx context.Context) error         { return f.record("alerts") }
func (f *fakeExec) Stats(ctx context.Context) error          { return f.record("stats") }
func (f *fakeExec) Recent(ctx context.Context) error         { return f.record("recent") }
func (f *fakeExec) Profile(ctx context.Context) error        { return f.record("profile") }
func (f *fakeExec) EditProfile(ctx context.Context) error    { return f.record("editprofile") }
func (f *fakeExec) Ask(ctx context.Context) error            { return f.record("ask") }
func (f *fakeExec) ClearAll(ctx context.Context) error       { return f.record("clearall") }

func runScript(t *testing.T, exec *fakeExec, lines ...string) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{loggedIn: false}
	runScript(t, exec,
		"help",
		"login",
		"help",
		"addvehicle",
		"vehicles",
		"addservice 123",
		"alerts",
		"unknowncmd",
		"exit",
	)

	wantOrder := []string{"login", "addvehicle", "vehicles", "addservice", "alerts"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_GateWhenLoggedOut(t *testing.T) {
	exec := &fakeExec{loggedIn: false}
	runScript(t, exec,
		"vehicles",
		"addexpense",
		"stats",
		"exit",
	)

	if len(exec.calls) != 0 {
		t.Fatalf("logged-out commands should not dispatch, got %v", exec.calls)
	}
}

func TestRunREPL_LogoutReturnsToGate(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runScript(t, exec,
		"stats",
		"logout",
		"stats",
		"exit",
	)

	want := []string{"stats", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("got %v, want %v", exec.calls, want)
		}
	}
}

func TestRunREPL_EmptyLineAndAliases(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runScript(t, exec,
		"",
		"v",
		"quit",
	)

	if len(exec.calls) != 1 || exec.calls[0] != "vehicles" {
		t.Fatalf("got %v", exec.calls)
	}
}
