package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) AddUser(context.Context) error { return f.record("adduser", nil) }
func (f *fakeExec) DeleteUser(_ context.Context, args []string) error {
	return f.record("deluser", args)
}
func (f *fakeExec) ListUsers(context.Context) error { return f.record("users", nil) }
func (f *fakeExec) ShowUser(_ context.Context, args []string) error {
	return f.record("show", args)
}
func (f *fakeExec) Normalize(_ context.Context, args []string) error {
	return f.record("normalize", args)
}
func (f *fakeExec) ListFilms(context.Context) error { return f.record("films", nil) }
func (f *fakeExec) AddFavorite(_ context.Context, args []string) error {
	return f.record("fav", args)
}
func (f *fakeExec) ListFavorites(_ context.Context, args []string) error {
	return f.record("favs", args)
}
func (f *fakeExec) FavoriteGenre(_ context.Context, args []string) error {
	return f.record("favgenre", args)
}
func (f *fakeExec) FavsPerSeries(_ context.Context, args []string) error {
	return f.record("favseries", args)
}
func (f *fakeExec) FavsLength(_ context.Context, args []string) error {
	return f.record("favtime", args)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string

	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	printFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })

	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"adduser",
		"",
		"users",
		"show jdoe",
		"normalize jdoe",
		"films",
		"fav jdoe",
		"favs jdoe",
		"favgenre jdoe",
		"favseries jdoe",
		"favtime jdoe",
		"deluser jdoe",
		"foobar",
		"exit",
		"users",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, "uocflix", bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"adduser",
		"users",
		"show jdoe",
		"normalize jdoe",
		"films",
		"fav jdoe",
		"favs jdoe",
		"favgenre jdoe",
		"favseries jdoe",
		"favtime jdoe",
		"deluser jdoe",
	}, exec.calls, "commands after exit must not run")

	assert.Contains(t, *out, helpText)
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, "", bufio.NewReader(strings.NewReader("users\nfilms\nquit\n")))

	assert.Equal(t, []string{"users", "films"}, exec.calls)
	assert.Equal(t, []string{"error: boom", "error: boom", "Bye!"}, *out)
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, "", bufio.NewReader(strings.NewReader("users")))

	assert.Equal(t, []string{"users"}, exec.calls)
}
