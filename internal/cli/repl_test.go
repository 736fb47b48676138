package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
	args  [][]string

	failOn string
	err    error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	if f.failOn == name {
		return f.err
	}
	return nil
}

func (f *fakeExec) List(ctx context.Context, a []string) error    { return f.record("list", a) }
func (f *fakeExec) Filter(ctx context.Context, a []string) error  { return f.record("filter", a) }
func (f *fakeExec) Search(ctx context.Context, a []string) error  { return f.record("search", a) }
func (f *fakeExec) Reset(ctx context.Context, a []string) error   { return f.record("reset", a) }
func (f *fakeExec) Add(ctx context.Context, a []string) error     { return f.record("add", a) }
func (f *fakeExec) Edit(ctx context.Context, a []string) error    { return f.record("edit", a) }
func (f *fakeExec) Delete(ctx context.Context, a []string) error  { return f.record("delete", a) }
func (f *fakeExec) Consume(ctx context.Context, a []string) error { return f.record("consume", a) }
func (f *fakeExec) Export(ctx context.Context, a []string) error  { return f.record("export", a) }
func (f *fakeExec) Summary(ctx context.Context, a []string) error { return f.record("summary", a) }
func (f *fakeExec) Fields(ctx context.Context, a []string) error  { return f.record("fields", a) }

func stubPrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		s := make([]string, len(a))
		for i, v := range a {
			s[i], _ = v.(string)
		}
		lines = append(lines, strings.Join(s, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func readerOf(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := stubPrintln(t)

	exec := &fakeExec{}
	err := runREPL(context.Background(), exec, func() string { return "2/2" }, readerOf(
		"help",
		"l",
		"list",
		"filter color dark red",
		"search pla",
		"reset",
		"",
		"add",
		"edit 2",
		"DELETE 1",
		"use 3",
		"export /tmp/x.xlsx",
		"summary",
		"fields",
		"frobnicate",
		"exit",
		"list",
	))
	require.NoError(t, err)

	assert.Equal(t, []string{"list", "list", "filter", "search", "reset", "add", "edit",
		"delete", "consume", "export", "summary", "fields"}, exec.calls)
	assert.Equal(t, []string{"color", "dark", "red"}, exec.args[2])
	assert.Equal(t, []string{"2"}, exec.args[6])

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "stock 2/2 > ")
	assert.Contains(t, joined, "Available commands:")
	assert.Contains(t, joined, "Unknown command: frobnicate")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_EndOfInputStops(t *testing.T) {
	stubPrintln(t)

	exec := &fakeExec{}
	err := runREPL(context.Background(), exec, func() string { return "" },
		bufio.NewReader(strings.NewReader("list")))
	require.NoError(t, err)
	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_HandlerErrorStops(t *testing.T) {
	stubPrintln(t)

	boom := errors.New("store unwritable")
	exec := &fakeExec{failOn: "delete", err: boom}

	err := runREPL(context.Background(), exec, func() string { return "" }, readerOf("delete 1", "list"))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"delete"}, exec.calls)
}

func TestRunREPL_HandlerEOFEndsQuietly(t *testing.T) {
	stubPrintln(t)

	exec := &fakeExec{failOn: "add", err: io.EOF}
	err := runREPL(context.Background(), exec, func() string { return "" }, readerOf("add", "list"))
	require.NoError(t, err)
	assert.Equal(t, []string{"add"}, exec.calls)
}
