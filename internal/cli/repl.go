package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL-level output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a recording stub.
type execIface interface {
	List(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Reset(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Consume(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Summary(ctx context.Context, args []string) error
	Fields(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  l, list                 show the current table
  filter <field> <text>   keep rows whose field contains text
  search <text>           keep rows where any field contains text
  reset                   clear filter and search
  add                     add a record
  edit <n>                edit row n
  delete <n>              delete row n
  consume <n>             take 0.1 kg from row n
  export [path]           write all records to a spreadsheet
  summary                 record count and total remaining
  fields                  list field names
  exit, quit              leave the program`

// runREPL reads one command per line from reader, with the prompt showing
// statusFn, and dispatches it to a. It returns nil on "exit", "quit" or end
// of input, and the first error a handler returns otherwise. Handlers print
// their own recoverable notices; an error from them means the session can't
// go on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) error {
	for {
		printlnFn(fmt.Sprintf("stock %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var handler func(context.Context, []string) error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return nil
		case "l", "list":
			handler = a.List
		case "filter":
			handler = a.Filter
		case "search":
			handler = a.Search
		case "reset":
			handler = a.Reset
		case "add":
			handler = a.Add
		case "edit":
			handler = a.Edit
		case "delete", "rm":
			handler = a.Delete
		case "consume", "use":
			handler = a.Consume
		case "export":
			handler = a.Export
		case "summary":
			handler = a.Summary
		case "fields":
			handler = a.Fields
		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err := handler(ctx, args); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
