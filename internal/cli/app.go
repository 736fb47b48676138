package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/config"
	"github.com/dmitrijs2005/stockkeeper/internal/export"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
)

type App struct {
	config    *config.Config
	inventory services.InventoryService
	exporter  export.Capability
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

func NewApp(c *config.Config, inv services.InventoryService, exp export.Capability, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:    c,
		inventory: inv,
		exporter:  exp,
		log:       log.With("component", "cli"),
		reader:    bufio.NewReader(in),
		out:       out,
		now:       time.Now,
	}
}

// Run loads the inventory, shows it and serves commands until exit. The
// returned error is non-nil only for failures the program cannot continue
// after, such as an unreadable or unwritable store.
func (a *App) Run(ctx context.Context) error {
	if err := a.inventory.Load(ctx); err != nil {
		return err
	}

	a.printf("Warehouse stock (type 'help' for commands)\n")
	if !a.exporter.Available {
		a.printf("Export unavailable: %s\n", a.exporter.Reason)
	}
	if err := a.show(); err != nil {
		return err
	}

	return runREPL(ctx, a, a.status, a.reader)
}

// status is shown in the prompt: rows visible out of total, plus the filter.
func (a *App) status() string {
	shown, total := len(a.inventory.View()), a.inventory.Summary().Count
	f := a.inventory.Filter()
	if f.Mode == services.FilterNone {
		return fmt.Sprintf("%d/%d", shown, total)
	}
	return fmt.Sprintf("%d/%d, filter: %s", shown, total, f)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) notice(format string, args ...any) {
	fmt.Fprintf(a.out, "! "+format+"\n", args...)
}

// show prints the current view and the summary line.
func (a *App) show() error {
	if err := renderTable(a.out, a.inventory.View()); err != nil {
		return err
	}
	a.printf("%s\n", a.inventory.Summary())
	return nil
}

// settle turns a service error into a notice when the user can recover from
// it; anything else is logged and returned to stop the loop.
func (a *App) settle(ctx context.Context, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrValidation):
		a.notice("Not saved: %v", err)
		return nil
	case errors.Is(err, common.ErrNotFound):
		a.notice("Could not find the record to %s", op)
		return nil
	default:
		a.log.Error(ctx, "command failed", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}
}
