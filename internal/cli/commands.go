package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/export"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
)

func (a *App) List(ctx context.Context, args []string) error {
	return a.show()
}

func (a *App) Summary(ctx context.Context, args []string) error {
	a.printf("%s\n", a.inventory.Summary())
	return nil
}

func (a *App) Fields(ctx context.Context, args []string) error {
	for _, f := range models.Fields {
		mark := ""
		if f.Filterable() {
			mark = "  (filter)"
		}
		a.printf("  %-20s %s%s\n", f, f.Label(), mark)
	}
	return nil
}

// Filter handles "filter <field> <query...>".
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.notice("Usage: filter <field> <text>; see 'fields'")
		return nil
	}

	field, err := models.ParseField(args[0])
	if err == nil && !field.Filterable() {
		err = fmt.Errorf("%w: %s", common.ErrUnknownField, field)
	}
	if err != nil {
		a.notice("Cannot filter by %q. Filterable fields: %s", args[0], filterableNames())
		return nil
	}

	if _, err := a.inventory.ApplyFieldFilter(field, strings.Join(args[1:], " ")); err != nil {
		a.notice("%v", err)
		return nil
	}
	return a.show()
}

// Search handles "search <query...>"; an empty query resets.
func (a *App) Search(ctx context.Context, args []string) error {
	a.inventory.ApplyGlobalSearch(strings.Join(args, " "))
	return a.show()
}

func (a *App) Reset(ctx context.Context, args []string) error {
	a.inventory.ResetFilter()
	return a.show()
}

func (a *App) Add(ctx context.Context, args []string) error {
	return a.submitForm(ctx, "add", "New record", models.NewRecord(a.now()), func(rec models.Record) error {
		twin := a.twinOf(rec)
		if _, err := a.inventory.Add(ctx, rec); err != nil {
			return err
		}
		if twin != "" {
			a.notice("%s", twin)
		}
		return nil
	})
}

// twinOf describes an already stored record that rec repeats, or returns "".
// Duplicates are allowed; the message only points them out.
func (a *App) twinOf(rec models.Record) string {
	if _, err := a.inventory.Locate(rec, services.MatchByValues); err == nil {
		return "Added a duplicate: an identical record was already stored"
	}
	if twin, err := a.inventory.Locate(rec, services.MatchByIdentity); err == nil {
		return fmt.Sprintf("The same spool is already stored (%s, %s)", twin.Status, twin.Remaining)
	}
	return ""
}

func (a *App) Edit(ctx context.Context, args []string) error {
	target, ok := a.row(args)
	if !ok {
		return nil
	}

	return a.submitForm(ctx, "edit", "Edit record", target, func(rec models.Record) error {
		if services.MatchExact(rec, target) {
			a.printf("No changes\n")
			return nil
		}
		_, err := a.inventory.Edit(ctx, target.ID, rec)
		return err
	})
}

func (a *App) Delete(ctx context.Context, args []string) error {
	target, ok := a.row(args)
	if !ok {
		return nil
	}

	if err := a.inventory.Delete(ctx, target.ID); err != nil {
		return a.settle(ctx, "delete", err)
	}
	return a.show()
}

// Consume takes 0.1 kg from the selected row.
func (a *App) Consume(ctx context.Context, args []string) error {
	target, ok := a.row(args)
	if !ok {
		return nil
	}

	rec, err := a.inventory.Consume(ctx, target.ID)
	if err != nil {
		return a.settle(ctx, "update", err)
	}
	a.printf("%s %s: %s, %s\n", rec.MaterialKind, rec.Color, rec.Remaining, rec.Status)
	return a.show()
}

// Export writes the full list, ignoring the active filter. Failures are
// reported and never end the session.
func (a *App) Export(ctx context.Context, args []string) error {
	if err := a.exporter.Err(); err != nil {
		a.notice("%v", err)
		return nil
	}

	ex := a.exporter.Exporter
	path := strings.Join(args, " ")
	if path == "" {
		path = export.DefaultPath(a.config.ExportDir, ex.Format(), a.now())
	}

	list := a.inventory.All()
	if err := ex.Export(ctx, path, list); err != nil {
		a.log.Warn(ctx, "export failed", "path", path, "error", err)
		a.notice("Export failed: %v", err)
		return nil
	}

	a.log.Info(ctx, "exported", "path", path, "records", len(list))
	a.printf("Exported %d records to %s\n", len(list), path)
	return nil
}

// row resolves the 1-based row number in args[0] against the current view.
func (a *App) row(args []string) (models.Record, bool) {
	view := a.inventory.View()
	if len(args) == 0 {
		a.notice("Select a record: give its row number from the table")
		return models.Record{}, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(view) {
		a.notice("No row %q in the current table (1-%d)", args[0], len(view))
		return models.Record{}, false
	}
	return view[n-1], true
}

// submitForm shows the form until save accepts it. A validation failure is
// reported and the form is shown again with the values entered so far.
func (a *App) submitForm(ctx context.Context, op, title string, base models.Record, save func(models.Record) error) error {
	for {
		rec, err := a.fillForm(title, base)
		if err != nil {
			return a.formAborted(err)
		}

		err = save(rec)
		switch {
		case err == nil:
			return a.show()
		case errors.Is(err, common.ErrValidation):
			a.notice("Not saved: %v", err)
			base = rec
		default:
			return a.settle(ctx, op, err)
		}
	}
}

// formAborted reports an interrupted form. End of input is passed up so the
// loop can finish.
func (a *App) formAborted(err error) error {
	if errors.Is(err, io.EOF) {
		a.printf("\n")
		return io.EOF
	}
	a.notice("Form aborted: %v", err)
	return nil
}

func filterableNames() string {
	names := make([]string, len(models.FilterFields))
	for i, f := range models.FilterFields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
