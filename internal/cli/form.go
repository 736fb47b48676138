package cli

import (
	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// fillForm prompts for every schema field, starting from base. Empty input
// keeps the shown value and "-" clears it. Status is offered as a numbered
// choice.
func (a *App) fillForm(title string, base models.Record) (models.Record, error) {
	a.printf("%s (Enter keeps the value in brackets, '-' clears it)\n", title)

	statuses := make([]string, len(models.Statuses))
	for i, s := range models.Statuses {
		statuses[i] = string(s)
	}

	rec := base
	for _, f := range models.Fields {
		var (
			v   string
			err error
		)
		if f == models.FieldStatus {
			v, err = GetChoice(a.reader, f.Label(), statuses, base.Get(f), a.out)
		} else {
			v, err = GetWithDefault(a.reader, f.Label(), base.Get(f), a.out)
		}
		if err != nil {
			return models.Record{}, err
		}
		if err := rec.Set(f, v); err != nil {
			return models.Record{}, err
		}
	}
	return rec, nil
}
