// Package services holds the in-memory record store of stockkeeper: the
// authoritative list, the filtered view derived from it, and the mutations
// that persist the list through a records.Repository.
package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/records"
)

type InventoryService interface {
	// Load prepares the store and reads the full list. The view is reset.
	Load(ctx context.Context) error

	All() []models.Record
	View() []models.Record
	Filter() FilterState
	Summary() models.Summary

	// Locate finds target in the full list using rule.
	Locate(target models.Record, rule MatchRule) (models.Record, error)

	Add(ctx context.Context, rec models.Record) (models.Record, error)
	Edit(ctx context.Context, id string, rec models.Record) (models.Record, error)
	Delete(ctx context.Context, id string) error
	Consume(ctx context.Context, id string) (models.Record, error)

	ApplyFieldFilter(field models.Field, query string) ([]models.Record, error)
	ApplyGlobalSearch(query string) []models.Record
	ResetFilter() []models.Record
}

// Observer is told the summary after every load and successful mutation.
type Observer interface {
	Observe(op string, s models.Summary) error
}

// Option configures an InventoryService.
type Option func(*inventoryService)

// WithObserver registers o. Observer errors are logged and otherwise ignored.
func WithObserver(o Observer) Option {
	return func(s *inventoryService) { s.observers = append(s.observers, o) }
}

type inventoryService struct {
	repo      records.Repository
	log       logging.Logger
	observers []Observer

	all    []models.Record
	view   []models.Record
	filter FilterState

	newID func() string
}

func NewInventoryService(repo records.Repository, log logging.Logger, opts ...Option) InventoryService {
	s := &inventoryService{
		repo:  repo,
		log:   log.With("component", "inventory"),
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *inventoryService) Load(ctx context.Context) error {
	if err := s.repo.Ensure(ctx); err != nil {
		return fmt.Errorf("ensure store: %w", err)
	}

	list, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	assigned := s.assignIDs(list)
	if assigned > 0 {
		s.log.Info(ctx, "assigned ids to stored records", "count", assigned)
	}

	s.all = list
	s.ResetFilter()
	s.log.Info(ctx, "inventory loaded", "records", len(list))
	s.notify(ctx, "load")
	return nil
}

// assignIDs gives a fresh id to records without one or whose id repeats an
// earlier record.
func (s *inventoryService) assignIDs(list []models.Record) int {
	seen := make(map[string]struct{}, len(list))
	n := 0
	for i := range list {
		if _, dup := seen[list[i].ID]; list[i].ID == "" || dup {
			list[i].ID = s.newID()
			n++
		}
		seen[list[i].ID] = struct{}{}
	}
	return n
}

func (s *inventoryService) All() []models.Record  { return slices.Clone(s.all) }
func (s *inventoryService) View() []models.Record { return slices.Clone(s.view) }
func (s *inventoryService) Filter() FilterState   { return s.filter }

// Summary covers the full list regardless of the active filter.
func (s *inventoryService) Summary() models.Summary {
	return Summarize(s.all)
}

func (s *inventoryService) Locate(target models.Record, rule MatchRule) (models.Record, error) {
	i := Find(s.all, target, rule)
	if i < 0 {
		return models.Record{}, common.ErrNotFound
	}
	return s.all[i], nil
}

func (s *inventoryService) Add(ctx context.Context, rec models.Record) (models.Record, error) {
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return models.Record{}, err
	}
	rec.ID = s.newID()

	err := s.mutate(ctx, "add", func(list []models.Record) ([]models.Record, error) {
		return append(list, rec), nil
	})
	if err != nil {
		return models.Record{}, err
	}

	s.log.Info(ctx, "record added", "id", rec.ID, "material", rec.MaterialKind)
	return rec, nil
}

// Edit replaces the record with id in place. A missing id is an error; the
// list is never extended by an edit.
func (s *inventoryService) Edit(ctx context.Context, id string, rec models.Record) (models.Record, error) {
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return models.Record{}, err
	}
	rec.ID = id

	err := s.mutate(ctx, "edit", func(list []models.Record) ([]models.Record, error) {
		i := FindByID(list, id)
		if i < 0 {
			return nil, fmt.Errorf("edit %s: %w", id, common.ErrNotFound)
		}
		list[i] = rec
		return list, nil
	})
	if err != nil {
		return models.Record{}, err
	}

	s.log.Info(ctx, "record edited", "id", id)
	return rec, nil
}

func (s *inventoryService) Delete(ctx context.Context, id string) error {
	err := s.mutate(ctx, "delete", func(list []models.Record) ([]models.Record, error) {
		i := FindByID(list, id)
		if i < 0 {
			return nil, fmt.Errorf("delete %s: %w", id, common.ErrNotFound)
		}
		return slices.Delete(list, i, i+1), nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "record deleted", "id", id)
	return nil
}

// Consume takes one step (0.1 kg) from the record with id.
func (s *inventoryService) Consume(ctx context.Context, id string) (models.Record, error) {
	var updated models.Record

	err := s.mutate(ctx, "consume", func(list []models.Record) ([]models.Record, error) {
		i := FindByID(list, id)
		if i < 0 {
			return nil, fmt.Errorf("consume %s: %w", id, common.ErrNotFound)
		}
		list[i].Consume()
		updated = list[i]
		return list, nil
	})
	if err != nil {
		return models.Record{}, err
	}

	s.log.Info(ctx, "record consumed", "id", id, "remaining", updated.Remaining, "status", updated.Status)
	return updated, nil
}

// mutate applies fn to a copy of the list and persists the result. The
// in-memory list changes only after a successful save; then the view is
// reset to the full list.
func (s *inventoryService) mutate(ctx context.Context, op string, fn func([]models.Record) ([]models.Record, error)) error {
	next, err := fn(slices.Clone(s.all))
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, next); err != nil {
		s.log.Error(ctx, "save failed", "op", op, "error", err)
		return fmt.Errorf("%s: save store: %w", op, err)
	}

	s.all = next
	s.ResetFilter()
	s.notify(ctx, op)
	return nil
}

func (s *inventoryService) notify(ctx context.Context, op string) {
	if len(s.observers) == 0 {
		return
	}
	sum := s.Summary()
	for _, o := range s.observers {
		if err := o.Observe(op, sum); err != nil {
			s.log.Warn(ctx, "observer failed", "op", op, "error", err)
		}
	}
}

// ApplyFieldFilter narrows the view to records whose field contains query.
// Only filterable fields are accepted. An empty query resets the view.
func (s *inventoryService) ApplyFieldFilter(field models.Field, query string) ([]models.Record, error) {
	if !field.Filterable() {
		return nil, fmt.Errorf("%w: %q cannot be filtered", common.ErrUnknownField, field)
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return s.ResetFilter(), nil
	}

	s.filter = FilterState{Mode: FilterField, Field: field, Query: q}
	s.view = FilterByField(s.all, field, q)
	return s.View(), nil
}

// ApplyGlobalSearch narrows the view to records with query in any field.
// An empty query resets the view.
func (s *inventoryService) ApplyGlobalSearch(query string) []models.Record {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.ResetFilter()
	}

	s.filter = FilterState{Mode: FilterGlobal, Query: q}
	s.view = SearchAll(s.all, q)
	return s.View()
}

func (s *inventoryService) ResetFilter() []models.Record {
	s.filter = FilterState{}
	s.view = slices.Clone(s.all)
	return s.View()
}
