package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

type fakeRepo struct {
	stored []models.Record

	EnsureErr error
	LoadErr   error
	SaveErr   error

	EnsureCalls int
	Saves       [][]models.Record
}

func (f *fakeRepo) Ensure(ctx context.Context) error {
	f.EnsureCalls++
	return f.EnsureErr
}

func (f *fakeRepo) Load(ctx context.Context) ([]models.Record, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	return slices.Clone(f.stored), nil
}

func (f *fakeRepo) Save(ctx context.Context, list []models.Record) error {
	f.Saves = append(f.Saves, slices.Clone(list))
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.stored = slices.Clone(list)
	return nil
}

func (f *fakeRepo) Close() error { return nil }
