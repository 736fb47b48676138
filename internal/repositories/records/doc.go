// Package records persists the full list of stock records.
//
// # Overview
//
// Repository is the persistence boundary used by the inventory service. It
// always reads and writes the whole list; there are no per-record calls.
// Two implementations exist:
//
//   - JSONRepository: a single JSON array in one file (default)
//   - SQLiteRepository: one table managed by embedded goose migrations
//
// Both keep the order of the list exactly as saved.
//
// Typical Usage
//
//	repo, err := records.New(ctx, cfg, log)
//	_ = repo.Ensure(ctx)
//	list, _ := repo.Load(ctx)
//	_ = repo.Save(ctx, list)
//	_ = repo.Close()
package records
