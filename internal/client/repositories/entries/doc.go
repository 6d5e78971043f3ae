// Package entries is the local EntryStore: durable keyed storage of practice
// entries plus the pull checkpoint.
//
// Two interchangeable backends implement Repository:
//
//   - SQLiteRepository: database/sql over the goose-migrated entries and
//     metadata tables.
//   - GormRepository: an object store on gorm, entries persisted as objects
//     keyed by (date, slot).
//
// Every operation either fully succeeds or leaves prior state unchanged;
// multi-row writes run in one transaction. Storage errors are returned to
// the caller and never retried here.
//
// Typical usage:
//
//	repo := entries.NewSQLiteRepository(db)
//	_ = repo.UpsertLocal(ctx, e)
//	dirty, _ := repo.ListDirty(ctx)
//	_ = repo.MarkClean(ctx, e.Key(), serverTS, e.ClientUpdatedAt)
package entries
