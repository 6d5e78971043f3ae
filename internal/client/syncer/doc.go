// Package syncer reconciles the local entry store with the remote store.
//
// One pass pushes every dirty row in a single bulk upsert, marks each echoed
// row clean, then pulls one page of rows newer than the checkpoint, applies
// it and advances the checkpoint to the last pulled server timestamp. Push
// always precedes pull. A failed phase aborts the pass and leaves dirty flags
// and the checkpoint as they were, so a pass can simply be retried.
//
// Overlapping SyncNow calls share passes: a caller returns with the result of
// the first pass that started after its call.
package syncer
