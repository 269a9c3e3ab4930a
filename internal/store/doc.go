// Package store persists per-owner todo-list records in SQLite.
//
// One row in todo_lists plus one tasks row per task make up a record.
// Records are written whole: SaveList replaces the owner's record inside
// a single transaction, matching the core's all-or-nothing commit model.
// The store locates records by owner identity only; every correctness
// rule about the record's contents lives in the task package.
package store
