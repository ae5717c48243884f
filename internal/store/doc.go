// Package store provides the SQLite-backed order journal.
//
// The journal records each placed order so the confirmation view and the
// orders CLI command can look them up by order number within the session.
// The default database is in-memory (":memory:"), honoring the no
// cross-session persistence rule; pointing it at a file is an explicit
// caller choice.
//
// Schema: an orders row per placed order plus an order_items row per line
// item, linked by order_number with ON DELETE CASCADE. Writes are
// idempotent via ON CONFLICT DO NOTHING - recording the same order twice
// is a no-op.
//
// Database configuration:
//   - Single open connection (SQLite allows one writer at a time)
//   - WAL mode for concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
