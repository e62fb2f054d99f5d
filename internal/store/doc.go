// Package store persists cleaned tables into a local SQLite database file.
//
// SQLiteWriter uses the pure-Go modernc.org/sqlite driver through
// database/sql. The whole write (DDL and inserts) runs in a single
// transaction: either the destination table holds the complete result or the
// database file is left as it was.
//
// What happens when the destination table already exists is governed by an
// explicit dretl.WritePolicy:
//
//   - create: fail with dretl.ErrTableExists
//   - replace: drop and recreate after approval from a dretl.Approver
//   - append: insert into the existing table if its columns match
package store
