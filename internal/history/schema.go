// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists conversion records for radix.
package history

const (
	// SchemaVersion tracks the database schema version for migrations.
	SchemaVersion = 1
)

// SQLite schema for the conversion history.
const schema = `
-- Metadata table for schema version
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
) WITHOUT ROWID;

-- Entries table: one row per successful conversion
CREATE TABLE IF NOT EXISTS entries (
    id TEXT PRIMARY KEY,           -- uuid
    created_at INTEGER NOT NULL,   -- Unix timestamp (seconds)
    kind TEXT NOT NULL,            -- conversion type, e.g. "decimal -> hexadecimal"
    input TEXT NOT NULL,
    output TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);
CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind);

INSERT OR IGNORE INTO metadata (key, value) VALUES ('schema_version', '1');
`
