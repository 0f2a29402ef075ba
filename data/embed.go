package data

import (
	_ "embed"
)

//go:embed migrations/001-drop-all-tables.sql
var MigrationDropAllTables string
