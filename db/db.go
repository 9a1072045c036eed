// Package db carries the embedded SQL migrations.
package db

import "embed"

//go:embed migrations/*.sql
var MigrationsFS embed.FS
