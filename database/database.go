// Package database ships the versioned schema for every supported dialect.
// Files follow the golang-migrate naming scheme: {version}_{title}.{up|down}.sql
package database

import "embed"

//go:embed migrations
var Migrations embed.FS

// MigrationsDir returns the directory inside Migrations holding the scripts
// for the given driver.
func MigrationsDir(driver string) string {
	return "migrations/" + driver
}
