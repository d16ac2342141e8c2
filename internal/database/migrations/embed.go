// Package migrations embeds the DDL for provisioning a fresh record
// store outside of AutoMigrate.
package migrations

import "embed"

//go:embed schema.sql
var Files embed.FS
