// Package scrumsan exposes embedded assets shared across commands.
package scrumsan

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
