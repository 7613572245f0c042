// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free of
// ORM concerns.
//
// Structure:
//   - base.go: shared id/timestamp columns
//   - configuration_template.go: saved cabinet configurations
//   - global_setting.go: raw pricing settings rows
package models
