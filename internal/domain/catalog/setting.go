package catalog

import "context"

// SettingRow is one raw key/value row of the global settings table
type SettingRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SettingRepository reads and writes the global settings table
type SettingRepository interface {
	// FindAll returns every raw setting row ordered by key
	FindAll(ctx context.Context) ([]SettingRow, error)
	// Upsert creates or replaces the value stored under key
	Upsert(ctx context.Context, row SettingRow) error
}
