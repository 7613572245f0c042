package persistence

import (
	"context"
	"time"

	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/cabinetry/backend/internal/domain/shared"
	"github.com/cabinetry/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository implements catalog.SettingRepository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// FindAll returns every settings row ordered by key
func (r *GormSettingRepository) FindAll(ctx context.Context) ([]catalog.SettingRow, error) {
	var rows []models.GlobalSettingModel
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]catalog.SettingRow, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// Upsert creates or replaces a settings row
func (r *GormSettingRepository) Upsert(ctx context.Context, row catalog.SettingRow) error {
	if row.Key == "" {
		return shared.NewDomainError("INVALID_INPUT", "Setting key cannot be empty")
	}
	model := models.GlobalSettingModelFromDomain(row)
	model.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(model).Error
}

var _ catalog.SettingRepository = (*GormSettingRepository)(nil)
