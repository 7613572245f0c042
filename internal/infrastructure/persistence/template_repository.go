package persistence

import (
	"context"
	"errors"

	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/cabinetry/backend/internal/domain/shared"
	"github.com/cabinetry/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTemplateRepository implements configuration.TemplateRepository using GORM
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GormTemplateRepository
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

// WithTx returns a new repository instance with the given transaction
func (r *GormTemplateRepository) WithTx(tx *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: tx}
}

// Save creates a template or replaces its mutable columns when the id already exists.
// Saving a default template demotes the previous default of the same cabinet type and scope,
// so each scope keeps at most one default.
func (r *GormTemplateRepository) Save(ctx context.Context, tmpl *configuration.ConfigurationTemplate) error {
	model, err := models.ConfigurationTemplateModelFromDomain(tmpl)
	if err != nil {
		return shared.NewDomainError("INVALID_CONFIGURATION", err.Error())
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if model.IsDefault {
			if err := demoteDefaults(tx, model); err != nil {
				return err
			}
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "is_default", "configuration", "updated_at",
			}),
		}).Create(model).Error
	})
}

func demoteDefaults(tx *gorm.DB, model *models.ConfigurationTemplateModel) error {
	query := tx.Model(&models.ConfigurationTemplateModel{}).
		Where("cabinet_type_id = ? AND is_default = ? AND id <> ?", model.CabinetTypeID, true, model.ID)
	if model.UserID == nil {
		query = query.Where("user_id IS NULL")
	} else {
		query = query.Where("user_id = ?", *model.UserID)
	}
	return query.Update("is_default", false).Error
}

// FindByID finds a template by its ID
func (r *GormTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*configuration.ConfigurationTemplate, error) {
	var model models.ConfigurationTemplateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindForCabinetType lists the templates of a cabinet type visible to userID.
// With a user: their own plus global templates. Without: global or default templates.
func (r *GormTemplateRepository) FindForCabinetType(ctx context.Context, cabinetTypeID uuid.UUID, userID *uuid.UUID) ([]configuration.ConfigurationTemplate, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ConfigurationTemplateModel{}).
		Where("cabinet_type_id = ?", cabinetTypeID)

	if userID != nil {
		query = query.Where("(user_id = ? OR user_id IS NULL)", *userID)
	} else {
		query = query.Where("(user_id IS NULL OR is_default = ?)", true)
	}

	var rows []models.ConfigurationTemplateModel
	if err := query.Order("is_default DESC, name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	templates := make([]configuration.ConfigurationTemplate, len(rows))
	for i := range rows {
		templates[i] = *rows[i].ToDomain()
	}
	return templates, nil
}

// Delete removes a template the caller is allowed to delete
func (r *GormTemplateRepository) Delete(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ConfigurationTemplateModel
		if err := tx.First(&model, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if !model.ToDomain().DeletableBy(userID) {
			return shared.ErrForbidden
		}

		result := tx.Delete(&models.ConfigurationTemplateModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormTemplateRepository implements the interface
var _ configuration.TemplateRepository = (*GormTemplateRepository)(nil)
