package configuration

import (
	"context"
	"sort"
	"strings"

	"github.com/cabinetry/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const maxTemplateNameLength = 100

// ConfigurationTemplate is a named saved configuration bound to one cabinet type.
// Templates without a user are global and visible to everyone.
type ConfigurationTemplate struct {
	shared.BaseEntity
	CabinetTypeID uuid.UUID
	UserID        *uuid.UUID
	Name          string
	Description   string
	IsDefault     bool
	configuration *CabinetConfiguration
}

var _ shared.Entity = (*ConfigurationTemplate)(nil)

// NewTemplate snapshots cfg into a new template
func NewTemplate(userID *uuid.UUID, name, description string, isDefault bool, cfg *CabinetConfiguration) (*ConfigurationTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	if len(name) > maxTemplateNameLength {
		return nil, shared.NewDomainError("INVALID_NAME", "Template name cannot exceed 100 characters")
	}
	if cfg == nil {
		return nil, shared.NewDomainError("INVALID_CONFIGURATION", "Template configuration is required")
	}
	if cfg.CabinetTypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CABINET_TYPE", "Template configuration has no cabinet type")
	}
	return &ConfigurationTemplate{
		BaseEntity:    shared.NewBaseEntity(),
		CabinetTypeID: cfg.CabinetTypeID,
		UserID:        copyID(userID),
		Name:          name,
		Description:   strings.TrimSpace(description),
		IsDefault:     isDefault,
		configuration: cfg.Copy(),
	}, nil
}

// RestoreTemplate rebuilds a template from persisted state
func RestoreTemplate(base shared.BaseEntity, cabinetTypeID uuid.UUID, userID *uuid.UUID, name, description string, isDefault bool, cfg *CabinetConfiguration) *ConfigurationTemplate {
	return &ConfigurationTemplate{
		BaseEntity:    base,
		CabinetTypeID: cabinetTypeID,
		UserID:        copyID(userID),
		Name:          name,
		Description:   description,
		IsDefault:     isDefault,
		configuration: cfg.Copy(),
	}
}

// Configuration returns a copy of the snapshot
func (t *ConfigurationTemplate) Configuration() *CabinetConfiguration {
	return t.configuration.Copy()
}

// Instantiate returns a fresh configuration built from the snapshot
func (t *ConfigurationTemplate) Instantiate() *CabinetConfiguration {
	cfg := t.configuration.Copy()
	if cfg == nil {
		return nil
	}
	ts := now()
	cfg.CreatedAt = ts
	cfg.UpdatedAt = ts
	return cfg
}

// IsGlobal returns true if the template has no owning user
func (t *ConfigurationTemplate) IsGlobal() bool {
	return t.UserID == nil
}

// OwnedBy reports whether userID owns the template
func (t *ConfigurationTemplate) OwnedBy(userID *uuid.UUID) bool {
	return t.UserID != nil && userID != nil && *t.UserID == *userID
}

// DeletableBy reports whether userID may delete the template.
// Users delete their own templates; only an unscoped caller may delete global ones.
func (t *ConfigurationTemplate) DeletableBy(userID *uuid.UUID) bool {
	if userID == nil {
		return t.IsGlobal()
	}
	return t.OwnedBy(userID)
}

// VisibleTo reports whether the template is listed for the given user scope.
// A user sees their own and global templates; without a user only global or default templates show.
func (t *ConfigurationTemplate) VisibleTo(userID *uuid.UUID) bool {
	if userID == nil {
		return t.IsGlobal() || t.IsDefault
	}
	return t.IsGlobal() || t.OwnedBy(userID)
}

// SortTemplates orders templates default first, then by name
func SortTemplates(templates []ConfigurationTemplate) {
	sort.SliceStable(templates, func(i, j int) bool {
		if templates[i].IsDefault != templates[j].IsDefault {
			return templates[i].IsDefault
		}
		return templates[i].Name < templates[j].Name
	})
}

// TemplateRepository persists configuration templates
type TemplateRepository interface {
	// Save creates or updates a template
	Save(ctx context.Context, template *ConfigurationTemplate) error
	// FindByID returns shared.ErrNotFound when the template does not exist
	FindByID(ctx context.Context, id uuid.UUID) (*ConfigurationTemplate, error)
	// FindForCabinetType lists templates of a cabinet type visible to userID, default first then by name
	FindForCabinetType(ctx context.Context, cabinetTypeID uuid.UUID, userID *uuid.UUID) ([]ConfigurationTemplate, error)
	// Delete removes a template; a user may only delete their own templates
	Delete(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error
}
