package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/cabinetry/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	// DefaultTemplateTTL applies when a caller passes a zero ttl
	DefaultTemplateTTL = 5 * time.Minute
	// DefaultKeyPrefix namespaces template listings in a shared store
	DefaultKeyPrefix = "cab:templates:"

	globalScope = "global"
)

// scopeKey identifies one listing: cabinet type plus user scope
func scopeKey(cabinetTypeID uuid.UUID, userID *uuid.UUID) string {
	scope := globalScope
	if userID != nil {
		scope = userID.String()
	}
	return cabinetTypeID.String() + ":" + scope
}

// cachedTemplate is the wire shape of a template; the domain type keeps its snapshot private
type cachedTemplate struct {
	ID            uuid.UUID                           `json:"id"`
	CreatedAt     time.Time                           `json:"created_at"`
	UpdatedAt     time.Time                           `json:"updated_at"`
	CabinetTypeID uuid.UUID                           `json:"cabinet_type_id"`
	UserID        *uuid.UUID                          `json:"user_id,omitempty"`
	Name          string                              `json:"name"`
	Description   string                              `json:"description"`
	IsDefault     bool                                `json:"is_default"`
	Configuration *configuration.CabinetConfiguration `json:"configuration"`
}

func encodeTemplates(templates []configuration.ConfigurationTemplate) ([]byte, error) {
	out := make([]cachedTemplate, len(templates))
	for i := range templates {
		t := &templates[i]
		out[i] = cachedTemplate{
			ID:            t.ID,
			CreatedAt:     t.CreatedAt,
			UpdatedAt:     t.UpdatedAt,
			CabinetTypeID: t.CabinetTypeID,
			UserID:        t.UserID,
			Name:          t.Name,
			Description:   t.Description,
			IsDefault:     t.IsDefault,
			Configuration: t.Configuration(),
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode templates: %w", err)
	}
	return data, nil
}

func decodeTemplates(data []byte) ([]configuration.ConfigurationTemplate, error) {
	var in []cachedTemplate
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to decode templates: %w", err)
	}
	out := make([]configuration.ConfigurationTemplate, len(in))
	for i, c := range in {
		out[i] = *configuration.RestoreTemplate(
			shared.BaseEntity{ID: c.ID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt},
			c.CabinetTypeID, c.UserID, c.Name, c.Description, c.IsDefault, c.Configuration,
		)
	}
	return out, nil
}

// copyTemplates returns a slice the caller may reorder or modify without touching the cache
func copyTemplates(templates []configuration.ConfigurationTemplate) []configuration.ConfigurationTemplate {
	out := make([]configuration.ConfigurationTemplate, len(templates))
	copy(out, templates)
	return out
}
