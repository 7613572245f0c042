package configuration

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TemplateCache caches template listings per cabinet type and user scope.
// A miss is reported with ok == false, not an error.
type TemplateCache interface {
	Get(ctx context.Context, cabinetTypeID uuid.UUID, userID *uuid.UUID) (templates []ConfigurationTemplate, ok bool, err error)
	Set(ctx context.Context, cabinetTypeID uuid.UUID, userID *uuid.UUID, templates []ConfigurationTemplate, ttl time.Duration) error
	// InvalidateCabinetType drops every cached listing for the cabinet type, all user scopes included
	InvalidateCabinetType(ctx context.Context, cabinetTypeID uuid.UUID) error
	Close() error
}
