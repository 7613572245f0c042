package handler

import (
	"net/http"
	"testing"

	"github.com/cabinetry/backend/internal/application/configurator/dto"
	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateEnv(t *testing.T) *testEnv {
	env := newTestEnv(t)
	h := NewTemplateHandler(env.service)
	env.router.GET("/templates", h.List)
	env.router.POST("/templates", h.Save)
	env.router.DELETE("/templates/:id", h.Delete)
	return env
}

func templateConfiguration(cabinetTypeID uuid.UUID) *configuration.CabinetConfiguration {
	return &configuration.CabinetConfiguration{
		CabinetTypeID: cabinetTypeID,
		Quantity:      1,
		Source:        configuration.SourceUnified,
	}
}

func saveTemplate(t *testing.T, env *testEnv, name string, isDefault bool, cabinetTypeID uuid.UUID, userID string) dto.TemplateResponse {
	t.Helper()
	var headers []string
	if userID != "" {
		headers = []string{"X-User-ID", userID}
	}
	w := env.do(http.MethodPost, "/templates", map[string]any{
		"name":          name,
		"is_default":    isDefault,
		"configuration": templateConfiguration(cabinetTypeID),
	}, headers...)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.TemplateResponse
	decode(t, w, &resp)
	return resp
}

func listTemplates(t *testing.T, env *testEnv, cabinetTypeID uuid.UUID, userID string) []dto.TemplateResponse {
	t.Helper()
	var headers []string
	if userID != "" {
		headers = []string{"X-User-ID", userID}
	}
	w := env.do(http.MethodGet, "/templates?cabinet_type_id="+cabinetTypeID.String(), nil, headers...)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp []dto.TemplateResponse
	decode(t, w, &resp)
	return resp
}

func names(templates []dto.TemplateResponse) []string {
	out := make([]string, len(templates))
	for i, tmpl := range templates {
		out[i] = tmpl.Name
	}
	return out
}

func TestTemplateHandler_SaveAndList(t *testing.T) {
	env := newTemplateEnv(t)
	cabinetTypeID := uuid.New()
	owner := uuid.NewString()
	other := uuid.NewString()

	saveTemplate(t, env, "Zebra", false, cabinetTypeID, "")
	saveTemplate(t, env, "Standard", true, cabinetTypeID, "")
	mine := saveTemplate(t, env, "Alpha", false, cabinetTypeID, owner)
	require.NotNil(t, mine.UserID)
	assert.Equal(t, owner, mine.UserID.String())

	assert.Equal(t, []string{"Standard", "Alpha", "Zebra"}, names(listTemplates(t, env, cabinetTypeID, owner)))
	assert.Equal(t, []string{"Standard", "Zebra"}, names(listTemplates(t, env, cabinetTypeID, other)))
	assert.Equal(t, []string{"Standard", "Zebra"}, names(listTemplates(t, env, cabinetTypeID, "")))

	t.Run("cached listing sees new templates", func(t *testing.T) {
		saveTemplate(t, env, "Beta", false, cabinetTypeID, owner)
		assert.Equal(t, []string{"Standard", "Alpha", "Beta", "Zebra"}, names(listTemplates(t, env, cabinetTypeID, owner)))
	})

	t.Run("other cabinet types are not listed", func(t *testing.T) {
		assert.Empty(t, listTemplates(t, env, uuid.New(), owner))
	})
}

func TestTemplateHandler_Validation(t *testing.T) {
	env := newTemplateEnv(t)

	t.Run("cabinet type id must be a uuid", func(t *testing.T) {
		w := env.do(http.MethodGet, "/templates?cabinet_type_id=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid user header", func(t *testing.T) {
		w := env.do(http.MethodGet, "/templates?cabinet_type_id="+uuid.NewString(), nil, "X-User-ID", "nobody")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		out := decode(t, w, nil)
		require.NotNil(t, out.Error)
		assert.Equal(t, "ERR_INVALID_INPUT", out.Error.Code)
	})

	t.Run("blank name", func(t *testing.T) {
		w := env.do(http.MethodPost, "/templates", map[string]any{
			"name":          "   ",
			"configuration": templateConfiguration(uuid.New()),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		out := decode(t, w, nil)
		require.NotNil(t, out.Error)
		assert.Equal(t, "ERR_INVALID_TEMPLATE", out.Error.Code)
	})

	t.Run("configuration without cabinet type", func(t *testing.T) {
		w := env.do(http.MethodPost, "/templates", map[string]any{
			"name":          "Empty",
			"configuration": templateConfiguration(uuid.Nil),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTemplateHandler_Delete(t *testing.T) {
	env := newTemplateEnv(t)
	cabinetTypeID := uuid.New()
	owner := uuid.NewString()
	global := saveTemplate(t, env, "Global", false, cabinetTypeID, "")
	mine := saveTemplate(t, env, "Mine", false, cabinetTypeID, owner)

	t.Run("other users are forbidden", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/templates/"+mine.ID.String(), nil, "X-User-ID", uuid.NewString())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("users cannot delete global templates", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/templates/"+global.ID.String(), nil, "X-User-ID", owner)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner deletes", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/templates/"+mine.ID.String(), nil, "X-User-ID", owner)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, []string{"Global"}, names(listTemplates(t, env, cabinetTypeID, owner)))
	})

	t.Run("missing template", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/templates/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("id must be a uuid", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/templates/123", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
