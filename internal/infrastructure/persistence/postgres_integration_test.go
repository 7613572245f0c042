//go:build integration

package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cabinetry/backend/internal/domain/shared"
	"github.com/cabinetry/backend/internal/infrastructure/migration"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newPostgresDB starts a throwaway postgres container and applies the SQL migrations
func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("cabinetry_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: Failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	migrationsPath, err := filepath.Abs(filepath.Join("..", "..", "..", "migrations"))
	require.NoError(t, err)
	m, err := migration.New(sqlDB, migrationsPath, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Up())

	return db
}

func TestPostgres_TemplateRepository(t *testing.T) {
	db := newPostgresDB(t)
	repo := NewGormTemplateRepository(db)
	ctx := t.Context()

	typeID, owner := uuid.New(), uuid.New()
	global := newTemplate(t, typeID, nil, "Global", false)
	mine := newTemplate(t, typeID, &owner, "Mine", true)
	require.NoError(t, repo.Save(ctx, global))
	require.NoError(t, repo.Save(ctx, mine))

	got, err := repo.FindForCabinetType(ctx, typeID, &owner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mine", got[0].Name)
	assert.Equal(t, "Global", got[1].Name)

	found, err := repo.FindByID(ctx, mine.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Configuration())
	assert.Equal(t, typeID, found.Configuration().CabinetTypeID)

	assert.ErrorIs(t, repo.Delete(ctx, mine.ID, nil), shared.ErrForbidden)
	require.NoError(t, repo.Delete(ctx, mine.ID, &owner))
}

func TestPostgres_TemplateRepository_SingleGlobalDefault(t *testing.T) {
	db := newPostgresDB(t)
	repo := NewGormTemplateRepository(db)
	ctx := t.Context()

	typeID := uuid.New()
	first := newTemplate(t, typeID, nil, "First", true)
	second := newTemplate(t, typeID, nil, "Second", true)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	var defaults int64
	require.NoError(t, db.Table("configuration_templates").
		Where("cabinet_type_id = ? AND is_default AND user_id IS NULL", typeID).
		Count(&defaults).Error)
	assert.Equal(t, int64(1), defaults)

	err := db.Exec(
		`UPDATE configuration_templates SET is_default = TRUE WHERE id = ?`, first.ID,
	).Error
	assert.Error(t, err, "unique index allows a single global default")
}

func TestPostgres_SettingRepository_Seeded(t *testing.T) {
	db := newPostgresDB(t)
	repo := NewGormSettingRepository(db)

	rows, err := repo.FindAll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"gst_rate", "material_rate"}, []string{rows[0].Key, rows[1].Key})

	require.NoError(t, repo.Upsert(t.Context(), settingRow("gst_rate", "15%")))
	rows, err = repo.FindAll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "15%", rows[0].Value)
}
