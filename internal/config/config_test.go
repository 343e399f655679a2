package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 10, cfg.DBPoolSize)
	assert.Equal(t, 5*time.Second, cfg.DBAcquireTimeout)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, SkillMatchSingleRecord, cfg.SkillMatchMode)
	assert.Equal(t, DeletePolicyReject, cfg.DeveloperDeletePolicy)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_POOL_SIZE", "3")
	t.Setenv("DB_ACQUIRE_TIMEOUT", "250ms")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")
	t.Setenv("SKILL_MATCH_MODE", "Per-Token")
	t.Setenv("DEVELOPER_DELETE_POLICY", "cascade")
	t.Setenv("SEED_CODES", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://admin.example.com ,")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 3, cfg.DBPoolSize)
	assert.Equal(t, 250*time.Millisecond, cfg.DBAcquireTimeout)
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, SkillMatchPerToken, cfg.SkillMatchMode)
	assert.Equal(t, DeletePolicyCascade, cfg.DeveloperDeletePolicy)
	assert.False(t, cfg.SeedCodes)
	assert.Equal(t, []string{"http://localhost:3000", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_POOL_SIZE", "-4")
	t.Setenv("DB_ACQUIRE_TIMEOUT", "soon")
	t.Setenv("SKILL_MATCH_MODE", "fuzzy")

	cfg := Load()

	assert.Equal(t, 10, cfg.DBPoolSize)
	assert.Equal(t, 5*time.Second, cfg.DBAcquireTimeout)
	assert.Equal(t, SkillMatchSingleRecord, cfg.SkillMatchMode)
}
