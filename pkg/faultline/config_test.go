package faultline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strongdm/faultline/pkg/faultline/errortypes"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faultline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"password"}, cfg.Filters)
	assert.Equal(t, "production", cfg.ReleaseStage)
	assert.Nil(t, cfg.ErrorReportingLevel)
	assert.NotNil(t, cfg.logger())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
filters: [secret, token]
errorReportingLevel: 3
projectRoot: /srv/app
releaseStage: staging
notifyReleaseStages: [staging, production]
appVersion: 2.0.1
context: worker
user:
  id: svc-1
metaData:
  team:
    name: core
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"secret", "token"}, cfg.Filters)
	require.NotNil(t, cfg.ErrorReportingLevel)
	assert.Equal(t, errortypes.Fatal|errortypes.Warning, *cfg.ErrorReportingLevel)
	assert.Equal(t, "/srv/app", cfg.ProjectRoot)
	assert.Equal(t, "staging", cfg.ReleaseStage)
	assert.Equal(t, "2.0.1", cfg.AppVersion)
	assert.Equal(t, "worker", cfg.Context)
	assert.Equal(t, map[string]any{"id": "svc-1"}, cfg.User)
	assert.Equal(t, map[string]any{"team": map[string]any{"name": "core"}}, cfg.MetaData)
	assert.True(t, cfg.shouldNotify())
}

func TestLoadConfig_KeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "appVersion: 1.0.0\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"password"}, cfg.Filters)
	assert.Equal(t, "production", cfg.ReleaseStage)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FAULTLINE_RELEASE_STAGE", "development")
	t.Setenv("FAULTLINE_APP_VERSION", "9.9.9")
	t.Setenv("FAULTLINE_HOSTNAME", "box-1")
	t.Setenv("FAULTLINE_FILTERS", "pass, card ,")

	cfg, err := LoadConfig(writeConfig(t, "releaseStage: staging\n"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.ReleaseStage)
	assert.Equal(t, "9.9.9", cfg.AppVersion)
	assert.Equal(t, "box-1", cfg.Hostname)
	assert.Equal(t, []string{"pass", "card"}, cfg.Filters)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "filters: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfig_ShouldNotify(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.shouldNotify(), "empty list notifies every stage")

	cfg.NotifyReleaseStages = []string{"production"}
	assert.True(t, cfg.shouldNotify())

	cfg.ReleaseStage = "development"
	assert.False(t, cfg.shouldNotify())
}
