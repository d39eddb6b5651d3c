package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "forcedeck.toml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o600))

	_, cfg, err := initConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "58.0", cfg.Salesforce.APIVersion)
	assert.Equal(t, 30*time.Second, cfg.Salesforce.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Deploy.PollInterval)
	assert.Equal(t, 15, cfg.Deploy.PollMaxAttempts)
	assert.False(t, cfg.Deploy.CleanupContainer)
	assert.True(t, cfg.API.RateLimit.Enabled)
	assert.Equal(t, "memory", cfg.API.RateLimit.Backend)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestInitConfig_File(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "forcedeck.toml")
	content := `[server]
port = 9000
cors_origins = ["https://dash.example.com"]

[salesforce]
api_version = "v60.0"
request_timeout = "5s"

[deploy]
poll_interval = "500ms"
poll_max_attempts = 40
cleanup_container = true
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	_, cfg, err := initConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []string{"https://dash.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "v60.0", cfg.Salesforce.APIVersion)
	assert.Equal(t, 5*time.Second, cfg.Salesforce.RequestTimeout)

	deployCfg := cfg.DeployConfig()
	assert.Equal(t, 500*time.Millisecond, deployCfg.PollInterval)
	assert.Equal(t, 40, deployCfg.PollMaxAttempts)
	assert.True(t, deployCfg.CleanupContainer)
}

func TestInitConfig_EnvOverridesFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "forcedeck.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[deploy]\npoll_max_attempts = 40\n"), 0o600))

	t.Setenv("FORCEDECK_DEPLOY_POLL_MAX_ATTEMPTS", "3")
	t.Setenv("FORCEDECK_API_RATE_LIMIT_ENABLED", "false")

	_, cfg, err := initConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Deploy.PollMaxAttempts)
	assert.False(t, cfg.API.RateLimit.Enabled)
}

func TestInitConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "forcedeck.toml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("FORCEDECK_SALESFORCE_INSTANCE_URL=https://dotenv.my.salesforce.com\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("FORCEDECK_SALESFORCE_INSTANCE_URL") })

	_, cfg, err := initConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "https://dotenv.my.salesforce.com", cfg.Salesforce.InstanceURL)
}

func TestInitConfig_MissingExplicitFile(t *testing.T) {
	_, _, err := initConfig(filepath.Join(t.TempDir(), "absent.toml"))

	assert.Error(t, err)
}
