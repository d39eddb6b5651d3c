package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKernel(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "forcedeck.toml")

	cfg := `[salesforce]
instance_url = "https://acme.my.salesforce.com"
access_token = "00Dxx!token"

[logging]
level = "error"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	kernel, err := NewKernel(cfgPath, "test")
	require.NoError(t, err)
	require.NotNil(t, kernel)
	t.Cleanup(func() { require.NoError(t, kernel.Close()) })

	assert.NotNil(t, kernel.Deploy())
	assert.NotNil(t, kernel.Org())
	assert.Equal(t, "https://acme.my.salesforce.com", kernel.DefaultInstanceURL())
	assert.Equal(t, "00Dxx!token", kernel.DefaultAccessToken())
}

func TestNewKernel_BadConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "forcedeck.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[server\nport = "), 0o600))

	_, err := NewKernel(cfgPath, "test")

	assert.Error(t, err)
}
