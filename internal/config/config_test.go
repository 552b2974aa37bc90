package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "APP_ENV", "LOG_OUTPUT", "POS_OPERATOR", "SALE_NUMBER_PREFIX", "SEED_DEMO_DATA"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, "console", cfg.POS.Operator)
	assert.Equal(t, "VD", cfg.POS.SaleNumberPrefix)
	assert.False(t, cfg.Seed.DemoData)
}

func TestLoad_FromEnvFile(t *testing.T) {
	for _, key := range []string{"POS_OPERATOR", "SALE_NUMBER_PREFIX", "SEED_DEMO_DATA", "APP_ENV"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "POS_OPERATOR=joana\nSALE_NUMBER_PREFIX=pdv\nSEED_DEMO_DATA=true\nAPP_ENV=production\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "joana", cfg.POS.Operator)
	assert.Equal(t, "PDV", cfg.POS.SaleNumberPrefix)
	assert.True(t, cfg.Seed.DemoData)
	assert.False(t, cfg.Log.Development)
}

func TestValidate(t *testing.T) {
	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())

	cfg := &Config{Log: LogConfig{Output: "stderr"}, POS: POSConfig{SaleNumberPrefix: " "}}
	assert.Error(t, cfg.Validate())

	cfg.POS.SaleNumberPrefix = "V-D"
	assert.Error(t, cfg.Validate())

	cfg.POS.SaleNumberPrefix = "VD"
	assert.NoError(t, cfg.Validate())
}
