package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Remote)
	assert.Equal(t, "http://localhost:8080", cfg.Remote.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Remote.Timeout)
	require.NotNil(t, cfg.Lifecycle)
	assert.Equal(t, 5*time.Second, cfg.Lifecycle.StepDelay)
	assert.Equal(t, 2*time.Second, cfg.Lifecycle.ResumeDelay)
	require.NotNil(t, cfg.Catalog)
	assert.False(t, cfg.Catalog.RemotePaymentMethods)
	require.NotNil(t, cfg.Notice)
	assert.Equal(t, defaultNoticeCapacity, cfg.Notice.Capacity)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Nil(t, cfg.PubSub)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Remote:    &RemoteConfig{BaseURL: "http://coffee.local:9000/", Timeout: time.Second, RateLimit: 5},
		Lifecycle: &LifecycleConfig{StepDelay: time.Second, ResumeDelay: 500 * time.Millisecond},
	}

	applyDefaults(cfg)

	assert.Equal(t, "http://coffee.local:9000", cfg.Remote.BaseURL)
	assert.Equal(t, time.Second, cfg.Remote.Timeout)
	assert.Equal(t, 1, cfg.Remote.Burst)
	assert.Equal(t, time.Second, cfg.Lifecycle.StepDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Lifecycle.ResumeDelay)
}

func TestLoadWithEnv_OverridesYAMLFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := "remote:\n  baseUrl: http://from-file:8080\n  timeout: 3s\nlifecycle:\n  stepDelay: 5s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brewtest.yaml"), []byte(yaml), 0o600))

	t.Chdir(dir)
	t.Setenv("REMOTE_BASEURL", "http://from-env:8080")
	t.Setenv("LIFECYCLE_STEPDELAY", "250ms")

	cfg, err := LoadWithEnv[Config]("brewtest")
	require.NoError(t, err)

	require.NotNil(t, cfg.Remote)
	assert.Equal(t, "http://from-env:8080", cfg.Remote.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Remote.Timeout)
	require.NotNil(t, cfg.Lifecycle)
	assert.Equal(t, 250*time.Millisecond, cfg.Lifecycle.StepDelay)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
