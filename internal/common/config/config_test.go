package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "linkedin-lead-lab-report", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15000, cfg.Server.ReadTimeout)
	assert.Equal(t, 10000, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 1800, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 30*time.Second, cfg.LLM.GetTimeout())

	assert.Equal(t, "LinkedIn Audit <hello@beigestudio.co>", cfg.Email.FromEmail)
	assert.Equal(t, "us-east-1", cfg.Email.AWSRegion)
	assert.Equal(t, 15*time.Second, cfg.Email.GetTimeout())

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9090
	cfg.LLM.Model = "gpt-4o"
	cfg.LLM.Timeout = 5000

	applyDefaults(cfg)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.GetTimeout())
}

func TestOverrideEmptyConfig(t *testing.T) {
	t.Run("prefers LLM_API_KEY", func(t *testing.T) {
		t.Setenv("LLM_API_KEY", "from-llm-var")
		t.Setenv("OPENAI_API_KEY", "from-openai-var")

		cfg := &Config{}
		overrideEmptyConfig(cfg)
		assert.Equal(t, "from-llm-var", cfg.LLM.APIKey)
	})

	t.Run("falls back to OPENAI_API_KEY", func(t *testing.T) {
		t.Setenv("LLM_API_KEY", "")
		t.Setenv("OPENAI_API_KEY", "from-openai-var")

		cfg := &Config{}
		overrideEmptyConfig(cfg)
		assert.Equal(t, "from-openai-var", cfg.LLM.APIKey)
	})

	t.Run("keeps a configured key", func(t *testing.T) {
		t.Setenv("LLM_API_KEY", "from-env")

		cfg := &Config{}
		cfg.LLM.APIKey = "from-config"
		overrideEmptyConfig(cfg)
		assert.Equal(t, "from-config", cfg.LLM.APIKey)
	})
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("defaults pass", func(t *testing.T) {
		require.NoError(t, validateConfig(valid()))
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 70000
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("temperature out of range", func(t *testing.T) {
		cfg := valid()
		cfg.LLM.Temperature = 2.5
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("enabled email requires a sender", func(t *testing.T) {
		cfg := valid()
		cfg.Email.Enabled = true
		cfg.Email.FromEmail = ""
		assert.Error(t, validateConfig(cfg))
	})
}
