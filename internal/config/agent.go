package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentName         = "BREWLINE_AGENT_NAME"
	EnvAgentProviderName = "BREWLINE_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "BREWLINE_AGENT_BASE_URL"
	EnvAgentToken        = "BREWLINE_AGENT_TOKEN"
	EnvAgentDeployment   = "BREWLINE_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "BREWLINE_AGENT_API_VERSION"
	EnvAgentAuthType     = "BREWLINE_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "BREWLINE_AGENT_MODEL_NAME"
)

// AgentConfig mirrors the go-agents agent configuration with TOML tags so the
// agent section participates in the same config file as everything else.
// Agent() assembles the go-agents structure after finalization.
type AgentConfig struct {
	Name     string         `toml:"name"`
	Provider ProviderConfig `toml:"provider"`
	Model    ModelConfig    `toml:"model"`
}

// ProviderConfig holds model provider connection settings. Options carries
// provider-specific values such as token, deployment, api_version, and
// auth_type for hosted providers.
type ProviderConfig struct {
	Name    string         `toml:"name"`
	BaseURL string         `toml:"base_url"`
	Options map[string]any `toml:"options"`
}

// ModelConfig identifies the model served by the provider.
type ModelConfig struct {
	Name string `toml:"name"`
}

// Agent assembles the go-agents configuration from this section.
func (c *AgentConfig) Agent() gaconfig.AgentConfig {
	return gaconfig.AgentConfig{
		Name: c.Name,
		Provider: &gaconfig.ProviderConfig{
			Name:    c.Provider.Name,
			BaseURL: c.Provider.BaseURL,
			Options: c.Provider.Options,
		},
		Model: &gaconfig.ModelConfig{
			Name: c.Model.Name,
		},
	}
}

// Merge overwrites non-zero fields from overlay.
func (c *AgentConfig) Merge(overlay *AgentConfig) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.Provider.Name != "" {
		c.Provider.Name = overlay.Provider.Name
	}
	if overlay.Provider.BaseURL != "" {
		c.Provider.BaseURL = overlay.Provider.BaseURL
	}
	for k, v := range overlay.Provider.Options {
		if c.Provider.Options == nil {
			c.Provider.Options = make(map[string]any)
		}
		c.Provider.Options[k] = v
	}
	if overlay.Model.Name != "" {
		c.Model.Name = overlay.Model.Name
	}
}

// FinalizeAgent applies the three-phase finalize pattern to the agent config:
// defaults from go-agents DefaultAgentConfig, environment variable overrides,
// and validation.
func FinalizeAgent(c *AgentConfig) error {
	loadAgentDefaults(c)
	loadAgentEnv(c)
	return validateAgent(c)
}

func loadAgentDefaults(c *AgentConfig) {
	defaults := gaconfig.DefaultAgentConfig()

	if c.Name == "" {
		c.Name = defaults.Name
	}
	if defaults.Provider != nil {
		if c.Provider.Name == "" {
			c.Provider.Name = defaults.Provider.Name
		}
		if c.Provider.BaseURL == "" {
			c.Provider.BaseURL = defaults.Provider.BaseURL
		}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model.Name == "" && defaults.Model != nil {
		c.Model.Name = defaults.Model.Name
	}
}

func loadAgentEnv(c *AgentConfig) {
	if v := os.Getenv(EnvAgentName); v != "" {
		c.Name = v
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			c.Provider.Options[key] = v
		}
	}

	setOption(EnvAgentToken, "token")
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")
}

func validateAgent(c *AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model.Name == "" {
		return fmt.Errorf("model name required")
	}
	return nil
}
