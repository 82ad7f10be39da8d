package llm

import (
	"fmt"
	"strings"

	"github.com/pkorolev/leadflow/internal/model"
)

// NewProvider creates a provider from configuration. An empty provider
// name returns (nil, nil): report generation stays remote.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
	}
}
