package model

import (
	"github.com/lexbridge/lexbridge/internal/config"
	adkmodel "google.golang.org/adk/model"
)

// LLMFactory creates an adkmodel.LLM from the translation settings.
type LLMFactory func(cfg config.TranslationConfig) adkmodel.LLM

var factories = map[string]LLMFactory{}

// RegisterProvider registers a factory for the given provider type string.
// Called from init() in each model implementation file.
func RegisterProvider(typeName string, factory LLMFactory) {
	factories[typeName] = factory
}

// BuildLLM looks up a registered factory for cfg.Provider and calls it.
// Returns (nil, false) if the provider is unknown.
func BuildLLM(cfg config.TranslationConfig) (adkmodel.LLM, bool) {
	factory, ok := factories[cfg.Provider]
	if !ok {
		return nil, false
	}
	return factory(cfg), true
}
