package whisper

import (
	"fmt"
	"strings"
)

// Config captures runtime settings for Whisper operations.
type Config struct {
	// Binary is the whisper executable name or path.
	Binary string
}

// Whisper configuration constants.
const (
	DefaultBinary = "whisper"
	OutputFormat  = "json"
	OutputExt     = ".json"
)

// Model is a Whisper model size selector.
type Model string

// Supported model sizes.
const (
	ModelTiny   Model = "tiny"
	ModelBase   Model = "base"
	ModelSmall  Model = "small"
	ModelMedium Model = "medium"
	ModelLarge  Model = "large"
)

// DefaultModel is used when no model is configured.
const DefaultModel = ModelMedium

// ModelInfo describes one model size for listings.
type ModelInfo struct {
	Model      Model  `json:"model"`
	Parameters string `json:"parameters"`
	VRAM       string `json:"vram"`
}

var modelCatalog = []ModelInfo{
	{Model: ModelTiny, Parameters: "39M", VRAM: "~1 GB"},
	{Model: ModelBase, Parameters: "74M", VRAM: "~1 GB"},
	{Model: ModelSmall, Parameters: "244M", VRAM: "~2 GB"},
	{Model: ModelMedium, Parameters: "769M", VRAM: "~5 GB"},
	{Model: ModelLarge, Parameters: "1550M", VRAM: "~10 GB"},
}

// Models returns the supported model sizes, smallest first.
func Models() []ModelInfo {
	return append([]ModelInfo(nil), modelCatalog...)
}

// ModelNames returns the supported model names, smallest first.
func ModelNames() []string {
	names := make([]string, 0, len(modelCatalog))
	for _, info := range modelCatalog {
		names = append(names, string(info.Model))
	}
	return names
}

// ParseModel validates a model size name.
func ParseModel(value string) (Model, error) {
	candidate := Model(strings.ToLower(strings.TrimSpace(value)))
	for _, info := range modelCatalog {
		if info.Model == candidate {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("unsupported whisper model %q (expected one of %s)", value, strings.Join(ModelNames(), ", "))
}

func (m Model) String() string { return string(m) }
