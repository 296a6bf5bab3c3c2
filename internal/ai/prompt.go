package ai

import (
	"os"

	"gopkg.in/yaml.v3"
)

// defaultSystemPrompt keeps answers short enough to be read aloud.
const defaultSystemPrompt = `You are a helpful AI assistant integrated with Alexa.

Important guidelines:
- Keep responses concise and conversational (2-3 sentences max)
- Speak naturally as if talking to someone
- Avoid long lists or complex formatting
- Be helpful and friendly
- If you need to provide multiple items, speak them naturally
- Don't use phrases like "Here's what I found" - just give the information

The user is speaking to you through Alexa, so respond as if you're having a conversation.`

// PromptSpec holds the system prompt and generation knobs for the
// completion request. Zero fields fall back to the defaults.
type PromptSpec struct {
	System string `yaml:"system"`
	Model  string `yaml:"model"`
	Style  struct {
		Temperature float32 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
	} `yaml:"style"`
}

func DefaultPromptSpec() PromptSpec {
	var spec PromptSpec
	spec.System = defaultSystemPrompt
	spec.Model = "gpt-4o-mini"
	spec.Style.Temperature = 0.7
	spec.Style.MaxTokens = 150
	return spec
}

// LoadPromptSpec reads a YAML prompt spec and fills missing fields with the
// defaults. An empty path yields the defaults unchanged.
func LoadPromptSpec(path string) (PromptSpec, error) {
	spec := DefaultPromptSpec()
	if path == "" {
		return spec, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return spec, err
	}

	var loaded PromptSpec
	if err := yaml.Unmarshal(b, &loaded); err != nil {
		return spec, err
	}

	if loaded.System != "" {
		spec.System = loaded.System
	}
	if loaded.Model != "" {
		spec.Model = loaded.Model
	}
	if loaded.Style.Temperature > 0 {
		spec.Style.Temperature = loaded.Style.Temperature
	}
	if loaded.Style.MaxTokens > 0 {
		spec.Style.MaxTokens = loaded.Style.MaxTokens
	}

	return spec, nil
}
