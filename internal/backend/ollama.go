package backend

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ollama/ollama/api"
)

const (
	// DefaultModel is the vision-language model used when none is configured.
	DefaultModel = "moondream"

	tagPrompt = "List 5-10 descriptive tags for this image. Output only the tags " +
		"separated by commas, nothing else. Example: nature, sunset, mountain, " +
		"peaceful, orange sky"

	describePrompt = "Describe this image in one or two plain sentences. " +
		"Output only the description, nothing else."

	// maxTagLen drops runaway model output that clearly isn't a tag.
	maxTagLen = 50
)

// OllamaTagger generates tags and descriptions with a local Ollama server.
type OllamaTagger struct {
	client *api.Client
	model  string
}

// NewOllamaTagger builds a tagger from the environment (OLLAMA_HOST). An
// empty model selects DefaultModel.
func NewOllamaTagger(model string) (*OllamaTagger, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("failed to configure ollama client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &OllamaTagger{client: client, model: model}, nil
}

// Check probes the Ollama server. Used at startup and by the CLI so a
// missing server surfaces as a clear diagnostic instead of a failed first
// tagging request.
func (t *OllamaTagger) Check(ctx context.Context) error {
	if err := t.client.Heartbeat(ctx); err != nil {
		return fmt.Errorf("ollama is not reachable (is it running?): %w", err)
	}
	return nil
}

func (t *OllamaTagger) generate(ctx context.Context, imagePath, prompt string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	stream := false
	req := &api.GenerateRequest{
		Model:  t.model,
		Prompt: prompt,
		Images: []api.ImageData{data},
		Stream: &stream,
	}

	var sb strings.Builder
	err = t.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate failed: %w", err)
	}
	return sb.String(), nil
}

// GenerateTags asks the model for comma-separated tags for the image.
func (t *OllamaTagger) GenerateTags(ctx context.Context, imagePath string) ([]string, error) {
	raw, err := t.generate(ctx, imagePath, tagPrompt)
	if err != nil {
		return nil, err
	}
	return ParseTags(raw), nil
}

// Describe asks the model for a short description of the image.
func (t *OllamaTagger) Describe(ctx context.Context, imagePath string) (string, error) {
	raw, err := t.generate(ctx, imagePath, describePrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// ParseTags turns a raw model response into a clean tag list: split on
// commas, trimmed, lowercased, with empty and overly long entries dropped.
func ParseTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" || len(tag) >= maxTagLen {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
