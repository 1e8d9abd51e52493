// Package advisor turns a finished pipeline.Result into a short
// natural-language explanation of what the synthesis pipeline did and
// why, grounded on the original implementation's feedback_engine.py and
// adapted from the teacher's strategy.GeminiClient wrapper around
// google.golang.org/genai. It is an optional, explicitly feature-flagged
// collaborator: nothing in internal/pipeline imports this package, and a
// caller only reaches it after Generate/GenerateAndExport has already
// succeeded.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/raceeng/setupgen/internal/config"
	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/pipeline"
)

// Advisor wraps a Gemini client configured from config.AdvisorConfig,
// plus a small cache and rate limiter adapted from the teacher's
// strategy.StrategyCache/RateLimiter so repeated calls for an unchanged
// trace don't re-bill the API.
type Advisor struct {
	client  *genai.Client
	model   string
	cache   *explanationCache
	limiter *tokenBucket
}

// New builds an Advisor, or returns (nil, nil) when cfg.Enabled is
// false — the zero value a caller should treat as "no advisor
// available" rather than an error.
func New(ctx context.Context, cfg config.AdvisorConfig) (*Advisor, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("advisor: enabled but no API key configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("advisor: failed to create gemini client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	return &Advisor{
		client:  client,
		model:   modelName,
		cache:   newExplanationCache(10*time.Minute, 100),
		limiter: newTokenBucket(10),
	}, nil
}

// Explain asks Gemini for a short, driver-facing explanation of a
// generated setup's trace. Callers should treat a non-nil error as
// advisory only — the setup itself has already been produced and, per
// GenerateAndExport, possibly already written to disk.
func (a *Advisor) Explain(ctx context.Context, car model.CarDescriptor, track model.TrackDescriptor, result *pipeline.Result) (string, error) {
	if a == nil {
		return "", nil
	}

	prompt := buildPrompt(car, track, result)

	if cached, ok := a.cache.get(prompt); ok {
		return cached, nil
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("advisor: rate limit wait: %w", err)
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, []*genai.Content{
		{Parts: []*genai.Part{{Text: prompt}}},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("advisor: gemini request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("advisor: empty response from gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("advisor: no content in gemini response")
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("advisor: empty text in gemini response")
	}

	explanation := text.String()
	a.cache.put(prompt, explanation)
	return explanation, nil
}

// buildPrompt turns a Result's category/track-type/trace into a compact
// description Gemini can narrate, in the same spirit as the original
// feedback engine's plain-language lap/setup summaries.
func buildPrompt(car model.CarDescriptor, track model.TrackDescriptor, result *pipeline.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a race engineer explaining a generated car setup to a sim racer.\n")
	fmt.Fprintf(&b, "Car: %s (%s class), Track: %s (%s).\n", car.CarID, result.Category, track.FullID(), result.TrackType)
	fmt.Fprintf(&b, "The following adjustments were applied, in order:\n")
	for _, line := range result.Trace {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	fmt.Fprintf(&b, "\nWrite 3-4 short sentences explaining what changed and what the driver should feel on track. ")
	fmt.Fprintf(&b, "Plain language, no jargon dump, no bullet list in the reply.")
	return b.String()
}
