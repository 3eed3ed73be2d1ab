package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/schedule"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const DefaultSystemPrompt = `You are a non-medical daily-schedule review assistant.

You receive a generated daily schedule: a list of typed time blocks (sleep, tasks, fixed events,
meals, routines, activity, breaks) plus the metrics computed from it. You must base your
conclusions only on the provided data.

Your goals:
- Describe the shape of the day in clear, neutral language.
- Point out anything that looks off: tight back-to-back blocks, low break coverage, tasks placed
  during low-energy hours, an unbalanced work/personal split.
- Give practical, non-binding suggestions for reordering or re-timing blocks. These are
  suggestions only — the schedule that was generated already stands on its own.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT invent blocks, times, or tasks that are not in the input.
- Focus only on the placement and pacing of the given blocks.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "1-2 sentences summarizing the shape of the day.",
  "observations": [
    "2-5 bullet points about pacing, energy alignment, or balance."
  ],
  "suggestions": [
    "1-4 concrete, optional reordering or re-timing suggestions."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing one generated daily schedule: its blocks and
computed metrics.

JSON:

%s

Based on this data, respond in the required JSON format.`

// RefinementLLM generates optional, non-binding suggestions for a generated
// schedule. The deterministic pipeline never depends on its output.
type RefinementLLM interface {
	Refine(ctx context.Context, gs *schedule.GeneratedSchedule) (*domain.RefinementSuggestion, error)
}

// SystemPromptProvider returns the system prompt to send to the LLM.
type SystemPromptProvider func(ctx context.Context) (string, error)

// StaticSystemPromptProvider returns a provider that always yields the given prompt.
func StaticSystemPromptProvider(prompt string) SystemPromptProvider {
	return func(context.Context) (string, error) {
		return prompt, nil
	}
}

// CachedPromptProvider wraps another provider and refreshes it based on a TTL.
// If refresh fails, the previous prompt is kept. TTL <= 0 disables caching.
func CachedPromptProvider(provider SystemPromptProvider, ttl time.Duration) SystemPromptProvider {
	if ttl <= 0 {
		return provider
	}

	var (
		mu      sync.RWMutex
		prompt  string
		expires time.Time
	)

	return func(ctx context.Context) (string, error) {
		now := time.Now()
		mu.RLock()
		if prompt != "" && now.Before(expires) {
			cached := prompt
			mu.RUnlock()
			return cached, nil
		}
		mu.RUnlock()

		mu.Lock()
		defer mu.Unlock()
		if prompt != "" && time.Now().Before(expires) {
			return prompt, nil
		}

		fresh, err := provider(ctx)
		if err != nil {
			if prompt != "" {
				return prompt, nil
			}
			return "", err
		}

		prompt = fresh
		expires = time.Now().Add(ttl)
		return prompt, nil
	}
}

// OpenAIClient implements RefinementLLM using the OpenAI API.
type OpenAIClient struct {
	client         openai.Client
	model          string
	promptProvider SystemPromptProvider
}

// NewOpenAIClient creates a new OpenAI client for generating schedule
// refinements. Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, provider SystemPromptProvider) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	if provider == nil {
		provider = StaticSystemPromptProvider(DefaultSystemPrompt)
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:         client,
		model:          model,
		promptProvider: provider,
	}
}

// Refine calls OpenAI to generate suggestions for a completed schedule.
func (c *OpenAIClient) Refine(ctx context.Context, gs *schedule.GeneratedSchedule) (*domain.RefinementSuggestion, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	tracer := otel.Tracer("dayplan-api/llm")
	ctx, span := tracer.Start(ctx, "OpenAIClient.Refine",
		trace.WithAttributes(
			attribute.String("langfuse.observation.type", "generation"),
			attribute.String("llm.model", c.model),
			attribute.String("model", c.model),
			attribute.String("langfuse.observation.model.name", c.model),
			attribute.String("schedule.id", gs.ScheduleID.String()),
		),
	)
	defer span.End()

	contextJSON, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize schedule: %v", ErrOpenAIRequest, err)
	}

	systemPrompt, err := c.promptProvider(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: failed to load system prompt: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	inputPayload := map[string]any{
		"system_prompt": systemPrompt,
		"user_prompt":   userPrompt,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(
			attribute.String("langfuse.observation.input", string(inputJSON)),
			attribute.String("gen_ai.prompt", userPrompt),
		)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.RefinementSuggestion
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	span.SetAttributes(
		attribute.String("langfuse.observation.output", content),
	)

	return &output, nil
}
