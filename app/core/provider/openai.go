// Package provider wraps the remote chat-completion capability. Every
// failure mode — transport, non-success status, malformed or empty
// response — surfaces as *Error so the router can degrade uniformly.
package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const DefaultTimeout = 30 * time.Second

// Error is the provider failure reported to callers. The router logs it
// and substitutes a language-appropriate unavailable message; it is never
// shown to the user verbatim.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("provider: %s failed", e.Op)
	}
	return fmt.Sprintf("provider: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Completer generates text for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAIProvider calls a chat-completion endpoint through the official
// client. A bounded timeout converts a hung provider into an Error.
type OpenAIProvider struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIProvider(cfg Config) *OpenAIProvider {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = string(openai.ChatModelGPT4oMini)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &OpenAIProvider{
		client:  openai.NewClient(opts...),
		model:   model,
		timeout: timeout,
	}
}

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", &Error{Op: "complete", Err: fmt.Errorf("empty prompt")}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", &Error{Op: "complete", Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &Error{Op: "complete", Err: fmt.Errorf("no choices in response")}
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", &Error{Op: "complete", Err: fmt.Errorf("empty completion text")}
	}
	return text, nil
}
