package srv

import (
	"context"
	"os"
	"strconv"
	"time"

	oai "github.com/sashabaranov/go-openai"

	"github.com/docchat-ai/docchat/pkg/ai"
	"github.com/docchat-ai/docchat/pkg/ai/openai"
)

const (
	DEFAULT_FALLBACK_DELAY = time.Second * 2
)

// AIDriver is what the logic layer sees of the completion stack.
type AIDriver interface {
	Lang() string
	// ChatModel is the first model the fallback policy will try.
	ChatModel() string
	// Complete runs the fallback policy over the configured models.
	Complete(ctx context.Context, messages []oai.ChatCompletionMessage) (oai.ChatCompletionResponse, error)
	MsgIsOverLimit(messages []oai.ChatCompletionMessage) bool
}

type AIConfig struct {
	Token    string `toml:"token"`
	Endpoint string `toml:"endpoint"`
	// ChatModel is tried first; FallbackModels follow in order when a
	// model reports rate limiting.
	ChatModel      string   `toml:"chat_model"`
	FallbackModels []string `toml:"fallback_models"`
	RetryDelayMS   int      `toml:"retry_delay_ms"`
	TokenLimit     int      `toml:"token_limit"`
}

func (c *AIConfig) FromENV() {
	c.Token = os.Getenv("DOCCHAT_AI_TOKEN")
	c.Endpoint = os.Getenv("DOCCHAT_AI_ENDPOINT")
	c.ChatModel = os.Getenv("DOCCHAT_AI_CHAT_MODEL")
	if delayStr := os.Getenv("DOCCHAT_AI_RETRY_DELAY_MS"); delayStr != "" {
		if delay, err := strconv.Atoi(delayStr); err == nil {
			c.RetryDelayMS = delay
		}
	}
}

func (c AIConfig) FallbackPolicy() ai.FallbackPolicy {
	delay := DEFAULT_FALLBACK_DELAY
	if c.RetryDelayMS > 0 {
		delay = time.Duration(c.RetryDelayMS) * time.Millisecond
	}

	models := []string{c.ChatModel}
	if c.ChatModel == "" {
		models = models[:0]
	}
	models = append(models, c.FallbackModels...)
	if len(models) == 0 {
		models = append(models, oai.GPT4oMini)
	}

	return ai.FallbackPolicy{
		Models: models,
		Delay:  delay,
	}
}

type AI struct {
	driver     ai.Query
	policy     ai.FallbackPolicy
	tokenLimit int
}

func SetupAI(cfg AIConfig) *AI {
	return &AI{
		driver: openai.New(cfg.Token, cfg.Endpoint, ai.ModelName{
			ChatModel: cfg.ChatModel,
		}),
		policy:     cfg.FallbackPolicy(),
		tokenLimit: cfg.TokenLimit,
	}
}

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		s.ai = SetupAI(cfg)
	}
}

func (s *AI) Lang() string {
	return s.driver.Lang()
}

func (s *AI) ChatModel() string {
	if len(s.policy.Models) == 0 {
		return ""
	}
	return s.policy.Models[0]
}

func (s *AI) Complete(ctx context.Context, messages []oai.ChatCompletionMessage) (oai.ChatCompletionResponse, error) {
	return s.policy.Execute(ctx, s.driver, messages)
}

func (s *AI) MsgIsOverLimit(messages []oai.ChatCompletionMessage) bool {
	limit := s.tokenLimit
	if limit <= 0 {
		limit = 8000
	}
	model := "gpt-4"
	if len(s.policy.Models) > 0 {
		model = s.policy.Models[0]
	}
	return ai.MessagesOverLimit(messages, model, limit)
}
