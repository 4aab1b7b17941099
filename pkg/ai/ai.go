package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkoukk/tiktoken-go"
	openai "github.com/sashabaranov/go-openai"
)

const (
	MODEL_BASE_LANGUAGE_EN = "EN"
	MODEL_BASE_LANGUAGE_CN = "CN"
)

// ErrExhausted reports that every configured completion model was rate
// limited in turn. The request layer maps it to "service unavailable".
var ErrExhausted = errors.New("all completion models exhausted")

type ModelName struct {
	ChatModel string `toml:"chat_model"`
}

// Query is the completion driver contract. The model is passed per call
// so one driver serves every entry of a fallback list.
type Query interface {
	Query(ctx context.Context, model string, messages []openai.ChatCompletionMessage) (openai.ChatCompletionResponse, error)
	Lang() string
}

// FallbackPolicy is an ordered model list with a fixed inter-attempt
// delay. Rate limited attempts move on to the next model, any other
// failure propagates as is. Walking off the end returns ErrExhausted.
type FallbackPolicy struct {
	Models []string
	Delay  time.Duration
}

func (p FallbackPolicy) Execute(ctx context.Context, driver Query, messages []openai.ChatCompletionMessage) (openai.ChatCompletionResponse, error) {
	if len(p.Models) == 0 {
		return openai.ChatCompletionResponse{}, ErrExhausted
	}

	for i, model := range p.Models {
		resp, err := driver.Query(ctx, model, messages)
		if err == nil {
			return resp, nil
		}
		if !IsRateLimited(err) {
			return resp, err
		}

		slog.Warn("completion model rate limited", slog.String("model", model), slog.String("error", err.Error()))

		if i == len(p.Models)-1 {
			break
		}
		if p.Delay > 0 {
			select {
			case <-ctx.Done():
				return resp, ctx.Err()
			case <-time.After(p.Delay):
			}
		}
	}

	return openai.ChatCompletionResponse{}, ErrExhausted
}

// IsRateLimited classifies an openai client failure as HTTP 429.
func IsRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}

// ChoiceContent pulls the answer text out of a completion response.
func ChoiceContent(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response carries no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func MessagesOverLimit(messages []openai.ChatCompletionMessage, model string, limit int) bool {
	tokenNum, err := NumTokens(messages, model)
	if err != nil {
		slog.Error("Failed to tik request token", slog.String("error", err.Error()), slog.String("model", model))
		return false
	}
	return tokenNum > limit
}

func NumTokens(messages []openai.ChatCompletionMessage, model string) (numTokens int, err error) {
	var tokensPerMessage, tokensPerName int
	switch model {
	case "gpt-3.5-turbo-0613",
		"gpt-3.5-turbo-16k-0613",
		"gpt-4-0314",
		"gpt-4-32k-0314",
		"gpt-4-0613",
		"gpt-4-32k-0613":
		tokensPerMessage = 3
		tokensPerName = 1
	case "gpt-3.5-turbo-0301":
		tokensPerMessage = 4 // every message follows <|start|>{role/name}\n{content}<|end|>\n
		tokensPerName = -1   // if there's a name, the role is omitted
	default:
		if strings.Contains(model, "gpt-4") {
			return NumTokens(messages, "gpt-4-0613")
		} else {
			return NumTokens(messages, "gpt-3.5-turbo-0613")
		}
	}

	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		err = fmt.Errorf("encoding for model: %v", err)
		return
	}

	for _, message := range messages {
		numTokens += tokensPerMessage
		numTokens += len(tkm.Encode(message.Content, nil, nil))
		numTokens += len(tkm.Encode(message.Role, nil, nil))
		numTokens += len(tkm.Encode(message.Name, nil, nil))
		if message.Name != "" {
			numTokens += tokensPerName
		}
	}
	numTokens += 3 // every reply is primed with <|start|>assistant<|message|>
	return numTokens, nil
}
