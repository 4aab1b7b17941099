package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat-ai/docchat/pkg/retrieval"
)

type scriptedDriver struct {
	calls   []string
	answers map[string]error
}

func (s *scriptedDriver) Query(ctx context.Context, model string, messages []openai.ChatCompletionMessage) (openai.ChatCompletionResponse, error) {
	s.calls = append(s.calls, model)
	if err := s.answers[model]; err != nil {
		return openai.ChatCompletionResponse{}, err
	}
	return openai.ChatCompletionResponse{
		Model: model,
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "answer from " + model}},
		},
	}, nil
}

func (s *scriptedDriver) Lang() string {
	return MODEL_BASE_LANGUAGE_EN
}

func rateLimited() error {
	return &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "rate limited"}
}

func TestFallbackFirstModelWins(t *testing.T) {
	driver := &scriptedDriver{answers: map[string]error{}}
	policy := FallbackPolicy{Models: []string{"m1", "m2"}}

	resp, err := policy.Execute(context.Background(), driver, nil)
	require.NoError(t, err)
	assert.Equal(t, "m1", resp.Model)
	assert.Equal(t, []string{"m1"}, driver.calls)
}

func TestFallbackWalksModelsOnRateLimit(t *testing.T) {
	driver := &scriptedDriver{answers: map[string]error{
		"m1": rateLimited(),
		"m2": rateLimited(),
	}}
	policy := FallbackPolicy{Models: []string{"m1", "m2", "m3"}, Delay: time.Millisecond}

	resp, err := policy.Execute(context.Background(), driver, nil)
	require.NoError(t, err)
	assert.Equal(t, "m3", resp.Model)
	assert.Equal(t, []string{"m1", "m2", "m3"}, driver.calls)
}

func TestFallbackPropagatesOtherErrors(t *testing.T) {
	boom := errors.New("connection refused")
	driver := &scriptedDriver{answers: map[string]error{"m1": boom}}
	policy := FallbackPolicy{Models: []string{"m1", "m2"}}

	_, err := policy.Execute(context.Background(), driver, nil)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"m1"}, driver.calls)
}

func TestFallbackExhaustion(t *testing.T) {
	driver := &scriptedDriver{answers: map[string]error{
		"m1": rateLimited(),
		"m2": rateLimited(),
	}}
	policy := FallbackPolicy{Models: []string{"m1", "m2"}, Delay: time.Millisecond}

	_, err := policy.Execute(context.Background(), driver, nil)
	assert.ErrorIs(t, err, ErrExhausted)

	_, err = FallbackPolicy{}.Execute(context.Background(), driver, nil)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestFallbackHonorsContext(t *testing.T) {
	driver := &scriptedDriver{answers: map[string]error{
		"m1": rateLimited(),
	}}
	policy := FallbackPolicy{Models: []string{"m1", "m2"}, Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := policy.Execute(ctx, driver, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(rateLimited()))
	assert.True(t, IsRateLimited(&openai.RequestError{HTTPStatusCode: http.StatusTooManyRequests}))
	assert.False(t, IsRateLimited(&openai.APIError{HTTPStatusCode: http.StatusInternalServerError}))
	assert.False(t, IsRateLimited(errors.New("timeout")))
	assert.False(t, IsRateLimited(nil))
}

func TestChoiceContent(t *testing.T) {
	_, err := ChoiceContent(openai.ChatCompletionResponse{})
	assert.Error(t, err)

	content, err := ChoiceContent(openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "  the answer \n"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "the answer", content)
}

func TestBuildQAMessages(t *testing.T) {
	chunks := []retrieval.ScoredChunk{
		{Chunk: retrieval.Chunk{DocumentID: "d1", FileName: "report.pdf", Index: 1, Text: "quarterly revenue grew"}},
	}

	msgs := BuildQAMessages(MODEL_BASE_LANGUAGE_EN, "How did revenue do?", chunks, nil)
	require.Len(t, msgs, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, `[Section 2 from "report.pdf"]`)
	assert.Contains(t, msgs[0].Content, "quarterly revenue grew")
	assert.NotContains(t, msgs[0].Content, "Web results")
	assert.Equal(t, "How did revenue do?", msgs[1].Content)
}

func TestBuildQAMessagesWithWebResults(t *testing.T) {
	web := []WebResult{{Title: "Go blog", URL: "https://go.dev/blog", Snippet: "release notes"}}

	msgs := BuildQAMessages(MODEL_BASE_LANGUAGE_EN, "anything new?", nil, web)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Content, "Web results:")
	assert.Contains(t, msgs[0].Content, "[Web 1] Go blog (https://go.dev/blog)")
	assert.True(t, strings.Contains(msgs[0].Content, "release notes"))
}
