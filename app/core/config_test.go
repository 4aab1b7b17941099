package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupConfigFromEnv(t *testing.T) {
	addr := "localhost:11111"
	os.Setenv("DOCCHAT_API_SERVICE_ADDRESS", addr)
	os.Setenv("DOCCHAT_AI_CHAT_MODEL", "gpt-4o-mini")
	os.Setenv("DOCCHAT_SEARCH_LIMIT", "3")

	cfg := LoadBaseConfigFromENV()

	assert.Equal(t, addr, cfg.Addr)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.ChatModel)
	assert.Equal(t, 3, cfg.Search.Limit)
}
