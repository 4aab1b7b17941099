package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenUserPassword(t *testing.T) {
	first := GenUserPassword("salt", "123456")
	second := GenUserPassword("salt", "123456")
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, GenUserPassword("other", "123456"))
	assert.Len(t, first, 32)
}

func TestRandomStr(t *testing.T) {
	assert.Len(t, RandomStr(64), 64)
	assert.Len(t, GenRandomID(), 32)
}

func TestParseAcceptLanguage(t *testing.T) {
	res := ParseAcceptLanguage("en-US;q=0.8, zh-CN, fr;q=0.5")
	assert.Len(t, res, 3)
	assert.Equal(t, "zh-CN", res[0].Tag)
	assert.Equal(t, "en-US", res[1].Tag)
	assert.Equal(t, "fr", res[2].Tag)

	assert.Empty(t, ParseAcceptLanguage(""))
}
