package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizerGet(t *testing.T) {
	l := NewLocalizer("zh-CN", "en")

	assert.Equal(t, "No documents found", l.Get("en", ERROR_DOCUMENT_NOT_FOUND))
	assert.Equal(t, "没有找到任何文档", l.Get("zh-CN", ERROR_DOCUMENT_NOT_FOUND))

	// unknown keys fall back to the key itself
	assert.Equal(t, "error.unknown", l.Get("en", "error.unknown"))
	// unknown languages fall back to the key itself
	assert.Equal(t, ERROR_INTERNAL, l.Get("fr", ERROR_INTERNAL))
}
