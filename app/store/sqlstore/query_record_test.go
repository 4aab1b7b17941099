package sqlstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCitationsParam(t *testing.T) {
	// jsonb parameters must reach the driver as text, never []byte
	var val interface{} = citationsParam(json.RawMessage(`[{"file_name":"a.txt"}]`))
	s, ok := val.(string)
	assert.True(t, ok)
	assert.Equal(t, `[{"file_name":"a.txt"}]`, s)

	assert.Equal(t, "[]", citationsParam(nil))
	assert.Equal(t, "[]", citationsParam(json.RawMessage("")))
}
