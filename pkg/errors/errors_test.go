package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesThroughWrapping(t *testing.T) {
	sentinel := stderrors.New("models exhausted")

	err := New("logic.Complete", "error.internal", sentinel).Code(http.StatusServiceUnavailable)
	assert.True(t, Is(err, sentinel))

	// still matches after more trace layers
	assert.True(t, Is(Trace("handler.Query", err), sentinel))

	assert.False(t, Is(err, stderrors.New("models exhausted")))
}

func TestCodeDefaultsToInternal(t *testing.T) {
	err := New("a.b", "error.internal", nil)
	assert.Equal(t, http.StatusInternalServerError, err.GetCode())
	assert.Equal(t, http.StatusNotFound, err.Code(http.StatusNotFound).GetCode())
}
