package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	kind, err := Kind("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, KindTXT, kind)

	kind, err = Kind("Report.PDF")
	require.NoError(t, err)
	assert.Equal(t, KindPDF, kind)

	_, err = Kind("slides.pptx")
	assert.Error(t, err)

	_, err = Kind("README")
	assert.Error(t, err)
}

func TestExtractTXT(t *testing.T) {
	text, err := Extract("notes.txt", []byte("  hello document\nsecond line \n"))
	require.NoError(t, err)
	assert.Equal(t, "hello document\nsecond line", text)
}

func TestExtractTXTRejectsBinary(t *testing.T) {
	_, err := Extract("notes.txt", []byte{0xff, 0xfe, 0x00, 0x80})
	assert.Error(t, err)
}

func TestExtractUnsupported(t *testing.T) {
	_, err := Extract("image.png", []byte("irrelevant"))
	assert.Error(t, err)
}

func TestExtractBrokenPDF(t *testing.T) {
	_, err := Extract("broken.pdf", []byte("not a real pdf body"))
	assert.Error(t, err)
}
