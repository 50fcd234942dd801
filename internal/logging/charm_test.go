package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger() (*CharmLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewCharmLogger(log.New(&buf)), &buf
}

func TestCharmLogger_WritesMessageAndPairs(t *testing.T) {
	l, buf := newBufLogger()

	l.Info(context.Background(), "staged file", "name", "thesis.docx")

	out := buf.String()
	assert.Contains(t, out, "staged file")
	assert.Contains(t, out, "thesis.docx")
}

func TestCharmLogger_WithAddsPersistentPairs(t *testing.T) {
	l, buf := newBufLogger()

	child := l.With("component", "format")
	require.NotNil(t, child)
	child.Error(context.Background(), "submit failed")

	out := buf.String()
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "submit failed")
}
