package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewWritesConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Error("passtext failed", zap.Error(errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "passtext failed")
	assert.Contains(t, out, "boom")
}

func TestDebugLevel(t *testing.T) {
	var quiet, loud bytes.Buffer

	New(&quiet, false).Debug("hidden")
	New(&loud, true).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "shown")
}
