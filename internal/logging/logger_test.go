package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "chain", Cyan)

	logger.Debugf("visiting %d", 1)
	logger.Infof("result %s", "Forbidden")
	logger.Warnf("no result")
	logger.Errorf("boom")

	out := buf.String()
	assert.Contains(t, out, "[chain] ")
	assert.Contains(t, out, "[debug]")
	assert.Contains(t, out, "visiting 1")
	assert.Contains(t, out, "[info]")
	assert.Contains(t, out, "result Forbidden")
	assert.Contains(t, out, "[warn]")
	assert.Contains(t, out, "[error]")
	assert.Contains(t, out, "boom")
}
