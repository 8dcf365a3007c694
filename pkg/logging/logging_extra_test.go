package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestEnable(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(Disable)

	Enable(&buf, 2)
	logger := GetLogger("decoder")
	logger.Debug().Str("sequence", "[A").Msg("Decoded key")

	output := buf.String()
	assert.Contains(t, output, `"component":"decoder"`)
	assert.Contains(t, output, `"sequence":"[A"`)
	assert.Contains(t, output, "Decoded key")
}

func TestEnableRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(Disable)

	Enable(&buf, 0)
	logger := GetLogger("renderer")
	logger.Debug().Msg("should be filtered")
	logger.Warn().Msg("should appear")

	output := buf.String()
	assert.NotContains(t, output, "should be filtered")
	assert.Contains(t, output, "should appear")
}

func TestDisable(t *testing.T) {
	var buf bytes.Buffer

	Enable(&buf, 3)
	Disable()
	GetLogger("session").Error().Msg("after disable")

	assert.Empty(t, buf.String())
}

func TestWithFieldsOutput(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(Disable)

	Enable(&buf, 1)
	logger := WithFields(map[string]interface{}{
		"widget": "select",
		"items":  3,
	})
	logger.Info().Msg("prompt opened")

	output := buf.String()
	assert.Contains(t, output, `"widget":"select"`)
	assert.Contains(t, output, `"items":3`)
	assert.Contains(t, output, "prompt opened")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(Disable)

	Enable(&buf, 2)
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "text-prompt")
	done()

	output := buf.String()
	assert.Contains(t, output, "text-prompt")
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
