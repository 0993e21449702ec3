package observability

import (
	"strings"
	"testing"

	"github.com/SBOne-Kenobi/UTBotJava/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// syncBuffer adapts a strings.Builder into a zapcore.WriteSyncer.
type syncBuffer struct {
	strings.Builder
}

func (b *syncBuffer) Sync() error { return nil }

func TestInitialize_JSONFormat(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	buf := &syncBuffer{}
	Initialize(config.LoggerConfig{
		Level:       "debug",
		Format:      "json",
		ServiceName: "utbot-mocker-test",
	}, buf)

	logger := GetLogger()
	require.NotNil(t, logger)
	logger.Info("decision made", zap.String("type", "java.util.Random"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.Contains(t, out, `"decision made"`)
	assert.Contains(t, out, "java.util.Random")
	assert.Contains(t, out, "utbot-mocker-test")
}

func TestInitialize_OnlyOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	first := &syncBuffer{}
	second := &syncBuffer{}
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "first"}, first)
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "second"}, second)

	logger := GetLogger()
	logger.Info("hello")
	_ = logger.Sync()

	assert.Contains(t, first.String(), "hello")
	assert.Empty(t, second.String(), "second initialization must be a no-op")
}

func TestGetLogger_FallbackBeforeInitialize(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	logger := GetLogger()
	assert.NotNil(t, logger)
}

func TestInitialize_InvalidLevelDefaultsToInfo(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	buf := &syncBuffer{}
	Initialize(config.LoggerConfig{Level: "chatty", Format: "json", ServiceName: "svc"}, buf)

	logger := GetLogger()
	logger.Debug("suppressed")
	logger.Info("kept")
	_ = logger.Sync()

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "kept")
}
