package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("console format", func(t *testing.T) {
		log, err := New("info", "console")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("json format", func(t *testing.T) {
		log, err := New("DEBUG", "json")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New("loud", "console")
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := New("info", "xml")
		assert.Error(t, err)
	})
}

func TestZapLogger_FieldsAndEvent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.InfoObj("Posted to WordPress", "wordpress_published", map[string]any{"link": "https://example.com/post/1"})
	log.WarnObj("skipping", "socialbee_skipped", nil)

	entries := logs.All()
	require.Len(t, entries, 2)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "Posted to WordPress", entries[0].Message)
	assert.Equal(t, "wordpress_published", ctx["event"])
	assert.Equal(t, "https://example.com/post/1", ctx["link"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestEnsure(t *testing.T) {
	assert.IsType(t, NopLogger{}, Ensure(nil))

	log := FromZap(zap.NewNop())
	assert.Same(t, log, Ensure(log))
}
