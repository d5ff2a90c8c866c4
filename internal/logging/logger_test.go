package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneuniverse/onboard/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logging.WithContext(context.Background(), logger)

	ctx = logging.WithComponent(ctx, "negotiator")
	ctx = logging.WithCapability(ctx, "calendar-access")
	logging.FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"negotiator"`)
	assert.Contains(t, out, `"capability":"calendar-access"`)
}

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	logger := logging.FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewWithFile_WritesToLogDir(t *testing.T) {
	dir := t.TempDir()
	cfg := logging.DefaultConfig()
	cfg.Format = "json"

	logger, cleanup, err := logging.NewWithFile(cfg, dir)
	require.NoError(t, err)
	logger.Info().Msg("to file")
	cleanup()

	assert.FileExists(t, dir+"/onboard.log")
}
