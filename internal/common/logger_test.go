package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLoggerTo(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, SetupLoggerTo(&buf, "debug", "json"))

	LogDebug("ranked", Fields{"visible": 2, "catalog": 5})
	assert.Contains(t, buf.String(), `"msg":"ranked"`)
	assert.Contains(t, buf.String(), `"visible":2`)

	buf.Reset()
	LogError(errors.New("boom"), "fetch failed", nil)
	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestSetupLoggerTo_InvalidFormat(t *testing.T) {
	err := SetupLoggerTo(&bytes.Buffer{}, "info", "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestUserMessage(t *testing.T) {
	err := NewUserError(MsgSubmitFailed, errors.New("status 500"))
	assert.Equal(t, MsgSubmitFailed, UserMessage(err, "fallback"))
	assert.Equal(t, "There was an error adding your recipe.: status 500", err.Error())
	assert.Equal(t, "fallback", UserMessage(errors.New("plain"), "fallback"))
}
