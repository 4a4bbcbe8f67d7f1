package logger

import (
	"testing"

	"trivia-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitialize(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggerConfig
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "default level", cfg: config.LoggerConfig{Env: "development"}, wantLevel: zapcore.InfoLevel},
		{name: "debug production", cfg: config.LoggerConfig{Env: "production", Level: "debug"}, wantLevel: zapcore.DebugLevel},
		{name: "upper case level", cfg: config.LoggerConfig{Level: "WARN"}, wantLevel: zapcore.WarnLevel},
		{name: "unknown level", cfg: config.LoggerConfig{Level: "chatty"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, Get().Core().Enabled(tt.wantLevel))
			assert.False(t, Get().Core().Enabled(tt.wantLevel-1))
		})
	}
}
