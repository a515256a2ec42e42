package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		enabled zapcore.Level
	}{
		{"Production JSON", Config{Level: "info", Format: "json"}, false, zapcore.InfoLevel},
		{"Debug Console", Config{Level: "debug", Format: "console"}, false, zapcore.DebugLevel},
		{"Warn Default Format", Config{Level: "warn"}, false, zapcore.WarnLevel},
		{"Invalid Level", Config{Level: "loud"}, true, 0},
		{"Invalid Format", Config{Level: "info", Format: "xml"}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			assert.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.enabled-1))
		})
	}
}
