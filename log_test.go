package beanfolio

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level     string
		debug     bool
		info      bool
		wantLevel string
	}{
		{"debug", true, true, "debug"},
		{"info", false, true, "info"},
		{"warn", false, false, "warn"},
		{"", false, true, "info"},
		{"verbose", false, true, "info"},
	}
	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tc.level, &buf)
			if got := logger.GetLevel().String(); got != tc.wantLevel {
				t.Errorf("level = %s, want %s", got, tc.wantLevel)
			}

			logger.Debug().Msg("debug message")
			logger.Info().Msg("info message")
			out := buf.String()
			if got := strings.Contains(out, "debug message"); got != tc.debug {
				t.Errorf("debug logged = %v, want %v", got, tc.debug)
			}
			if got := strings.Contains(out, "info message"); got != tc.info {
				t.Errorf("info logged = %v, want %v", got, tc.info)
			}
		})
	}
}
