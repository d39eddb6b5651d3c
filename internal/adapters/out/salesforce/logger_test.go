package salesforce

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"
)

func TestWithLogger_RoutesRestyMessages(t *testing.T) {
	tests := []struct {
		name  string
		level string
		emit  func(l resty.Logger)
	}{
		{name: "error", level: "error", emit: func(l resty.Logger) { l.Errorf("request %s failed after %d tries", "GET", 1) }},
		{name: "warn", level: "warn", emit: func(l resty.Logger) { l.Warnf("request %s failed after %d tries", "GET", 1) }},
		{name: "debug", level: "debug", emit: func(l resty.Logger) { l.Debugf("request %s failed after %d tries", "GET", 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerowrap.New(zerowrap.Config{Level: "debug", Format: "json", Output: &buf})

			c := New(WithLogger(log))
			defer c.Close()
			tt.emit(c.http.Logger())

			var entry map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "request GET failed after 1 tries", entry["message"])
			assert.Equal(t, "adapter", entry[zerowrap.FieldLayer])
			assert.Equal(t, "salesforce", entry[zerowrap.FieldAdapter])
		})
	}
}

func TestNew_WithoutLoggerKeepsRestyDefault(t *testing.T) {
	c := New()
	defer c.Close()

	_, isZerowrap := c.http.Logger().(restyLogger)
	assert.False(t, isZerowrap)
}
