package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		logLevel    string
		input       string
		want        int
		wantSummary bool
		wantStderr  string
	}{
		{"declines to continue", "", "1\n2\n10\nn\n", 0, true, ""},
		{"input ends at continue prompt", "", "1\n2\n10\n", 0, true, ""},
		{"selection out of range", "", "99\n", 1, false, "invalid selection index"},
		{"malformed amount", "", "1\n2\nten\n", 1, false, "malformed numeric input"},
		{"bad log level", "loud", "1\n2\n10\nn\n", 1, false, "unsupported log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONVERTER_CONFIG", "")
			t.Setenv("CONVERTER_LOG_FORMAT", "")
			t.Setenv("CONVERTER_LOG_LEVEL", tt.logLevel)

			var stdout, stderr bytes.Buffer
			got := run(strings.NewReader(tt.input), &stdout, &stderr)

			assert.Equal(t, tt.want, got, stderr.String())
			assert.Equal(t, tt.wantSummary, strings.Contains(stdout.String(), "Currency Conversion Details"))
			if tt.wantStderr == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Equal(t, 1, strings.Count(stderr.String(), tt.wantStderr), stderr.String())
				assert.NotContains(t, stderr.String(), "level=")
			}
		})
	}
}

func TestRun_BadConfigFile(t *testing.T) {
	t.Setenv("CONVERTER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	var stdout, stderr bytes.Buffer
	got := run(strings.NewReader("1\n2\n10\nn\n"), &stdout, &stderr)

	assert.Equal(t, 1, got)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "config:")
}
