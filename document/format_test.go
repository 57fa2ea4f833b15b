package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		path string
		want Format
	}{
		{"openapi.json", FormatJSON},
		{"dir/spec.json", FormatJSON},
		{"openapi.yaml", FormatYAML},
		{"openapi.yml", FormatYAML},
		{"openapi.txt", FormatYAML},
		{"openapi", FormatYAML},
		{"-", FormatYAML},
		{"spec.JSON", FormatYAML}, // extension matching is case-sensitive
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectFormat(tc.path), "path %q", tc.path)
	}
}

func TestDetectFormatFromContent(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    Format
	}{
		{"json object", `{"openapi": "3.0.3"}`, FormatJSON},
		{"json array", `[1, 2]`, FormatJSON},
		{"json with leading whitespace", "\n\t {\"a\": 1}", FormatJSON},
		{"yaml mapping", "openapi: 3.0.3\n", FormatYAML},
		{"yaml list", "- a\n- b\n", FormatYAML},
		{"empty", "", FormatUnknown},
		{"whitespace only", " \n\t ", FormatUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectFormatFromContent([]byte(tc.content)))
		})
	}
}
