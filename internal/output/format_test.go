package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintHelpers(t *testing.T) {
	color.NoColor = true

	tests := map[string]struct {
		print func(buf *bytes.Buffer)
		want  string
	}{
		"success": {
			print: func(buf *bytes.Buffer) { PrintSuccess(buf, "Released V1.0.2") },
			want:  "✓ Released V1.0.2\n",
		},
		"warning": {
			print: func(buf *bytes.Buffer) { PrintWarning(buf, "no entries") },
			want:  "Warning: no entries\n",
		},
		"detail": {
			print: func(buf *bytes.Buffer) { PrintDetail(buf, "previous", "V1.0.1") },
			want:  "  previous: V1.0.1\n",
		},
		"dry run header": {
			print: func(buf *bytes.Buffer) { PrintDryRunHeader(buf, "CHANGELOG.md") },
			want:  "→ Dry run, not writing: CHANGELOG.md\n\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestGetTerminalWidth(t *testing.T) {
	t.Parallel()

	assert.Positive(t, GetTerminalWidth())
}
