package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 🧪 TestProgressFormatting tests per-file progress lines
func TestProgressFormatting(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		current int
		total   int
		want    string
	}{
		{name: "first_file", file: "a.wdf", current: 1, total: 4, want: "⏳ [1/4] a.wdf (25%)"},
		{name: "rounds_down", file: "b.wdf", current: 1, total: 3, want: "⏳ [1/3] b.wdf (33%)"},
		{name: "last_file", file: "c.wdf", current: 10, total: 10, want: "✅ [10/10] c.wdf (100%)"},
		{name: "zero_total", current: 0, total: 0, want: "✅ [0/0]  (100%)"},
	}

	formatter := NewDefaultFileFormatter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatter.FormatProgress(tt.file, tt.current, tt.total))
		})
	}
}

// 🧪 TestSummaryFormatting tests the closing line of a run
func TestSummaryFormatting(t *testing.T) {
	tests := []struct {
		name      string
		reached   int
		failed    int
		total     int
		cancelled bool
		want      string
	}{
		{name: "all_converted", reached: 3, total: 3, want: "converted 3 files"},
		{name: "single_file", reached: 1, total: 1, want: "converted 1 file"},
		{name: "some_failed", reached: 3, failed: 2, total: 3, want: "converted 1 of 3 files, 2 failed"},
		{name: "all_failed", reached: 2, failed: 2, total: 2, want: "converted 0 of 2 files, 2 failed"},
		{name: "cancelled", reached: 1, total: 4, cancelled: true, want: "cancelled after 1 of 4 files"},
		{name: "cancelled_ignores_failures", reached: 2, failed: 1, total: 4, cancelled: true, want: "cancelled after 2 of 4 files"},
	}

	formatter := NewDefaultFileFormatter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatter.FormatSummary(tt.reached, tt.failed, tt.total, tt.cancelled)
			assert.Equal(t, tt.want, got)
		})
	}
}

// 🧪 TestErrorFormatting tests error message formatting
func TestErrorFormatting(t *testing.T) {
	formatter := NewDefaultFileFormatter()

	assert.Equal(t, "❌ assert.AnError general error for testing", formatter.FormatError(assert.AnError))
	assert.Empty(t, formatter.FormatError(nil), "nil errors should format as nothing")
}
