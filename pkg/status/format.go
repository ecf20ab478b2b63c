package status

import (
	"fmt"
)

// FileFormatter turns run progress into short user-facing messages
type FileFormatter interface {
	// FormatProgress formats the progress line for one reached file
	FormatProgress(name string, current, total int) string

	// FormatSummary formats the closing line of a run
	FormatSummary(reached, failed, total int, cancelled bool) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatProgress renders "[current/total] name (pct%)", marked done on the last file
func (f *DefaultFileFormatter) FormatProgress(name string, current, total int) string {
	pct := 100
	if total > 0 {
		pct = current * 100 / total
	}

	mark := "⏳"
	if current >= total {
		mark = "✅"
	}
	return fmt.Sprintf("%s [%d/%d] %s (%d%%)", mark, current, total, name, pct)
}

// FormatSummary describes how far a run got. reached counts files that were
// attempted, failed or not.
func (f *DefaultFileFormatter) FormatSummary(reached, failed, total int, cancelled bool) string {
	switch {
	case cancelled:
		return fmt.Sprintf("cancelled after %d of %d files", reached, total)
	case failed > 0:
		return fmt.Sprintf("converted %d of %d files, %d failed", reached-failed, total, failed)
	case reached == 1:
		return "converted 1 file"
	default:
		return fmt.Sprintf("converted %d files", reached)
	}
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ %v", err)
}
