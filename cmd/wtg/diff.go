package main

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/wtg/internal/messages"
)

// defaultDiffMaxLines caps --show-diff output unless --diff-lines is given.
const defaultDiffMaxLines = 80

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return defaultDiffMaxLines
	}
	return value
}

// renderStoreDiff renders the change between two enumerations as a unified
// diff capped at maxLines. An empty result means nothing changed.
func renderStoreDiff(store string, before string, after string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(store+" (before)", store+" (after)", normalizeNewlines(before), normalizeNewlines(after))
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := append(lines[:limit:limit], fmt.Sprintf(messages.DiffTruncatedFmt, limit))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

// normalizeNewlines drops carriage returns and guarantees a final newline so
// the diff never reports a missing newline at end of file.
func normalizeNewlines(content string) string {
	return ensureTrailingNewline(strings.ReplaceAll(content, "\r\n", "\n"))
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
