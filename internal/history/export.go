// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/radix-tui/internal/util"
)

// =============================================================================
// EXPORT
// =============================================================================

// ExportMarkdown renders entries as a Markdown table, newest first.
func ExportMarkdown(entries []Entry) string {
	var sb strings.Builder
	sb.WriteString("# Conversion history\n\n")
	if len(entries) == 0 {
		sb.WriteString("No conversions recorded.\n")
		return sb.String()
	}

	sb.WriteString("| When | Conversion | Input | Output |\n")
	sb.WriteString("|------|------------|-------|--------|\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			e.Timestamp.Format(time.RFC3339),
			escapeCell(e.Kind),
			escapeCell(e.Input),
			escapeCell(e.Output),
		)
	}
	return sb.String()
}

// escapeCell keeps table cells on one line and pipe-safe.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", "")
}

// ExportJSON renders entries as pretty-printed JSON.
func ExportJSON(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// WriteExport writes the store's full history to path. The format follows
// the file extension: ".json" for JSON, anything else gets Markdown. The
// write is atomic so a crash cannot leave a half-written export.
func (s *Store) WriteExport(path string) error {
	entries, err := s.List(0)
	if err != nil {
		return err
	}

	var data []byte
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		data, err = ExportJSON(entries)
		if err != nil {
			return fmt.Errorf("failed to encode history: %w", err)
		}
	} else {
		data = []byte(ExportMarkdown(entries))
	}

	return util.AtomicWriteFile(path, data, 0644)
}
