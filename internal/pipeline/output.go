// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docdigest/pkg/types"
)

// WriteDigest writes the digest as indented JSON to path, creating parent
// directories as needed.
func WriteDigest(digest types.Digest, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := FormatJSON(digest, f); err != nil {
		return fmt.Errorf("encoding digest: %w", err)
	}
	return nil
}

// FormatJSON writes the digest as indented JSON to w.
func FormatJSON(digest types.Digest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(digest)
}

// WriteReport writes the run report as a YAML sidecar next to the digest.
func WriteReport(report RunReport, path string) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FormatTable writes the ranked digest as a human-readable table to w.
func FormatTable(digest types.Digest, w io.Writer) {
	if len(digest.ExtractedSections) == 0 {
		fmt.Fprintln(w, "No sections selected.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-30s  %s\n", "Rank", "Section", "Document", "Page")
	for _, s := range digest.ExtractedSections {
		fmt.Fprintf(w, "%-4d  %-50s  %-30s  %d\n",
			s.ImportanceRank, clip(s.SectionTitle, 50), clip(s.Document, 30), s.PageNumber)
	}
}

// clip shortens s to at most max characters, cutting on rune boundaries so
// multibyte titles are never split mid-character.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
